package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/everflown/logistics-api/internal/domain/entity"
)

// Stats agregados del dashboard. Todos los conteos son reducciones
// conmutativas sobre las colecciones de entrada: permutar la entrada produce
// el mismo resultado.
type Stats struct {
	ActiveOrders    int
	InTransit       int
	PendingQuotes   int
	OverdueInvoices int
	Revenue         decimal.Decimal
}

// AggregateStats computa los contadores del dashboard.
//
//   - ActiveOrders: órdenes con estado distinto de "delivered".
//   - InTransit: órdenes "in_transit".
//   - PendingQuotes: cotizaciones cuyo estado derivado (QuoteDisplayStatus
//     con now) es "draft" o "sent".
//   - OverdueInvoices: facturas vencidas según InvoiceDisplayStatus.
//   - Revenue: suma de CustomerRate de las órdenes entregadas cuya fecha de
//     entrega cae dentro de [periodStart, periodEnd]. El período lo decide el
//     caller; aquí no se computa ningún límite de reporte.
func AggregateStats(
	orders []entity.Order,
	quotes []entity.Quote,
	invoices []entity.Invoice,
	now, periodStart, periodEnd time.Time,
) Stats {
	var s Stats
	s.Revenue = decimal.Zero

	for _, o := range orders {
		if o.Status != entity.OrderStatusDelivered {
			s.ActiveOrders++
		}
		if o.Status == entity.OrderStatusInTransit {
			s.InTransit++
		}
		if o.Status == entity.OrderStatusDelivered && o.DeliveryDate != nil &&
			inPeriod(*o.DeliveryDate, periodStart, periodEnd) {
			s.Revenue = s.Revenue.Add(o.CustomerRate)
		}
	}

	for _, q := range quotes {
		switch QuoteDisplayStatus(q, now) {
		case entity.QuoteStatusDraft, entity.QuoteStatusSent:
			s.PendingQuotes++
		}
	}

	for _, inv := range invoices {
		if InvoiceDisplayStatus(inv, now) == entity.InvoiceStatusOverdue {
			s.OverdueInvoices++
		}
	}

	return s
}

// inPeriod verifica t ∈ [start, end] con extremos inclusivos.
func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
