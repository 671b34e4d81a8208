package lifecycle_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
)

func deliveredOrder(rate string, delivered time.Time) entity.Order {
	d := delivered
	return entity.Order{
		Status:       entity.OrderStatusDelivered,
		DeliveryDate: &d,
		CustomerRate: decimal.RequireFromString(rate),
	}
}

func TestAggregateStats_Contadores(t *testing.T) {
	periodStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	orders := []entity.Order{
		{Status: entity.OrderStatusNeedsTruck},
		{Status: entity.OrderStatusDispatched},
		{Status: entity.OrderStatusInTransit},
		{Status: entity.OrderStatusInTransit},
		deliveredOrder("1200.50", periodStart.Add(48*time.Hour)),
	}
	quotes := []entity.Quote{
		{Status: entity.QuoteStatusDraft, ValidUntil: now.Add(time.Hour)},
		{Status: entity.QuoteStatusSent, ValidUntil: now.Add(time.Hour)},
		// Enviada pero vencida: derivada a expired, no cuenta como pendiente.
		{Status: entity.QuoteStatusSent, ValidUntil: now.Add(-time.Hour)},
		{Status: entity.QuoteStatusAccepted, ValidUntil: now.Add(-time.Hour)},
	}
	invoices := []entity.Invoice{
		{Status: entity.InvoiceStatusSent, DueDate: now.Add(-time.Hour)},
		{Status: entity.InvoiceStatusPaid, DueDate: now.Add(-time.Hour)},
		{Status: entity.InvoiceStatusSent, DueDate: now.Add(time.Hour)},
	}

	s := lifecycle.AggregateStats(orders, quotes, invoices, now, periodStart, periodEnd)

	assert.Equal(t, 4, s.ActiveOrders, "todo lo no entregado está activo")
	assert.Equal(t, 2, s.InTransit)
	assert.Equal(t, 2, s.PendingQuotes)
	assert.Equal(t, 1, s.OverdueInvoices)
	assert.True(t, s.Revenue.Equal(decimal.RequireFromString("1200.50")), "revenue = %s", s.Revenue)
}

// El revenue solo suma entregas dentro del período del reporte.
func TestAggregateStats_RevenueRespetaElPeriodo(t *testing.T) {
	periodStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	orders := []entity.Order{
		deliveredOrder("100", periodStart),                    // límite inferior inclusivo
		deliveredOrder("200", periodEnd),                      // límite superior inclusivo
		deliveredOrder("400", periodStart.Add(-time.Second)),  // fuera, antes
		deliveredOrder("800", periodEnd.Add(time.Second)),     // fuera, después
		{Status: entity.OrderStatusDelivered, CustomerRate: decimal.NewFromInt(1600)}, // sin fecha de entrega
	}

	s := lifecycle.AggregateStats(orders, nil, nil, now, periodStart, periodEnd)

	assert.True(t, s.Revenue.Equal(decimal.NewFromInt(300)), "revenue = %s", s.Revenue)
}

// Reducción conmutativa: permutar la entrada no cambia el resultado.
func TestAggregateStats_IndependienteDelOrden(t *testing.T) {
	periodStart := now.AddDate(0, -1, 0)
	periodEnd := now

	orders := []entity.Order{
		{Status: entity.OrderStatusNeedsTruck},
		{Status: entity.OrderStatusInTransit},
		deliveredOrder("350.25", now.Add(-time.Hour)),
		deliveredOrder("100.75", now.Add(-2*time.Hour)),
	}
	quotes := []entity.Quote{
		{Status: entity.QuoteStatusDraft, ValidUntil: now.Add(time.Hour)},
		{Status: entity.QuoteStatusSent, ValidUntil: now.Add(time.Hour)},
	}
	invoices := []entity.Invoice{
		{Status: entity.InvoiceStatusSent, DueDate: now.Add(-time.Hour)},
		{Status: entity.InvoiceStatusDraft, DueDate: now.Add(time.Hour)},
	}

	want := lifecycle.AggregateStats(orders, quotes, invoices, now, periodStart, periodEnd)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(orders), func(a, b int) { orders[a], orders[b] = orders[b], orders[a] })
		r.Shuffle(len(quotes), func(a, b int) { quotes[a], quotes[b] = quotes[b], quotes[a] })
		r.Shuffle(len(invoices), func(a, b int) { invoices[a], invoices[b] = invoices[b], invoices[a] })

		got := lifecycle.AggregateStats(orders, quotes, invoices, now, periodStart, periodEnd)
		assert.Equal(t, want.ActiveOrders, got.ActiveOrders)
		assert.Equal(t, want.InTransit, got.InTransit)
		assert.Equal(t, want.PendingQuotes, got.PendingQuotes)
		assert.Equal(t, want.OverdueInvoices, got.OverdueInvoices)
		assert.True(t, want.Revenue.Equal(got.Revenue))
	}
}

func TestAggregateStats_ColeccionesVacias(t *testing.T) {
	s := lifecycle.AggregateStats(nil, nil, nil, now, now, now)

	assert.Zero(t, s.ActiveOrders)
	assert.Zero(t, s.InTransit)
	assert.Zero(t, s.PendingQuotes)
	assert.Zero(t, s.OverdueInvoices)
	assert.True(t, s.Revenue.IsZero())
}
