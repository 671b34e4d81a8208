package lifecycle

import (
	"time"

	"github.com/everflown/logistics-api/internal/domain/entity"
)

// Estados derivados: proyecciones puras del estado almacenado más el instante
// de consulta. Nunca se cachean ni se escriben de vuelta a la entidad, así
// que no pueden quedar obsoletos.

// InvoiceDisplayStatus devuelve "overdue" si la factura no está pagada y su
// fecha de vencimiento ya pasó; en cualquier otro caso devuelve el estado
// almacenado tal cual.
func InvoiceDisplayStatus(inv entity.Invoice, now time.Time) string {
	if inv.Status != entity.InvoiceStatusPaid && inv.DueDate.Before(now) {
		return entity.InvoiceStatusOverdue
	}
	return inv.Status
}

// QuoteDisplayStatus devuelve "expired" si la cotización pasó su vigencia sin
// haber sido aceptada ni rechazada; si no, el estado almacenado tal cual.
func QuoteDisplayStatus(q entity.Quote, now time.Time) string {
	if q.Status != entity.QuoteStatusAccepted && q.Status != entity.QuoteStatusRejected && q.ValidUntil.Before(now) {
		return entity.QuoteStatusExpired
	}
	return q.Status
}

// FollowUpOverdue informa si una tarea está vencida: incompleta y con fecha
// límite anterior a now.
func FollowUpOverdue(f entity.FollowUp, now time.Time) bool {
	return !f.Completed && f.DueDate.Before(now)
}
