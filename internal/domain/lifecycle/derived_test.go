package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestInvoiceDisplayStatus(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	// Enviada y vencida → overdue.
	inv := entity.Invoice{Status: entity.InvoiceStatusSent, DueDate: yesterday}
	assert.Equal(t, "overdue", lifecycle.InvoiceDisplayStatus(inv, now))

	// Pagada → paid, sin importar la fecha.
	inv.Status = entity.InvoiceStatusPaid
	assert.Equal(t, "paid", lifecycle.InvoiceDisplayStatus(inv, now))

	// Enviada pero dentro del plazo → estado almacenado, verbatim.
	inv = entity.Invoice{Status: entity.InvoiceStatusSent, DueDate: tomorrow}
	assert.Equal(t, "sent", lifecycle.InvoiceDisplayStatus(inv, now))

	// Borrador vencido también cuenta como overdue.
	inv = entity.Invoice{Status: entity.InvoiceStatusDraft, DueDate: yesterday}
	assert.Equal(t, "overdue", lifecycle.InvoiceDisplayStatus(inv, now))
}

func TestQuoteDisplayStatus(t *testing.T) {
	// Escenario de la especificación de negocio: enviada en enero, consultada
	// en junio → expirada.
	q := entity.Quote{
		Status:     entity.QuoteStatusSent,
		ValidUntil: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "expired", lifecycle.QuoteDisplayStatus(q, now))

	// Aceptada o rechazada no expiran nunca.
	q.Status = entity.QuoteStatusAccepted
	assert.Equal(t, "accepted", lifecycle.QuoteDisplayStatus(q, now))
	q.Status = entity.QuoteStatusRejected
	assert.Equal(t, "rejected", lifecycle.QuoteDisplayStatus(q, now))

	// Vigente → estado almacenado.
	q = entity.Quote{Status: entity.QuoteStatusSent, ValidUntil: now.Add(time.Hour)}
	assert.Equal(t, "sent", lifecycle.QuoteDisplayStatus(q, now))
}

func TestFollowUpOverdue(t *testing.T) {
	f := entity.FollowUp{DueDate: now.Add(-time.Hour)}
	assert.True(t, lifecycle.FollowUpOverdue(f, now))

	// Completada nunca está vencida.
	f.Completed = true
	assert.False(t, lifecycle.FollowUpOverdue(f, now))

	// Futuras tampoco.
	f = entity.FollowUp{DueDate: now.Add(time.Hour)}
	assert.False(t, lifecycle.FollowUpOverdue(f, now))
}
