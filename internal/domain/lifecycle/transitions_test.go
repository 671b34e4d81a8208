package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidateTransition — transiciones legales por entidad
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_Lead_EmbudoCompleto(t *testing.T) {
	legal := [][2]string{
		{"new", "contacted"},
		{"contacted", "quoted"},
		{"quoted", "converted"},
		{"new", "lost"},
		{"contacted", "lost"},
		{"quoted", "lost"},
	}
	for _, tr := range legal {
		assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindLead, tr[0], tr[1]),
			"%s → %s debe ser legal", tr[0], tr[1])
	}

	// No se salta el embudo ni se retrocede.
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "new", "quoted"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "new", "converted"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "quoted", "new"), domain.ErrIllegalTransition)
}

func TestValidateTransition_Lead_TerminalesSinSalida(t *testing.T) {
	for _, terminal := range []string{"converted", "lost"} {
		require.True(t, lifecycle.IsTerminal(lifecycle.KindLead, terminal), terminal)
		// Auto-transición sigue siendo legal (no-op)...
		assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindLead, terminal, terminal))
		// ...pero cualquier otra salida se rechaza.
		assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, terminal, "contacted"),
			domain.ErrIllegalTransition)
	}
}

// "won" es un alias histórico de "converted" y se normaliza antes de validar.
func TestValidateTransition_Lead_AliasWon(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindLead, "quoted", "won"))
	assert.Equal(t, "converted", lifecycle.NormalizeStatus(lifecycle.KindLead, "won"))
}

func TestValidateTransition_Quote(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "draft", "sent"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "sent", "accepted"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "sent", "rejected"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "sent", "expired"))

	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "draft", "accepted"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "accepted", "rejected"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindQuote, "rejected", "sent"), domain.ErrIllegalTransition)
}

func TestValidateTransition_Order_SoloHaciaAdelante(t *testing.T) {
	chain := []string{"needs_truck", "dispatched", "in_transit", "delivered"}
	for i := 0; i < len(chain)-1; i++ {
		assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindOrder, chain[i], chain[i+1]))
	}

	// Ni saltos ni retrocesos.
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindOrder, "needs_truck", "in_transit"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindOrder, "needs_truck", "delivered"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindOrder, "delivered", "needs_truck"), domain.ErrIllegalTransition)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindOrder, "in_transit", "dispatched"), domain.ErrIllegalTransition)
}

func TestValidateTransition_Dispatch_CancelledNoDesdeDelivered(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "assigned", "in_transit"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "assigned", "cancelled"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "in_transit", "cancelled"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "in_transit", "delivered"))

	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "delivered", "cancelled"),
		domain.ErrIllegalTransition, "entregado no se cancela")
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "cancelled", "assigned"),
		domain.ErrIllegalTransition)
}

// "picked_up" es alias de "in_transit" en despachos.
func TestValidateTransition_Dispatch_AliasPickedUp(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "assigned", "picked_up"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindDispatch, "picked_up", "delivered"))
}

func TestValidateTransition_Invoice_OverdueNoEsEstadoAlmacenado(t *testing.T) {
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindInvoice, "draft", "sent"))
	assert.NoError(t, lifecycle.ValidateTransition(lifecycle.KindInvoice, "sent", "paid"))
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindInvoice, "sent", "draft"), domain.ErrIllegalTransition)

	// "overdue" es solo derivado: intentar almacenarlo es estado desconocido.
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindInvoice, "sent", "overdue"), domain.ErrUnknownState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados desconocidos y auto-transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateTransition_EstadoDesconocido(t *testing.T) {
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "pending", "contacted"), domain.ErrUnknownState)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "new", "archived"), domain.ErrUnknownState)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.KindLead, "", "new"), domain.ErrUnknownState)
	assert.ErrorIs(t, lifecycle.ValidateTransition(lifecycle.Kind("truck"), "a", "b"), domain.ErrUnknownState)
}

func TestValidateTransition_AutoTransicionSiempreLegal(t *testing.T) {
	cases := map[lifecycle.Kind][]string{
		lifecycle.KindLead:     {"new", "contacted", "quoted", "converted", "lost"},
		lifecycle.KindQuote:    {"draft", "sent", "accepted", "rejected", "expired"},
		lifecycle.KindOrder:    {"needs_truck", "dispatched", "in_transit", "delivered"},
		lifecycle.KindDispatch: {"assigned", "in_transit", "delivered", "cancelled"},
		lifecycle.KindInvoice:  {"draft", "sent", "paid"},
	}
	for kind, states := range cases {
		for _, s := range states {
			assert.NoError(t, lifecycle.ValidateTransition(kind, s, s),
				"%s: %s → %s debe ser no-op legal", kind, s, s)
		}
	}
}

// Propiedad §tabla: para todo par de estados conocidos, el resultado coincide
// con la tabla (legal ⇔ en tabla o from==to).
func TestValidateTransition_ConsistenteConKnownStates(t *testing.T) {
	for _, kind := range []lifecycle.Kind{
		lifecycle.KindLead, lifecycle.KindQuote, lifecycle.KindOrder,
		lifecycle.KindDispatch, lifecycle.KindInvoice,
	} {
		states := lifecycle.KnownStates(kind)
		require.NotEmpty(t, states, kind)
		for _, from := range states {
			for _, to := range states {
				err := lifecycle.ValidateTransition(kind, from, to)
				if from == to {
					assert.NoError(t, err, "%s: %s → %s", kind, from, to)
					continue
				}
				if err != nil {
					assert.ErrorIs(t, err, domain.ErrIllegalTransition,
						"%s: %s → %s solo puede fallar por transición ilegal", kind, from, to)
				}
			}
		}
	}
}
