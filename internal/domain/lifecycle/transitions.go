// Package lifecycle define las máquinas de estado de cada entidad de la
// correduría y las clasificaciones derivadas que dependen del instante de
// consulta (vencido, expirado, urgente) y los agregados del dashboard.
//
// Todo es puro y síncrono: las funciones reciben las colecciones y el "now"
// como parámetros explícitos, no leen reloj ni estado global. Ninguna entidad
// transiciona sola; cada cambio de estado lo solicita un caller y se valida
// aquí.
package lifecycle

import (
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
)

// Kind identifica la entidad cuya máquina de estados se consulta.
type Kind string

// Entidades con máquina de estados. FollowUp no aparece: su ciclo es solo el
// flag Completed.
const (
	KindLead     Kind = "lead"
	KindQuote    Kind = "quote"
	KindOrder    Kind = "order"
	KindDispatch Kind = "dispatch"
	KindInvoice  Kind = "invoice"
)

// Transiciones permitidas por entidad. Un estado ausente del mapa interior es
// terminal; la auto-transición se permite siempre (no-op idempotente) y no se
// lista.
var (
	leadTransitions = map[string]map[string]bool{
		entity.LeadStatusNew:       {entity.LeadStatusContacted: true, entity.LeadStatusLost: true},
		entity.LeadStatusContacted: {entity.LeadStatusQuoted: true, entity.LeadStatusLost: true},
		entity.LeadStatusQuoted:    {entity.LeadStatusConverted: true, entity.LeadStatusLost: true},
		entity.LeadStatusConverted: {},
		entity.LeadStatusLost:      {},
	}

	quoteTransitions = map[string]map[string]bool{
		entity.QuoteStatusDraft: {entity.QuoteStatusSent: true},
		entity.QuoteStatusSent: {
			entity.QuoteStatusAccepted: true,
			entity.QuoteStatusRejected: true,
			entity.QuoteStatusExpired:  true,
		},
		entity.QuoteStatusAccepted: {},
		entity.QuoteStatusRejected: {},
		entity.QuoteStatusExpired:  {},
	}

	orderTransitions = map[string]map[string]bool{
		entity.OrderStatusNeedsTruck: {entity.OrderStatusDispatched: true},
		entity.OrderStatusDispatched: {entity.OrderStatusInTransit: true},
		entity.OrderStatusInTransit:  {entity.OrderStatusDelivered: true},
		entity.OrderStatusDelivered:  {},
	}

	dispatchTransitions = map[string]map[string]bool{
		entity.DispatchStatusAssigned: {
			entity.DispatchStatusInTransit: true,
			entity.DispatchStatusCancelled: true,
		},
		entity.DispatchStatusInTransit: {
			entity.DispatchStatusDelivered: true,
			entity.DispatchStatusCancelled: true,
		},
		entity.DispatchStatusDelivered: {},
		entity.DispatchStatusCancelled: {},
	}

	// "overdue" no aparece: es un estado derivado, nunca almacenado.
	invoiceTransitions = map[string]map[string]bool{
		entity.InvoiceStatusDraft: {entity.InvoiceStatusSent: true},
		entity.InvoiceStatusSent:  {entity.InvoiceStatusPaid: true},
		entity.InvoiceStatusPaid:  {},
	}

	tables = map[Kind]map[string]map[string]bool{
		KindLead:     leadTransitions,
		KindQuote:    quoteTransitions,
		KindOrder:    orderTransitions,
		KindDispatch: dispatchTransitions,
		KindInvoice:  invoiceTransitions,
	}
)

// NormalizeStatus canonicaliza los alias históricos de estado antes de
// validar: "won" → "converted" en leads y "picked_up" → "in_transit" en
// despachos. Cualquier otro valor se devuelve tal cual.
func NormalizeStatus(kind Kind, status string) string {
	switch {
	case kind == KindLead && status == "won":
		return entity.LeadStatusConverted
	case kind == KindDispatch && status == "picked_up":
		return entity.DispatchStatusInTransit
	}
	return status
}

// ValidateTransition decide si el cambio de estado solicitado es legal.
//
//   - Estado (origen o destino) fuera del conjunto de la entidad →
//     domain.ErrUnknownState; nunca se coerce en silencio a un default.
//   - Ambos estados válidos pero el par no está en la tabla →
//     domain.ErrIllegalTransition.
//   - from == to → legal siempre, incluso en estados terminales (no-op).
func ValidateTransition(kind Kind, from, to string) error {
	table, ok := tables[kind]
	if !ok {
		return domain.ErrUnknownState
	}
	from = NormalizeStatus(kind, from)
	to = NormalizeStatus(kind, to)

	nexts, ok := table[from]
	if !ok {
		return domain.ErrUnknownState
	}
	if _, ok := table[to]; !ok {
		return domain.ErrUnknownState
	}
	if from == to {
		return nil
	}
	if !nexts[to] {
		return domain.ErrIllegalTransition
	}
	return nil
}

// IsTerminal informa si un estado no tiene transiciones de salida. Estados o
// entidades desconocidos devuelven false.
func IsTerminal(kind Kind, status string) bool {
	table, ok := tables[kind]
	if !ok {
		return false
	}
	nexts, ok := table[NormalizeStatus(kind, status)]
	if !ok {
		return false
	}
	return len(nexts) == 0
}

// KnownStates devuelve el conjunto de estados definidos para la entidad.
func KnownStates(kind Kind) []string {
	table, ok := tables[kind]
	if !ok {
		return nil
	}
	states := make([]string, 0, len(table))
	for s := range table {
		states = append(states, s)
	}
	return states
}
