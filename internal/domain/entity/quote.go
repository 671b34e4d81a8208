package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados almacenados de una cotización. "expired" nunca se persiste:
// es un estado derivado (ver lifecycle.QuoteDisplayStatus).
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Quote representa una propuesta de tarifa con vigencia, ligada opcionalmente
// a un Lead o a un Customer.
type Quote struct {
	ID               string
	QuoteNumber      string
	LeadID           *string
	CustomerID       *string
	OriginCity       string
	OriginState      string
	DestinationCity  string
	DestinationState string
	PickupDate       *time.Time
	EquipmentType    string
	Weight           *float64
	Commodity        *string
	QuotedRate       decimal.Decimal
	ValidUntil       time.Time
	Notes            *string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
