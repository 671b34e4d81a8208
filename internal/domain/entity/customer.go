package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente activo de la correduría.
type Customer struct {
	ID                  string
	CompanyName         string
	ContactPerson       string
	Email               string
	Phone               string
	Address             *string
	City                *string
	State               *string
	ZipCode             *string
	BillingAddress      *string
	BillingCity         *string
	BillingState        *string
	BillingZipCode      *string
	CreditLimit         *decimal.Decimal
	PaymentTerms        string // ej. "Net 30"
	SpecialInstructions *string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
