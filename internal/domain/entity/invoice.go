package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados almacenados de una factura. "overdue" nunca se persiste: es un
// estado derivado en función de la fecha de vencimiento
// (ver lifecycle.InvoiceDisplayStatus).
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Tipos de factura: por cobrar al cliente o por pagar al carrier.
const (
	InvoiceTypeCustomer = "customer"
	InvoiceTypeCarrier  = "carrier"
)

// Invoice representa un documento de cobro o de pago.
type Invoice struct {
	ID            string
	InvoiceNumber string
	Type          string // customer | carrier
	CustomerID    *string
	CarrierID     *string
	OrderID       *string
	DispatchID    *string
	Amount        decimal.Decimal
	Status        string
	DueDate       time.Time
	PaidDate      *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
