package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest alta de factura. Estado inicial "draft".
type CreateInvoiceRequest struct {
	Type       string          `json:"type"` // customer | carrier
	CustomerID *string         `json:"customerId"`
	CarrierID  *string         `json:"carrierId"`
	OrderID    *string         `json:"orderId"`
	DispatchID *string         `json:"dispatchId"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	Notes      *string         `json:"notes"`
}

// UpdateInvoiceRequest actualización parcial.
type UpdateInvoiceRequest struct {
	Amount   *decimal.Decimal `json:"amount"`
	DueDate  *time.Time       `json:"dueDate"`
	PaidDate *time.Time       `json:"paidDate"`
	Notes    *string          `json:"notes"`
	Status   *string          `json:"status"`
}

// InvoiceResponse factura serializada. DisplayStatus es el estado derivado
// ("overdue" si venció sin pagarse); Status es el almacenado.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Type          string          `json:"type"`
	CustomerID    *string         `json:"customerId,omitempty"`
	CarrierID     *string         `json:"carrierId,omitempty"`
	OrderID       *string         `json:"orderId,omitempty"`
	DispatchID    *string         `json:"dispatchId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DisplayStatus string          `json:"displayStatus"`
	DueDate       time.Time       `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
