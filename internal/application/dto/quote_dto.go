package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest alta de cotización. El estado inicial es "draft".
type CreateQuoteRequest struct {
	LeadID           *string         `json:"leadId"`
	CustomerID       *string         `json:"customerId"`
	OriginCity       string          `json:"originCity"`
	OriginState      string          `json:"originState"`
	DestinationCity  string          `json:"destinationCity"`
	DestinationState string          `json:"destinationState"`
	PickupDate       *time.Time      `json:"pickupDate"`
	EquipmentType    string          `json:"equipmentType"`
	Weight           *float64        `json:"weight"`
	Commodity        *string         `json:"commodity"`
	QuotedRate       decimal.Decimal `json:"quotedRate"`
	ValidUntil       time.Time       `json:"validUntil"`
	Notes            *string         `json:"notes"`
}

// UpdateQuoteRequest actualización parcial.
type UpdateQuoteRequest struct {
	OriginCity       *string          `json:"originCity"`
	OriginState      *string          `json:"originState"`
	DestinationCity  *string          `json:"destinationCity"`
	DestinationState *string          `json:"destinationState"`
	PickupDate       *time.Time       `json:"pickupDate"`
	EquipmentType    *string          `json:"equipmentType"`
	Weight           *float64         `json:"weight"`
	Commodity        *string          `json:"commodity"`
	QuotedRate       *decimal.Decimal `json:"quotedRate"`
	ValidUntil       *time.Time       `json:"validUntil"`
	Notes            *string          `json:"notes"`
	Status           *string          `json:"status"`
}

// QuoteResponse cotización serializada. DisplayStatus es el estado derivado
// en el momento de la consulta ("expired" si venció); Status es el almacenado.
type QuoteResponse struct {
	ID               string          `json:"id"`
	QuoteNumber      string          `json:"quoteNumber"`
	LeadID           *string         `json:"leadId,omitempty"`
	CustomerID       *string         `json:"customerId,omitempty"`
	OriginCity       string          `json:"originCity"`
	OriginState      string          `json:"originState"`
	DestinationCity  string          `json:"destinationCity"`
	DestinationState string          `json:"destinationState"`
	PickupDate       *time.Time      `json:"pickupDate,omitempty"`
	EquipmentType    string          `json:"equipmentType"`
	Weight           *float64        `json:"weight,omitempty"`
	Commodity        *string         `json:"commodity,omitempty"`
	QuotedRate       decimal.Decimal `json:"quotedRate"`
	ValidUntil       time.Time       `json:"validUntil"`
	Notes            *string         `json:"notes,omitempty"`
	Status           string          `json:"status"`
	DisplayStatus    string          `json:"displayStatus"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// QuoteListResponse listado paginado.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AcceptQuoteRequest datos para crear la orden al aceptar una cotización.
type AcceptQuoteRequest struct {
	OriginAddress      string    `json:"originAddress"`
	OriginZipCode      string    `json:"originZipCode"`
	DestinationAddress string    `json:"destinationAddress"`
	DestinationZipCode string    `json:"destinationZipCode"`
	PickupDate         time.Time `json:"pickupDate"`
}
