package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta directa de orden (sin cotización previa).
// El estado inicial es "needs_truck".
type CreateOrderRequest struct {
	CustomerID          *string         `json:"customerId"`
	LeadID              *string         `json:"leadId"`
	OriginCompany       *string         `json:"originCompany"`
	OriginAddress       string          `json:"originAddress"`
	OriginCity          string          `json:"originCity"`
	OriginState         string          `json:"originState"`
	OriginZipCode       string          `json:"originZipCode"`
	DestinationCompany  *string         `json:"destinationCompany"`
	DestinationAddress  string          `json:"destinationAddress"`
	DestinationCity     string          `json:"destinationCity"`
	DestinationState    string          `json:"destinationState"`
	DestinationZipCode  string          `json:"destinationZipCode"`
	PickupDate          time.Time       `json:"pickupDate"`
	DeliveryDate        *time.Time      `json:"deliveryDate"`
	EquipmentType       string          `json:"equipmentType"`
	Weight              *float64        `json:"weight"`
	Commodity           *string         `json:"commodity"`
	CustomerRate        decimal.Decimal `json:"customerRate"`
	SpecialInstructions *string         `json:"specialInstructions"`
}

// UpdateOrderRequest actualización parcial.
type UpdateOrderRequest struct {
	OriginCompany       *string          `json:"originCompany"`
	OriginAddress       *string          `json:"originAddress"`
	DestinationCompany  *string          `json:"destinationCompany"`
	DestinationAddress  *string          `json:"destinationAddress"`
	PickupDate          *time.Time       `json:"pickupDate"`
	DeliveryDate        *time.Time       `json:"deliveryDate"`
	EquipmentType       *string          `json:"equipmentType"`
	Weight              *float64         `json:"weight"`
	Commodity           *string          `json:"commodity"`
	CustomerRate        *decimal.Decimal `json:"customerRate"`
	SpecialInstructions *string          `json:"specialInstructions"`
	Status              *string          `json:"status"`
}

// OrderResponse orden serializada.
type OrderResponse struct {
	ID                  string          `json:"id"`
	OrderNumber         string          `json:"orderNumber"`
	CustomerID          *string         `json:"customerId,omitempty"`
	LeadID              *string         `json:"leadId,omitempty"`
	QuoteID             *string         `json:"quoteId,omitempty"`
	OriginCompany       *string         `json:"originCompany,omitempty"`
	OriginAddress       string          `json:"originAddress"`
	OriginCity          string          `json:"originCity"`
	OriginState         string          `json:"originState"`
	OriginZipCode       string          `json:"originZipCode"`
	DestinationCompany  *string         `json:"destinationCompany,omitempty"`
	DestinationAddress  string          `json:"destinationAddress"`
	DestinationCity     string          `json:"destinationCity"`
	DestinationState    string          `json:"destinationState"`
	DestinationZipCode  string          `json:"destinationZipCode"`
	PickupDate          time.Time       `json:"pickupDate"`
	DeliveryDate        *time.Time      `json:"deliveryDate,omitempty"`
	EquipmentType       string          `json:"equipmentType"`
	Weight              *float64        `json:"weight,omitempty"`
	Commodity           *string         `json:"commodity,omitempty"`
	CustomerRate        decimal.Decimal `json:"customerRate"`
	Status              string          `json:"status"`
	SpecialInstructions *string         `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
