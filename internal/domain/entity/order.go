package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. Progresión estrictamente hacia adelante.
const (
	OrderStatusNeedsTruck = "needs_truck"
	OrderStatusDispatched = "dispatched"
	OrderStatusInTransit  = "in_transit"
	OrderStatusDelivered  = "delivered"
)

// Order representa un envío confirmado, creado desde una cotización aceptada
// o directamente.
type Order struct {
	ID                  string
	OrderNumber         string
	CustomerID          *string
	LeadID              *string
	QuoteID             *string
	OriginCompany       *string
	OriginAddress       string
	OriginCity          string
	OriginState         string
	OriginZipCode       string
	DestinationCompany  *string
	DestinationAddress  string
	DestinationCity     string
	DestinationState    string
	DestinationZipCode  string
	PickupDate          time.Time
	DeliveryDate        *time.Time
	EquipmentType       string
	Weight              *float64
	Commodity           *string
	CustomerRate        decimal.Decimal
	Status              string
	SpecialInstructions *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
