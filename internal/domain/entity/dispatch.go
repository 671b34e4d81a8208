package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un despacho. "cancelled" es alcanzable desde cualquier estado
// no entregado; "delivered" y "cancelled" son terminales.
const (
	DispatchStatusAssigned  = "assigned"
	DispatchStatusInTransit = "in_transit"
	DispatchStatusDelivered = "delivered"
	DispatchStatusCancelled = "cancelled"
)

// Dispatch representa la asignación de un carrier a una orden.
type Dispatch struct {
	ID                    string
	OrderID               string
	CarrierID             *string
	CarrierRate           decimal.Decimal
	DriverName            *string
	DriverPhone           *string
	TruckNumber           *string
	TrailerNumber         *string
	Status                string
	RateConfirmationSent  bool
	EstimatedPickupTime   *time.Time
	ActualPickupTime      *time.Time
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Notes                 *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
