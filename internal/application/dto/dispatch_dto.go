package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDispatchRequest asignación de carrier a una orden. Estado inicial "assigned".
type CreateDispatchRequest struct {
	OrderID               string          `json:"orderId"`
	CarrierID             *string         `json:"carrierId"`
	CarrierRate           decimal.Decimal `json:"carrierRate"`
	DriverName            *string         `json:"driverName"`
	DriverPhone           *string         `json:"driverPhone"`
	TruckNumber           *string         `json:"truckNumber"`
	TrailerNumber         *string         `json:"trailerNumber"`
	EstimatedPickupTime   *time.Time      `json:"estimatedPickupTime"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime"`
	Notes                 *string         `json:"notes"`
}

// UpdateDispatchRequest actualización parcial.
type UpdateDispatchRequest struct {
	CarrierID             *string          `json:"carrierId"`
	CarrierRate           *decimal.Decimal `json:"carrierRate"`
	DriverName            *string          `json:"driverName"`
	DriverPhone           *string          `json:"driverPhone"`
	TruckNumber           *string          `json:"truckNumber"`
	TrailerNumber         *string          `json:"trailerNumber"`
	RateConfirmationSent  *bool            `json:"rateConfirmationSent"`
	EstimatedPickupTime   *time.Time       `json:"estimatedPickupTime"`
	ActualPickupTime      *time.Time       `json:"actualPickupTime"`
	EstimatedDeliveryTime *time.Time       `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time       `json:"actualDeliveryTime"`
	Notes                 *string          `json:"notes"`
	Status                *string          `json:"status"`
}

// DispatchResponse despacho serializado.
type DispatchResponse struct {
	ID                    string          `json:"id"`
	OrderID               string          `json:"orderId"`
	CarrierID             *string         `json:"carrierId,omitempty"`
	CarrierRate           decimal.Decimal `json:"carrierRate"`
	DriverName            *string         `json:"driverName,omitempty"`
	DriverPhone           *string         `json:"driverPhone,omitempty"`
	TruckNumber           *string         `json:"truckNumber,omitempty"`
	TrailerNumber         *string         `json:"trailerNumber,omitempty"`
	Status                string          `json:"status"`
	RateConfirmationSent  bool            `json:"rateConfirmationSent"`
	EstimatedPickupTime   *time.Time      `json:"estimatedPickupTime,omitempty"`
	ActualPickupTime      *time.Time      `json:"actualPickupTime,omitempty"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time      `json:"actualDeliveryTime,omitempty"`
	Notes                 *string         `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// DispatchListResponse listado paginado.
type DispatchListResponse struct {
	Items []DispatchResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
