package dto

import "time"

// CreateCarrierRequest alta de transportista.
type CreateCarrierRequest struct {
	CompanyName     string     `json:"companyName"`
	ContactPerson   string     `json:"contactPerson"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         *string    `json:"address"`
	City            *string    `json:"city"`
	State           *string    `json:"state"`
	ZipCode         *string    `json:"zipCode"`
	MCNumber        *string    `json:"mcNumber"`
	DOTNumber       *string    `json:"dotNumber"`
	InsuranceExpiry *time.Time `json:"insuranceExpiry"`
	W9OnFile        bool       `json:"w9OnFile"`
	PreferredLanes  *string    `json:"preferredLanes"`
	EquipmentTypes  *string    `json:"equipmentTypes"`
	Notes           *string    `json:"notes"`
}

// UpdateCarrierRequest actualización parcial.
type UpdateCarrierRequest struct {
	CompanyName       *string    `json:"companyName"`
	ContactPerson     *string    `json:"contactPerson"`
	Email             *string    `json:"email"`
	Phone             *string    `json:"phone"`
	Address           *string    `json:"address"`
	City              *string    `json:"city"`
	State             *string    `json:"state"`
	ZipCode           *string    `json:"zipCode"`
	MCNumber          *string    `json:"mcNumber"`
	DOTNumber         *string    `json:"dotNumber"`
	InsuranceExpiry   *time.Time `json:"insuranceExpiry"`
	W9OnFile          *bool      `json:"w9OnFile"`
	PerformanceRating *float64   `json:"performanceRating"`
	PreferredLanes    *string    `json:"preferredLanes"`
	EquipmentTypes    *string    `json:"equipmentTypes"`
	Notes             *string    `json:"notes"`
	IsActive          *bool      `json:"isActive"`
}

// CarrierResponse transportista serializado.
type CarrierResponse struct {
	ID                string     `json:"id"`
	CompanyName       string     `json:"companyName"`
	ContactPerson     string     `json:"contactPerson"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Address           *string    `json:"address,omitempty"`
	City              *string    `json:"city,omitempty"`
	State             *string    `json:"state,omitempty"`
	ZipCode           *string    `json:"zipCode,omitempty"`
	MCNumber          *string    `json:"mcNumber,omitempty"`
	DOTNumber         *string    `json:"dotNumber,omitempty"`
	InsuranceExpiry   *time.Time `json:"insuranceExpiry,omitempty"`
	W9OnFile          bool       `json:"w9OnFile"`
	PerformanceRating float64    `json:"performanceRating"`
	PreferredLanes    *string    `json:"preferredLanes,omitempty"`
	EquipmentTypes    *string    `json:"equipmentTypes,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CarrierListResponse listado paginado.
type CarrierListResponse struct {
	Items []CarrierResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
