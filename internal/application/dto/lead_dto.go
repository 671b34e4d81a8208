package dto

import "time"

// CreateLeadRequest alta de lead. El estado inicial es siempre "new".
type CreateLeadRequest struct {
	CompanyName      string     `json:"companyName"`
	ContactPerson    string     `json:"contactPerson"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	OriginCity       *string    `json:"originCity"`
	OriginState      *string    `json:"originState"`
	DestinationCity  *string    `json:"destinationCity"`
	DestinationState *string    `json:"destinationState"`
	PickupDate       *time.Time `json:"pickupDate"`
	EquipmentType    *string    `json:"equipmentType"`
	Commodity        *string    `json:"commodity"`
	Weight           *float64   `json:"weight"`
	Notes            *string    `json:"notes"`
}

// UpdateLeadRequest actualización parcial. Un cambio de Status pasa por la
// validación de transiciones antes de persistirse.
type UpdateLeadRequest struct {
	CompanyName      *string    `json:"companyName"`
	ContactPerson    *string    `json:"contactPerson"`
	Email            *string    `json:"email"`
	Phone            *string    `json:"phone"`
	OriginCity       *string    `json:"originCity"`
	OriginState      *string    `json:"originState"`
	DestinationCity  *string    `json:"destinationCity"`
	DestinationState *string    `json:"destinationState"`
	PickupDate       *time.Time `json:"pickupDate"`
	EquipmentType    *string    `json:"equipmentType"`
	Commodity        *string    `json:"commodity"`
	Weight           *float64   `json:"weight"`
	Notes            *string    `json:"notes"`
	Status           *string    `json:"status"`
}

// LeadResponse lead serializado.
type LeadResponse struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"companyName"`
	ContactPerson    string     `json:"contactPerson"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	OriginCity       *string    `json:"originCity,omitempty"`
	OriginState      *string    `json:"originState,omitempty"`
	DestinationCity  *string    `json:"destinationCity,omitempty"`
	DestinationState *string    `json:"destinationState,omitempty"`
	PickupDate       *time.Time `json:"pickupDate,omitempty"`
	EquipmentType    *string    `json:"equipmentType,omitempty"`
	Commodity        *string    `json:"commodity,omitempty"`
	Weight           *float64   `json:"weight,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// LeadListResponse listado paginado.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
