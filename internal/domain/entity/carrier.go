package entity

import "time"

// Carrier representa un transportista con el que se despachan órdenes.
type Carrier struct {
	ID                string
	CompanyName       string
	ContactPerson     string
	Email             string
	Phone             string
	Address           *string
	City              *string
	State             *string
	ZipCode           *string
	MCNumber          *string
	DOTNumber         *string
	InsuranceExpiry   *time.Time
	W9OnFile          bool
	PerformanceRating float64
	PreferredLanes    *string
	EquipmentTypes    *string
	Notes             *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
