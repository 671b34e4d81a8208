package entity

import "time"

// Estados del embudo de un Lead. "converted" y "lost" son terminales.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQuoted    = "quoted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead representa un cliente prospecto antes de cotizar.
type Lead struct {
	ID               string
	CompanyName      string
	ContactPerson    string
	Email            string
	Phone            string
	OriginCity       *string
	OriginState      *string
	DestinationCity  *string
	DestinationState *string
	PickupDate       *time.Time
	EquipmentType    *string
	Commodity        *string
	Weight           *float64
	Notes            *string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
