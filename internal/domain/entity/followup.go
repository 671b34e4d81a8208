package entity

import "time"

// Prioridades de un FollowUp.
const (
	FollowUpPriorityLow    = "low"
	FollowUpPriorityMedium = "medium"
	FollowUpPriorityHigh   = "high"
	FollowUpPriorityUrgent = "urgent"
)

// Tipos de tarea.
const (
	FollowUpTypeCall    = "call"
	FollowUpTypeEmail   = "email"
	FollowUpTypeMeeting = "meeting"
	FollowUpTypeOther   = "other"
)

// FollowUp representa una tarea o recordatorio ligado a la actividad
// comercial u operativa. No tiene máquina de estados: solo el flag Completed,
// que es de un solo sentido (no hay "des-completar").
type FollowUp struct {
	ID          string
	Title       string
	Description *string
	Type        string
	LeadID      *string
	CustomerID  *string
	CarrierID   *string
	OrderID     *string
	DueDate     time.Time
	Completed   bool
	CompletedAt *time.Time
	Priority    string
	AssignedTo  *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
