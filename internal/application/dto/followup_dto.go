package dto

import "time"

// CreateFollowUpRequest alta de tarea.
type CreateFollowUpRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Type        string    `json:"type"` // call | email | meeting | other
	LeadID      *string   `json:"leadId"`
	CustomerID  *string   `json:"customerId"`
	CarrierID   *string   `json:"carrierId"`
	OrderID     *string   `json:"orderId"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"` // low | medium | high | urgent
	AssignedTo  *string   `json:"assignedTo"`
	Notes       *string   `json:"notes"`
}

// UpdateFollowUpRequest actualización parcial. Completed solo admite la
// transición false → true; completar fija CompletedAt en el servidor.
type UpdateFollowUpRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	AssignedTo  *string    `json:"assignedTo"`
	Notes       *string    `json:"notes"`
	Completed   *bool      `json:"completed"`
}

// FollowUpResponse tarea serializada. Overdue es derivado del instante de
// consulta, nunca almacenado.
type FollowUpResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Type        string     `json:"type"`
	LeadID      *string    `json:"leadId,omitempty"`
	CustomerID  *string    `json:"customerId,omitempty"`
	CarrierID   *string    `json:"carrierId,omitempty"`
	OrderID     *string    `json:"orderId,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Priority    string     `json:"priority"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FollowUpListResponse listado paginado.
type FollowUpListResponse struct {
	Items []FollowUpResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
