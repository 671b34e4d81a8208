package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// FollowUpRepository puerto de persistencia para FollowUp.
type FollowUpRepository interface {
	Create(followUp *entity.FollowUp) error
	GetByID(id string) (*entity.FollowUp, error)
	Update(followUp *entity.FollowUp) error
	List(limit, offset int) ([]*entity.FollowUp, error)
	// ListOpen devuelve las tareas no completadas (listas de urgentes).
	ListOpen() ([]*entity.FollowUp, error)
	Delete(id string) error
}
