package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// LeadRepository puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	Update(lead *entity.Lead) error
	List(limit, offset int) ([]*entity.Lead, error)
	Delete(id string) error
}
