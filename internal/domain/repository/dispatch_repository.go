package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// DispatchRepository puerto de persistencia para Dispatch.
type DispatchRepository interface {
	Create(dispatch *entity.Dispatch) error
	GetByID(id string) (*entity.Dispatch, error)
	Update(dispatch *entity.Dispatch) error
	List(limit, offset int) ([]*entity.Dispatch, error)
	Delete(id string) error
}
