package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// CarrierRepository puerto de persistencia para Carrier.
type CarrierRepository interface {
	Create(carrier *entity.Carrier) error
	GetByID(id string) (*entity.Carrier, error)
	Update(carrier *entity.Carrier) error
	List(limit, offset int) ([]*entity.Carrier, error)
	Delete(id string) error
}
