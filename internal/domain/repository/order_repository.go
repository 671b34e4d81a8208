package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	List(limit, offset int) ([]*entity.Order, error)
	// ListAll devuelve todas las órdenes (agregados del dashboard).
	ListAll() ([]*entity.Order, error)
	Delete(id string) error
}
