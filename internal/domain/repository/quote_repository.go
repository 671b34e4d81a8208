package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// QuoteRepository puerto de persistencia para Quote.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	Update(quote *entity.Quote) error
	List(limit, offset int) ([]*entity.Quote, error)
	// ListAll devuelve todas las cotizaciones (agregados del dashboard).
	ListAll() ([]*entity.Quote, error)
	Delete(id string) error
}
