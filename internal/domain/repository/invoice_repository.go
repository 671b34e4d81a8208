package repository

import "github.com/everflown/logistics-api/internal/domain/entity"

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	List(limit, offset int) ([]*entity.Invoice, error)
	// ListAll devuelve todas las facturas (agregados del dashboard).
	ListAll() ([]*entity.Invoice, error)
	Delete(id string) error
}
