package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, company_name, contact_person, email, phone, address, city, state, zip_code,
	billing_address, billing_city, billing_state, billing_zip_code, credit_limit, payment_terms,
	special_instructions, is_active, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyName, customer.ContactPerson, customer.Email, customer.Phone,
		customer.Address, customer.City, customer.State, customer.ZipCode,
		customer.BillingAddress, customer.BillingCity, customer.BillingState, customer.BillingZipCode,
		customer.CreditLimit, customer.PaymentTerms, customer.SpecialInstructions, customer.IsActive,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyName, &c.ContactPerson, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.State, &c.ZipCode,
		&c.BillingAddress, &c.BillingCity, &c.BillingState, &c.BillingZipCode,
		&c.CreditLimit, &c.PaymentTerms, &c.SpecialInstructions, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET company_name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, city = $7, state = $8, zip_code = $9,
			billing_address = $10, billing_city = $11, billing_state = $12, billing_zip_code = $13,
			credit_limit = $14, payment_terms = $15, special_instructions = $16, is_active = $17,
			updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyName, customer.ContactPerson, customer.Email, customer.Phone,
		customer.Address, customer.City, customer.State, customer.ZipCode,
		customer.BillingAddress, customer.BillingCity, customer.BillingState, customer.BillingZipCode,
		customer.CreditLimit, customer.PaymentTerms, customer.SpecialInstructions, customer.IsActive,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY company_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.ContactPerson, &c.Email, &c.Phone,
			&c.Address, &c.City, &c.State, &c.ZipCode,
			&c.BillingAddress, &c.BillingCity, &c.BillingState, &c.BillingZipCode,
			&c.CreditLimit, &c.PaymentTerms, &c.SpecialInstructions, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
