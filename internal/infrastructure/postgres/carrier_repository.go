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

var _ repository.CarrierRepository = (*CarrierRepo)(nil)

// CarrierRepo implementación de CarrierRepository (usable con pool o tx).
type CarrierRepo struct {
	q Querier
}

// NewCarrierRepository construye el adaptador.
func NewCarrierRepository(q Querier) *CarrierRepo {
	return &CarrierRepo{q: q}
}

const carrierColumns = `id, company_name, contact_person, email, phone, address, city, state, zip_code,
	mc_number, dot_number, insurance_expiry, w9_on_file, performance_rating, preferred_lanes,
	equipment_types, notes, is_active, created_at, updated_at`

// Create persiste un nuevo transportista.
func (r *CarrierRepo) Create(carrier *entity.Carrier) error {
	query := `
		INSERT INTO carriers (` + carrierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		carrier.ID, carrier.CompanyName, carrier.ContactPerson, carrier.Email, carrier.Phone,
		carrier.Address, carrier.City, carrier.State, carrier.ZipCode,
		carrier.MCNumber, carrier.DOTNumber, carrier.InsuranceExpiry, carrier.W9OnFile,
		carrier.PerformanceRating, carrier.PreferredLanes, carrier.EquipmentTypes, carrier.Notes,
		carrier.IsActive, carrier.CreatedAt, carrier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert carrier: %w", err)
	}
	return nil
}

// GetByID obtiene un transportista por ID.
func (r *CarrierRepo) GetByID(id string) (*entity.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers WHERE id = $1`
	var c entity.Carrier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyName, &c.ContactPerson, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.State, &c.ZipCode,
		&c.MCNumber, &c.DOTNumber, &c.InsuranceExpiry, &c.W9OnFile,
		&c.PerformanceRating, &c.PreferredLanes, &c.EquipmentTypes, &c.Notes,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrier: %w", err)
	}
	return &c, nil
}

// Update actualiza un transportista.
func (r *CarrierRepo) Update(carrier *entity.Carrier) error {
	query := `
		UPDATE carriers SET company_name = $2, contact_person = $3, email = $4, phone = $5,
			address = $6, city = $7, state = $8, zip_code = $9,
			mc_number = $10, dot_number = $11, insurance_expiry = $12, w9_on_file = $13,
			performance_rating = $14, preferred_lanes = $15, equipment_types = $16, notes = $17,
			is_active = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		carrier.ID, carrier.CompanyName, carrier.ContactPerson, carrier.Email, carrier.Phone,
		carrier.Address, carrier.City, carrier.State, carrier.ZipCode,
		carrier.MCNumber, carrier.DOTNumber, carrier.InsuranceExpiry, carrier.W9OnFile,
		carrier.PerformanceRating, carrier.PreferredLanes, carrier.EquipmentTypes, carrier.Notes,
		carrier.IsActive, carrier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update carrier: %w", err)
	}
	return nil
}

// List lista transportistas con paginación.
func (r *CarrierRepo) List(limit, offset int) ([]*entity.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers ORDER BY company_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Carrier
	for rows.Next() {
		var c entity.Carrier
		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.ContactPerson, &c.Email, &c.Phone,
			&c.Address, &c.City, &c.State, &c.ZipCode,
			&c.MCNumber, &c.DOTNumber, &c.InsuranceExpiry, &c.W9OnFile,
			&c.PerformanceRating, &c.PreferredLanes, &c.EquipmentTypes, &c.Notes,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan carrier: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un transportista por ID.
func (r *CarrierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM carriers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete carrier: %w", err)
	}
	return nil
}
