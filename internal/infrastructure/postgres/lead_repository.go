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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, company_name, contact_person, email, phone, origin_city, origin_state,
	destination_city, destination_state, pickup_date, equipment_type, commodity, weight, notes,
	status, created_at, updated_at`

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.CompanyName, lead.ContactPerson, lead.Email, lead.Phone,
		lead.OriginCity, lead.OriginState, lead.DestinationCity, lead.DestinationState,
		lead.PickupDate, lead.EquipmentType, lead.Commodity, lead.Weight, lead.Notes,
		lead.Status, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CompanyName, &l.ContactPerson, &l.Email, &l.Phone,
		&l.OriginCity, &l.OriginState, &l.DestinationCity, &l.DestinationState,
		&l.PickupDate, &l.EquipmentType, &l.Commodity, &l.Weight, &l.Notes,
		&l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// Update actualiza un lead.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET company_name = $2, contact_person = $3, email = $4, phone = $5,
			origin_city = $6, origin_state = $7, destination_city = $8, destination_state = $9,
			pickup_date = $10, equipment_type = $11, commodity = $12, weight = $13, notes = $14,
			status = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.CompanyName, lead.ContactPerson, lead.Email, lead.Phone,
		lead.OriginCity, lead.OriginState, lead.DestinationCity, lead.DestinationState,
		lead.PickupDate, lead.EquipmentType, lead.Commodity, lead.Weight, lead.Notes,
		lead.Status, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// List lista leads con paginación, más recientes primero.
func (r *LeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID, &l.CompanyName, &l.ContactPerson, &l.Email, &l.Phone,
			&l.OriginCity, &l.OriginState, &l.DestinationCity, &l.DestinationState,
			&l.PickupDate, &l.EquipmentType, &l.Commodity, &l.Weight, &l.Notes,
			&l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un lead por ID.
func (r *LeadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
