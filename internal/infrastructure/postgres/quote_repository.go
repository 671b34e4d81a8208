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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, quote_number, lead_id, customer_id, origin_city, origin_state,
	destination_city, destination_state, pickup_date, equipment_type, weight, commodity,
	quoted_rate, valid_until, notes, status, created_at, updated_at`

// Create persiste una nueva cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.QuoteNumber, quote.LeadID, quote.CustomerID,
		quote.OriginCity, quote.OriginState, quote.DestinationCity, quote.DestinationState,
		quote.PickupDate, quote.EquipmentType, quote.Weight, quote.Commodity,
		quote.QuotedRate, quote.ValidUntil, quote.Notes, quote.Status,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.QuoteNumber, &q.LeadID, &q.CustomerID,
		&q.OriginCity, &q.OriginState, &q.DestinationCity, &q.DestinationState,
		&q.PickupDate, &q.EquipmentType, &q.Weight, &q.Commodity,
		&q.QuotedRate, &q.ValidUntil, &q.Notes, &q.Status,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// Update actualiza una cotización.
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET lead_id = $2, customer_id = $3, origin_city = $4, origin_state = $5,
			destination_city = $6, destination_state = $7, pickup_date = $8, equipment_type = $9,
			weight = $10, commodity = $11, quoted_rate = $12, valid_until = $13, notes = $14,
			status = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.LeadID, quote.CustomerID,
		quote.OriginCity, quote.OriginState, quote.DestinationCity, quote.DestinationState,
		quote.PickupDate, quote.EquipmentType, quote.Weight, quote.Commodity,
		quote.QuotedRate, quote.ValidUntil, quote.Notes, quote.Status, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// List lista cotizaciones con paginación, más recientes primero.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	return r.scanQuotes(rows)
}

// ListAll devuelve todas las cotizaciones, para los agregados del dashboard.
func (r *QuoteRepo) ListAll() ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all quotes: %w", err)
	}
	defer rows.Close()
	return r.scanQuotes(rows)
}

func (r *QuoteRepo) scanQuotes(rows pgx.Rows) ([]*entity.Quote, error) {
	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.QuoteNumber, &q.LeadID, &q.CustomerID,
			&q.OriginCity, &q.OriginState, &q.DestinationCity, &q.DestinationState,
			&q.PickupDate, &q.EquipmentType, &q.Weight, &q.Commodity,
			&q.QuotedRate, &q.ValidUntil, &q.Notes, &q.Status,
			&q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Delete elimina una cotización por ID.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}
