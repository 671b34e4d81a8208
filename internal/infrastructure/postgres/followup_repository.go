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

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

// FollowUpRepo implementación de FollowUpRepository (usable con pool o tx).
type FollowUpRepo struct {
	q Querier
}

// NewFollowUpRepository construye el adaptador.
func NewFollowUpRepository(q Querier) *FollowUpRepo {
	return &FollowUpRepo{q: q}
}

const followUpColumns = `id, title, description, type, lead_id, customer_id, carrier_id, order_id,
	due_date, completed, completed_at, priority, assigned_to, notes, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *FollowUpRepo) Create(followUp *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (` + followUpColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		followUp.ID, followUp.Title, followUp.Description, followUp.Type,
		followUp.LeadID, followUp.CustomerID, followUp.CarrierID, followUp.OrderID,
		followUp.DueDate, followUp.Completed, followUp.CompletedAt, followUp.Priority,
		followUp.AssignedTo, followUp.Notes, followUp.CreatedAt, followUp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert follow-up: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *FollowUpRepo) GetByID(id string) (*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE id = $1`
	var f entity.FollowUp
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Title, &f.Description, &f.Type,
		&f.LeadID, &f.CustomerID, &f.CarrierID, &f.OrderID,
		&f.DueDate, &f.Completed, &f.CompletedAt, &f.Priority,
		&f.AssignedTo, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get follow-up: %w", err)
	}
	return &f, nil
}

// Update actualiza una tarea.
func (r *FollowUpRepo) Update(followUp *entity.FollowUp) error {
	query := `
		UPDATE follow_ups SET title = $2, description = $3, type = $4, lead_id = $5,
			customer_id = $6, carrier_id = $7, order_id = $8, due_date = $9, completed = $10,
			completed_at = $11, priority = $12, assigned_to = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		followUp.ID, followUp.Title, followUp.Description, followUp.Type, followUp.LeadID,
		followUp.CustomerID, followUp.CarrierID, followUp.OrderID, followUp.DueDate,
		followUp.Completed, followUp.CompletedAt, followUp.Priority, followUp.AssignedTo,
		followUp.Notes, followUp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update follow-up: %w", err)
	}
	return nil
}

// List lista tareas con paginación, por fecha límite ascendente.
func (r *FollowUpRepo) List(limit, offset int) ([]*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups ORDER BY due_date LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer rows.Close()
	return r.scanFollowUps(rows)
}

// ListOpen devuelve las tareas no completadas, para las listas de urgentes.
func (r *FollowUpRepo) ListOpen() ([]*entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE NOT completed ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list open follow-ups: %w", err)
	}
	defer rows.Close()
	return r.scanFollowUps(rows)
}

func (r *FollowUpRepo) scanFollowUps(rows pgx.Rows) ([]*entity.FollowUp, error) {
	var list []*entity.FollowUp
	for rows.Next() {
		var f entity.FollowUp
		if err := rows.Scan(
			&f.ID, &f.Title, &f.Description, &f.Type,
			&f.LeadID, &f.CustomerID, &f.CarrierID, &f.OrderID,
			&f.DueDate, &f.Completed, &f.CompletedAt, &f.Priority,
			&f.AssignedTo, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una tarea por ID.
func (r *FollowUpRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM follow_ups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}
	return nil
}
