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

var _ repository.DispatchRepository = (*DispatchRepo)(nil)

// DispatchRepo implementación de DispatchRepository (usable con pool o tx).
type DispatchRepo struct {
	q Querier
}

// NewDispatchRepository construye el adaptador.
func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

const dispatchColumns = `id, order_id, carrier_id, carrier_rate, driver_name, driver_phone,
	truck_number, trailer_number, status, rate_confirmation_sent, estimated_pickup_time,
	actual_pickup_time, estimated_delivery_time, actual_delivery_time, notes, created_at, updated_at`

// Create persiste un nuevo despacho.
func (r *DispatchRepo) Create(dispatch *entity.Dispatch) error {
	query := `
		INSERT INTO dispatches (` + dispatchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		dispatch.ID, dispatch.OrderID, dispatch.CarrierID, dispatch.CarrierRate,
		dispatch.DriverName, dispatch.DriverPhone, dispatch.TruckNumber, dispatch.TrailerNumber,
		dispatch.Status, dispatch.RateConfirmationSent, dispatch.EstimatedPickupTime,
		dispatch.ActualPickupTime, dispatch.EstimatedDeliveryTime, dispatch.ActualDeliveryTime,
		dispatch.Notes, dispatch.CreatedAt, dispatch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// GetByID obtiene un despacho por ID.
func (r *DispatchRepo) GetByID(id string) (*entity.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches WHERE id = $1`
	var d entity.Dispatch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.OrderID, &d.CarrierID, &d.CarrierRate,
		&d.DriverName, &d.DriverPhone, &d.TruckNumber, &d.TrailerNumber,
		&d.Status, &d.RateConfirmationSent, &d.EstimatedPickupTime,
		&d.ActualPickupTime, &d.EstimatedDeliveryTime, &d.ActualDeliveryTime,
		&d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	return &d, nil
}

// Update actualiza un despacho.
func (r *DispatchRepo) Update(dispatch *entity.Dispatch) error {
	query := `
		UPDATE dispatches SET carrier_id = $2, carrier_rate = $3, driver_name = $4, driver_phone = $5,
			truck_number = $6, trailer_number = $7, status = $8, rate_confirmation_sent = $9,
			estimated_pickup_time = $10, actual_pickup_time = $11, estimated_delivery_time = $12,
			actual_delivery_time = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		dispatch.ID, dispatch.CarrierID, dispatch.CarrierRate,
		dispatch.DriverName, dispatch.DriverPhone, dispatch.TruckNumber, dispatch.TrailerNumber,
		dispatch.Status, dispatch.RateConfirmationSent, dispatch.EstimatedPickupTime,
		dispatch.ActualPickupTime, dispatch.EstimatedDeliveryTime, dispatch.ActualDeliveryTime,
		dispatch.Notes, dispatch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update dispatch: %w", err)
	}
	return nil
}

// List lista despachos con paginación, más recientes primero.
func (r *DispatchRepo) List(limit, offset int) ([]*entity.Dispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatches ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dispatch
	for rows.Next() {
		var d entity.Dispatch
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.CarrierID, &d.CarrierRate,
			&d.DriverName, &d.DriverPhone, &d.TruckNumber, &d.TrailerNumber,
			&d.Status, &d.RateConfirmationSent, &d.EstimatedPickupTime,
			&d.ActualPickupTime, &d.EstimatedDeliveryTime, &d.ActualDeliveryTime,
			&d.Notes, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un despacho por ID.
func (r *DispatchRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM dispatches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dispatch: %w", err)
	}
	return nil
}
