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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, customer_id, lead_id, quote_id,
	origin_company, origin_address, origin_city, origin_state, origin_zip_code,
	destination_company, destination_address, destination_city, destination_state, destination_zip_code,
	pickup_date, delivery_date, equipment_type, weight, commodity, customer_rate, status,
	special_instructions, created_at, updated_at`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.CustomerID, order.LeadID, order.QuoteID,
		order.OriginCompany, order.OriginAddress, order.OriginCity, order.OriginState, order.OriginZipCode,
		order.DestinationCompany, order.DestinationAddress, order.DestinationCity, order.DestinationState,
		order.DestinationZipCode, order.PickupDate, order.DeliveryDate, order.EquipmentType,
		order.Weight, order.Commodity, order.CustomerRate, order.Status, order.SpecialInstructions,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.LeadID, &o.QuoteID,
		&o.OriginCompany, &o.OriginAddress, &o.OriginCity, &o.OriginState, &o.OriginZipCode,
		&o.DestinationCompany, &o.DestinationAddress, &o.DestinationCity, &o.DestinationState,
		&o.DestinationZipCode, &o.PickupDate, &o.DeliveryDate, &o.EquipmentType,
		&o.Weight, &o.Commodity, &o.CustomerRate, &o.Status, &o.SpecialInstructions,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update actualiza una orden.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET customer_id = $2, lead_id = $3, quote_id = $4,
			origin_company = $5, origin_address = $6, origin_city = $7, origin_state = $8,
			origin_zip_code = $9, destination_company = $10, destination_address = $11,
			destination_city = $12, destination_state = $13, destination_zip_code = $14,
			pickup_date = $15, delivery_date = $16, equipment_type = $17, weight = $18,
			commodity = $19, customer_rate = $20, status = $21, special_instructions = $22,
			updated_at = $23
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.LeadID, order.QuoteID,
		order.OriginCompany, order.OriginAddress, order.OriginCity, order.OriginState, order.OriginZipCode,
		order.DestinationCompany, order.DestinationAddress, order.DestinationCity, order.DestinationState,
		order.DestinationZipCode, order.PickupDate, order.DeliveryDate, order.EquipmentType,
		order.Weight, order.Commodity, order.CustomerRate, order.Status, order.SpecialInstructions,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// List lista órdenes con paginación, más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return r.scanOrders(rows)
}

// ListAll devuelve todas las órdenes, para los agregados del dashboard.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()
	return r.scanOrders(rows)
}

func (r *OrderRepo) scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.LeadID, &o.QuoteID,
			&o.OriginCompany, &o.OriginAddress, &o.OriginCity, &o.OriginState, &o.OriginZipCode,
			&o.DestinationCompany, &o.DestinationAddress, &o.DestinationCity, &o.DestinationState,
			&o.DestinationZipCode, &o.PickupDate, &o.DeliveryDate, &o.EquipmentType,
			&o.Weight, &o.Commodity, &o.CustomerRate, &o.Status, &o.SpecialInstructions,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
