package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

var _ usecase.QuoteAcceptTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuoteAccept inicia una transacción, ejecuta fn con repos de cotizaciones
// y órdenes atados a la tx, y hace Commit o Rollback. Aceptar la cotización y
// crear su orden es todo-o-nada.
func (r *TxRunner) RunQuoteAccept(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quoteRepo := NewQuoteRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(quoteRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
