// Package analytics contiene los casos de uso de agregados de negocio: los
// contadores del dashboard operativo de la correduría.
package analytics

import (
	"fmt"
	"time"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// DashboardUseCase computa los contadores del dashboard sobre las colecciones
// completas de órdenes, cotizaciones y facturas. La reducción en sí es pura
// (lifecycle.AggregateStats); aquí solo se cargan los datos y se fija el
// período de reporte.
type DashboardUseCase struct {
	orderRepo   repository.OrderRepository
	quoteRepo   repository.QuoteRepository
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	quoteRepo repository.QuoteRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		orderRepo:   orderRepo,
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
	}
}

// GetStats computa los contadores para el período [periodStart, periodEnd].
// Si el período viene en cero se usa el mes en curso: día 1 a las 00:00 hasta
// hoy a las 23:59:59.
func (uc *DashboardUseCase) GetStats(periodStart, periodEnd time.Time) (*dto.DashboardStatsResponse, error) {
	now := time.Now()
	if periodStart.IsZero() || periodEnd.IsZero() {
		periodStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		periodEnd = dayStart.Add(24*time.Hour - time.Nanosecond)
	}

	// ── Goroutines para paralelizar las 3 cargas ──────────────────────────────
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}
	type quotesResult struct {
		quotes []*entity.Quote
		err    error
	}
	type invoicesResult struct {
		invoices []*entity.Invoice
		err      error
	}

	ordersCh := make(chan ordersResult, 1)
	quotesCh := make(chan quotesResult, 1)
	invoicesCh := make(chan invoicesResult, 1)

	go func() {
		list, err := uc.orderRepo.ListAll()
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.quoteRepo.ListAll()
		quotesCh <- quotesResult{list, err}
	}()
	go func() {
		list, err := uc.invoiceRepo.ListAll()
		invoicesCh <- invoicesResult{list, err}
	}()

	ordersRes := <-ordersCh
	quotesRes := <-quotesCh
	invoicesRes := <-invoicesCh

	if ordersRes.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", ordersRes.err)
	}
	if quotesRes.err != nil {
		return nil, fmt.Errorf("dashboard: cotizaciones: %w", quotesRes.err)
	}
	if invoicesRes.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoicesRes.err)
	}

	orders := make([]entity.Order, 0, len(ordersRes.orders))
	for _, o := range ordersRes.orders {
		orders = append(orders, *o)
	}
	quotes := make([]entity.Quote, 0, len(quotesRes.quotes))
	for _, q := range quotesRes.quotes {
		quotes = append(quotes, *q)
	}
	invoices := make([]entity.Invoice, 0, len(invoicesRes.invoices))
	for _, inv := range invoicesRes.invoices {
		invoices = append(invoices, *inv)
	}

	stats := lifecycle.AggregateStats(orders, quotes, invoices, now, periodStart, periodEnd)

	return &dto.DashboardStatsResponse{
		ActiveOrders:    stats.ActiveOrders,
		InTransit:       stats.InTransit,
		PendingQuotes:   stats.PendingQuotes,
		OverdueInvoices: stats.OverdueInvoices,
		Revenue:         stats.Revenue.Round(2),
		PeriodStart:     periodStart.Format("2006-01-02"),
		PeriodEnd:       periodEnd.Format("2006-01-02"),
	}, nil
}
