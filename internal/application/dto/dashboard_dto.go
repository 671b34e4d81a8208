package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse contadores agregados del dashboard. Revenue cubre
// el período de reporte indicado en la respuesta.
type DashboardStatsResponse struct {
	ActiveOrders    int             `json:"activeOrders"`
	InTransit       int             `json:"inTransit"`
	PendingQuotes   int             `json:"pendingQuotes"`
	OverdueInvoices int             `json:"overdueInvoices"`
	Revenue         decimal.Decimal `json:"revenue"`
	PeriodStart     string          `json:"periodStart"`
	PeriodEnd       string          `json:"periodEnd"`
}
