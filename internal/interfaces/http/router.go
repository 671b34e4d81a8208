package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/analytics"
	"github.com/everflown/logistics-api/internal/application/auth"
	"github.com/everflown/logistics-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	LeadUC      *usecase.LeadUseCase
	CustomerUC  *usecase.CustomerUseCase
	CarrierUC   *usecase.CarrierUseCase
	QuoteUC     *usecase.QuoteUseCase
	OrderUC     *usecase.OrderUseCase
	DispatchUC  *usecase.DispatchUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	FollowUpUC  *usecase.FollowUpUseCase
	DocumentUC  *usecase.DocumentUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas de escritura van gateadas
// por RequirePermission; la resolución de permisos es por rol y fail-closed.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Users (solo quien puede gestionar usuarios)
	users := protected.Group("/users", RequirePermission("users", "create"))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard (reportes)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", RequirePermission("reports", "view"), dashboardHandler.Stats)

	// Leads
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", RequirePermission("leads", "read"), leadHandler.List)
	leads.Get("/:id", RequirePermission("leads", "read"), leadHandler.GetByID)
	leads.Post("/", RequirePermission("leads", "create"), leadHandler.Create)
	leads.Put("/:id", RequirePermission("leads", "update"), leadHandler.Update)
	leads.Delete("/:id", RequirePermission("leads", "delete"), leadHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", RequirePermission("customers", "read"), customerHandler.List)
	customers.Get("/:id", RequirePermission("customers", "read"), customerHandler.GetByID)
	customers.Post("/", RequirePermission("customers", "create"), customerHandler.Create)
	customers.Put("/:id", RequirePermission("customers", "update"), customerHandler.Update)
	customers.Delete("/:id", RequirePermission("customers", "delete"), customerHandler.Delete)

	// Carriers
	carriers := protected.Group("/carriers")
	carrierHandler := NewCarrierHandler(deps.CarrierUC)
	carriers.Get("/", RequirePermission("carriers", "read"), carrierHandler.List)
	carriers.Get("/:id", RequirePermission("carriers", "read"), carrierHandler.GetByID)
	carriers.Post("/", RequirePermission("carriers", "create"), carrierHandler.Create)
	carriers.Put("/:id", RequirePermission("carriers", "update"), carrierHandler.Update)
	carriers.Delete("/:id", RequirePermission("carriers", "delete"), carrierHandler.Delete)

	// Quotes
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.DocumentUC)
	quotes.Get("/", RequirePermission("quotes", "read"), quoteHandler.List)
	quotes.Get("/:id", RequirePermission("quotes", "read"), quoteHandler.GetByID)
	quotes.Post("/", RequirePermission("quotes", "create"), quoteHandler.Create)
	quotes.Put("/:id", RequirePermission("quotes", "update"), quoteHandler.Update)
	quotes.Delete("/:id", RequirePermission("quotes", "delete"), quoteHandler.Delete)
	quotes.Post("/:id/accept", RequirePermission("quotes", "update"), quoteHandler.Accept)
	quotes.Get("/:id/pdf", RequirePermission("pdf", "generate"), quoteHandler.PDF)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", RequirePermission("orders", "read"), orderHandler.List)
	orders.Get("/:id", RequirePermission("orders", "read"), orderHandler.GetByID)
	orders.Post("/", RequirePermission("orders", "create"), orderHandler.Create)
	orders.Put("/:id", RequirePermission("orders", "update"), orderHandler.Update)
	orders.Delete("/:id", RequirePermission("orders", "delete"), orderHandler.Delete)

	// Dispatches
	dispatches := protected.Group("/dispatches")
	dispatchHandler := NewDispatchHandler(deps.DispatchUC, deps.DocumentUC)
	dispatches.Get("/", RequirePermission("dispatches", "read"), dispatchHandler.List)
	dispatches.Get("/:id", RequirePermission("dispatches", "read"), dispatchHandler.GetByID)
	dispatches.Post("/", RequirePermission("dispatches", "create"), dispatchHandler.Create)
	dispatches.Put("/:id", RequirePermission("dispatches", "update"), dispatchHandler.Update)
	dispatches.Delete("/:id", RequirePermission("dispatches", "delete"), dispatchHandler.Delete)
	dispatches.Get("/:id/rate-confirmation", RequirePermission("pdf", "generate"), dispatchHandler.RateConfirmation)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Get("/", RequirePermission("invoices", "read"), invoiceHandler.List)
	invoices.Get("/:id", RequirePermission("invoices", "read"), invoiceHandler.GetByID)
	invoices.Post("/", RequirePermission("invoices", "create"), invoiceHandler.Create)
	invoices.Put("/:id", RequirePermission("invoices", "update"), invoiceHandler.Update)
	invoices.Delete("/:id", RequirePermission("invoices", "delete"), invoiceHandler.Delete)
	invoices.Get("/:id/pdf", RequirePermission("pdf", "generate"), invoiceHandler.PDF)

	// Follow-ups. "/urgent" antes de "/:id" para que no lo capture el wildcard.
	followUps := protected.Group("/followups")
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followUps.Get("/urgent", RequirePermission("followups", "read"), followUpHandler.Urgent)
	followUps.Get("/", RequirePermission("followups", "read"), followUpHandler.List)
	followUps.Get("/:id", RequirePermission("followups", "read"), followUpHandler.GetByID)
	followUps.Post("/", RequirePermission("followups", "create"), followUpHandler.Create)
	followUps.Put("/:id", RequirePermission("followups", "update"), followUpHandler.Update)
	followUps.Post("/:id/complete", RequirePermission("followups", "update"), followUpHandler.Complete)
	followUps.Delete("/:id", RequirePermission("followups", "delete"), followUpHandler.Delete)
}
