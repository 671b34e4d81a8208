package usecase

import (
	"context"

	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// QuoteAcceptTxRunner ejecuta el cierre de una cotización aceptada: el cambio
// de estado de la Quote y el alta de la Order resultante deben confirmarse en
// una sola transacción. Si el alta de la orden falla, el estado de la
// cotización no debe haber cambiado.
type QuoteAcceptTxRunner interface {
	RunQuoteAccept(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// DocumentGenerator genera los documentos PDF del negocio. El receptor de una
// cotización puede ser un Lead o un Customer; el generador solo necesita sus
// datos de contacto.
type DocumentGenerator interface {
	GenerateQuotePDF(quote *entity.Quote, recipient DocumentRecipient) ([]byte, error)
	GenerateInvoicePDF(invoice *entity.Invoice, order *entity.Order, customer *entity.Customer) ([]byte, error)
	GenerateRateConfirmationPDF(dispatch *entity.Dispatch, order *entity.Order, carrier *entity.Carrier) ([]byte, error)
}

// DocumentRecipient datos de contacto del destinatario de un documento.
type DocumentRecipient struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
}
