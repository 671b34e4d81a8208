package usecase

import (
	"fmt"

	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// DocumentUseCase arma los documentos PDF: carga las entidades relacionadas
// y delega el render en el DocumentGenerator.
type DocumentUseCase struct {
	quoteRepo    repository.QuoteRepository
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	dispatchRepo repository.DispatchRepository
	carrierRepo  repository.CarrierRepository
	gen          DocumentGenerator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	quoteRepo repository.QuoteRepository,
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	dispatchRepo repository.DispatchRepository,
	carrierRepo repository.CarrierRepository,
	gen DocumentGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		quoteRepo:    quoteRepo,
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		dispatchRepo: dispatchRepo,
		carrierRepo:  carrierRepo,
		gen:          gen,
	}
}

// QuotePDF genera el PDF de una cotización. El destinatario sale del Lead o
// del Customer ligado; si no hay ninguno, el documento va sin datos de
// contacto.
func (uc *DocumentUseCase) QuotePDF(id string) ([]byte, string, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}

	var recipient DocumentRecipient
	switch {
	case quote.LeadID != nil:
		lead, err := uc.leadRepo.GetByID(*quote.LeadID)
		if err != nil {
			return nil, "", err
		}
		if lead != nil {
			recipient = DocumentRecipient{
				CompanyName:   lead.CompanyName,
				ContactPerson: lead.ContactPerson,
				Email:         lead.Email,
				Phone:         lead.Phone,
			}
		}
	case quote.CustomerID != nil:
		customer, err := uc.customerRepo.GetByID(*quote.CustomerID)
		if err != nil {
			return nil, "", err
		}
		if customer != nil {
			recipient = DocumentRecipient{
				CompanyName:   customer.CompanyName,
				ContactPerson: customer.ContactPerson,
				Email:         customer.Email,
				Phone:         customer.Phone,
			}
		}
	}

	data, err := uc.gen.GenerateQuotePDF(quote, recipient)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("quote-%s.pdf", quote.QuoteNumber), nil
}

// InvoicePDF genera el PDF de una factura con su orden y cliente asociados.
func (uc *DocumentUseCase) InvoicePDF(id string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}

	var order *entity.Order
	if invoice.OrderID != nil {
		if order, err = uc.orderRepo.GetByID(*invoice.OrderID); err != nil {
			return nil, "", err
		}
	}
	var customer *entity.Customer
	if invoice.CustomerID != nil {
		if customer, err = uc.customerRepo.GetByID(*invoice.CustomerID); err != nil {
			return nil, "", err
		}
	}

	data, err := uc.gen.GenerateInvoicePDF(invoice, order, customer)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber), nil
}

// RateConfirmationPDF genera la confirmación de tarifa de un despacho.
// Marca RateConfirmationSent la primera vez que se genera.
func (uc *DocumentUseCase) RateConfirmationPDF(id string) ([]byte, string, error) {
	dispatch, err := uc.dispatchRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if dispatch == nil {
		return nil, "", domain.ErrNotFound
	}

	order, err := uc.orderRepo.GetByID(dispatch.OrderID)
	if err != nil {
		return nil, "", err
	}
	var carrier *entity.Carrier
	if dispatch.CarrierID != nil {
		if carrier, err = uc.carrierRepo.GetByID(*dispatch.CarrierID); err != nil {
			return nil, "", err
		}
	}

	data, err := uc.gen.GenerateRateConfirmationPDF(dispatch, order, carrier)
	if err != nil {
		return nil, "", err
	}

	if !dispatch.RateConfirmationSent {
		dispatch.RateConfirmationSent = true
		if err := uc.dispatchRepo.Update(dispatch); err != nil {
			return nil, "", err
		}
	}
	return data, fmt.Sprintf("rate-confirmation-%s.pdf", dispatch.ID), nil
}
