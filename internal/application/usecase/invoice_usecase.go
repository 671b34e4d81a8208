package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso CRUD para facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Create crea una factura en borrador. El tipo debe ser "customer" o "carrier".
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Type != entity.InvoiceTypeCustomer && in.Type != entity.InvoiceTypeCarrier {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		Type:          in.Type,
		CustomerID:    in.CustomerID,
		CarrierID:     in.CarrierID,
		OrderID:       in.OrderID,
		DispatchID:    in.DispatchID,
		Amount:        in.Amount,
		Status:        entity.InvoiceStatusDraft,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, now), nil
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice, time.Now()), nil
}

// Update actualiza una factura. "overdue" no es un estado almacenable:
// intentarlo devuelve ErrUnknownState. Al pasar a "paid" se fija la fecha
// de pago si no vino en la petición.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	now := time.Now()
	if in.Status != nil {
		next := lifecycle.NormalizeStatus(lifecycle.KindInvoice, *in.Status)
		if err := lifecycle.ValidateTransition(lifecycle.KindInvoice, invoice.Status, next); err != nil {
			return nil, err
		}
		if next == entity.InvoiceStatusPaid && invoice.Status != entity.InvoiceStatusPaid && in.PaidDate == nil {
			paid := now
			invoice.PaidDate = &paid
		}
		invoice.Status = next
	}
	if in.Amount != nil {
		invoice.Amount = *in.Amount
	}
	if in.DueDate != nil {
		invoice.DueDate = *in.DueDate
	}
	if in.PaidDate != nil {
		invoice.PaidDate = in.PaidDate
	}
	if in.Notes != nil {
		invoice.Notes = in.Notes
	}
	invoice.UpdatedAt = now
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice, now), nil
}

// List lista facturas con paginación.
func (uc *InvoiceUseCase) List(limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, now))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una factura por ID.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice, now time.Time) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Type:          inv.Type,
		CustomerID:    inv.CustomerID,
		CarrierID:     inv.CarrierID,
		OrderID:       inv.OrderID,
		DispatchID:    inv.DispatchID,
		Amount:        inv.Amount,
		Status:        inv.Status,
		DisplayStatus: lifecycle.InvoiceDisplayStatus(*inv, now),
		DueDate:       inv.DueDate,
		PaidDate:      inv.PaidDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
