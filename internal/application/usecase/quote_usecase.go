package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones, incluida la aceptación que
// origina una orden.
type QuoteUseCase struct {
	repo     repository.QuoteRepository
	leadRepo repository.LeadRepository
	tx       QuoteAcceptTxRunner
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(repo repository.QuoteRepository, leadRepo repository.LeadRepository, tx QuoteAcceptTxRunner) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, leadRepo: leadRepo, tx: tx}
}

// Create crea una cotización en estado "draft".
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.OriginCity == "" || in.DestinationCity == "" || in.EquipmentType == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:               uuid.New().String(),
		QuoteNumber:      fmt.Sprintf("QT-%d", now.UnixMilli()),
		LeadID:           in.LeadID,
		CustomerID:       in.CustomerID,
		OriginCity:       in.OriginCity,
		OriginState:      in.OriginState,
		DestinationCity:  in.DestinationCity,
		DestinationState: in.DestinationState,
		PickupDate:       in.PickupDate,
		EquipmentType:    in.EquipmentType,
		Weight:           in.Weight,
		Commodity:        in.Commodity,
		QuotedRate:       in.QuotedRate,
		ValidUntil:       in.ValidUntil,
		Notes:            in.Notes,
		Status:           entity.QuoteStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, now), nil
}

// GetByID obtiene una cotización por ID.
func (uc *QuoteUseCase) GetByID(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	return toQuoteResponse(quote, time.Now()), nil
}

// Update actualiza una cotización. Un cambio de estado pasa por la máquina de
// estados; los demás campos se copian si vienen presentes.
func (uc *QuoteUseCase) Update(id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	if in.Status != nil {
		next := lifecycle.NormalizeStatus(lifecycle.KindQuote, *in.Status)
		if err := lifecycle.ValidateTransition(lifecycle.KindQuote, quote.Status, next); err != nil {
			return nil, err
		}
		quote.Status = next
	}
	if in.OriginCity != nil {
		quote.OriginCity = *in.OriginCity
	}
	if in.OriginState != nil {
		quote.OriginState = *in.OriginState
	}
	if in.DestinationCity != nil {
		quote.DestinationCity = *in.DestinationCity
	}
	if in.DestinationState != nil {
		quote.DestinationState = *in.DestinationState
	}
	if in.PickupDate != nil {
		quote.PickupDate = in.PickupDate
	}
	if in.EquipmentType != nil {
		quote.EquipmentType = *in.EquipmentType
	}
	if in.Weight != nil {
		quote.Weight = in.Weight
	}
	if in.Commodity != nil {
		quote.Commodity = in.Commodity
	}
	if in.QuotedRate != nil {
		quote.QuotedRate = *in.QuotedRate
	}
	if in.ValidUntil != nil {
		quote.ValidUntil = *in.ValidUntil
	}
	if in.Notes != nil {
		quote.Notes = in.Notes
	}
	quote.UpdatedAt = time.Now()
	if err := uc.repo.Update(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, quote.UpdatedAt), nil
}

// Accept acepta una cotización "sent" y crea la orden resultante. Ambas
// escrituras van en una sola transacción: si el alta de la orden falla, el
// estado de la cotización se revierte con el rollback.
//
// Una cotización cuya vigencia ya venció no se acepta aunque su estado
// almacenado siga en "sent" (el estado derivado manda).
func (uc *QuoteUseCase) Accept(ctx context.Context, id string, in dto.AcceptQuoteRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	var created *entity.Order

	err := uc.tx.RunQuoteAccept(ctx, func(quoteRepo repository.QuoteRepository, orderRepo repository.OrderRepository) error {
		quote, err := quoteRepo.GetByID(id)
		if err != nil {
			return err
		}
		if quote == nil {
			return domain.ErrNotFound
		}
		if lifecycle.QuoteDisplayStatus(*quote, now) == entity.QuoteStatusExpired {
			return domain.ErrConflict
		}
		if err := lifecycle.ValidateTransition(lifecycle.KindQuote, quote.Status, entity.QuoteStatusAccepted); err != nil {
			return err
		}

		quote.Status = entity.QuoteStatusAccepted
		quote.UpdatedAt = now
		if err := quoteRepo.Update(quote); err != nil {
			return err
		}

		quoteID := quote.ID
		order := &entity.Order{
			ID:                 uuid.New().String(),
			OrderNumber:        fmt.Sprintf("ORD-%d", now.UnixMilli()),
			CustomerID:         quote.CustomerID,
			LeadID:             quote.LeadID,
			QuoteID:            &quoteID,
			OriginAddress:      in.OriginAddress,
			OriginCity:         quote.OriginCity,
			OriginState:        quote.OriginState,
			OriginZipCode:      in.OriginZipCode,
			DestinationAddress: in.DestinationAddress,
			DestinationCity:    quote.DestinationCity,
			DestinationState:   quote.DestinationState,
			DestinationZipCode: in.DestinationZipCode,
			PickupDate:         in.PickupDate,
			EquipmentType:      quote.EquipmentType,
			Weight:             quote.Weight,
			Commodity:          quote.Commodity,
			CustomerRate:       quote.QuotedRate,
			Status:             entity.OrderStatusNeedsTruck,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// La conversión del lead asociado es best-effort fuera de la transacción:
	// si el lead ya está en otro estado, la orden sigue siendo válida.
	if created.LeadID != nil {
		uc.markLeadConverted(*created.LeadID, now)
	}

	return toOrderResponse(created), nil
}

func (uc *QuoteUseCase) markLeadConverted(leadID string, now time.Time) {
	lead, err := uc.leadRepo.GetByID(leadID)
	if err != nil || lead == nil {
		return
	}
	if lifecycle.ValidateTransition(lifecycle.KindLead, lead.Status, entity.LeadStatusConverted) != nil {
		return
	}
	lead.Status = entity.LeadStatusConverted
	lead.UpdatedAt = now
	_ = uc.leadRepo.Update(lead)
}

// List lista cotizaciones con paginación.
func (uc *QuoteUseCase) List(limit, offset int) (*dto.QuoteListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q, now))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una cotización por ID.
func (uc *QuoteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toQuoteResponse(q *entity.Quote, now time.Time) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		LeadID:           q.LeadID,
		CustomerID:       q.CustomerID,
		OriginCity:       q.OriginCity,
		OriginState:      q.OriginState,
		DestinationCity:  q.DestinationCity,
		DestinationState: q.DestinationState,
		PickupDate:       q.PickupDate,
		EquipmentType:    q.EquipmentType,
		Weight:           q.Weight,
		Commodity:        q.Commodity,
		QuotedRate:       q.QuotedRate,
		ValidUntil:       q.ValidUntil,
		Notes:            q.Notes,
		Status:           q.Status,
		DisplayStatus:    lifecycle.QuoteDisplayStatus(*q, now),
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}
