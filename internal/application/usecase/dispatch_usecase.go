package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/lifecycle"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// DispatchUseCase casos de uso CRUD para despachos.
type DispatchUseCase struct {
	repo      repository.DispatchRepository
	orderRepo repository.OrderRepository
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(repo repository.DispatchRepository, orderRepo repository.OrderRepository) *DispatchUseCase {
	return &DispatchUseCase{repo: repo, orderRepo: orderRepo}
}

// Create asigna un carrier a una orden existente; el despacho nace "assigned".
func (uc *DispatchUseCase) Create(in dto.CreateDispatchRequest) (*dto.DispatchResponse, error) {
	if in.OrderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	dispatch := &entity.Dispatch{
		ID:                    uuid.New().String(),
		OrderID:               in.OrderID,
		CarrierID:             in.CarrierID,
		CarrierRate:           in.CarrierRate,
		DriverName:            in.DriverName,
		DriverPhone:           in.DriverPhone,
		TruckNumber:           in.TruckNumber,
		TrailerNumber:         in.TrailerNumber,
		Status:                entity.DispatchStatusAssigned,
		EstimatedPickupTime:   in.EstimatedPickupTime,
		EstimatedDeliveryTime: in.EstimatedDeliveryTime,
		Notes:                 in.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(dispatch); err != nil {
		return nil, err
	}
	return toDispatchResponse(dispatch), nil
}

// GetByID obtiene un despacho por ID.
func (uc *DispatchUseCase) GetByID(id string) (*dto.DispatchResponse, error) {
	dispatch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dispatch == nil {
		return nil, nil
	}
	return toDispatchResponse(dispatch), nil
}

// Update actualiza un despacho. "picked_up" se normaliza a "in_transit";
// cancelar un despacho entregado se rechaza.
func (uc *DispatchUseCase) Update(id string, in dto.UpdateDispatchRequest) (*dto.DispatchResponse, error) {
	dispatch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dispatch == nil {
		return nil, nil
	}
	if in.Status != nil {
		next := lifecycle.NormalizeStatus(lifecycle.KindDispatch, *in.Status)
		if err := lifecycle.ValidateTransition(lifecycle.KindDispatch, dispatch.Status, next); err != nil {
			return nil, err
		}
		dispatch.Status = next
	}
	if in.CarrierID != nil {
		dispatch.CarrierID = in.CarrierID
	}
	if in.CarrierRate != nil {
		dispatch.CarrierRate = *in.CarrierRate
	}
	if in.DriverName != nil {
		dispatch.DriverName = in.DriverName
	}
	if in.DriverPhone != nil {
		dispatch.DriverPhone = in.DriverPhone
	}
	if in.TruckNumber != nil {
		dispatch.TruckNumber = in.TruckNumber
	}
	if in.TrailerNumber != nil {
		dispatch.TrailerNumber = in.TrailerNumber
	}
	if in.RateConfirmationSent != nil {
		dispatch.RateConfirmationSent = *in.RateConfirmationSent
	}
	if in.EstimatedPickupTime != nil {
		dispatch.EstimatedPickupTime = in.EstimatedPickupTime
	}
	if in.ActualPickupTime != nil {
		dispatch.ActualPickupTime = in.ActualPickupTime
	}
	if in.EstimatedDeliveryTime != nil {
		dispatch.EstimatedDeliveryTime = in.EstimatedDeliveryTime
	}
	if in.ActualDeliveryTime != nil {
		dispatch.ActualDeliveryTime = in.ActualDeliveryTime
	}
	if in.Notes != nil {
		dispatch.Notes = in.Notes
	}
	dispatch.UpdatedAt = time.Now()
	if err := uc.repo.Update(dispatch); err != nil {
		return nil, err
	}
	return toDispatchResponse(dispatch), nil
}

// List lista despachos con paginación.
func (uc *DispatchUseCase) List(limit, offset int) (*dto.DispatchListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DispatchResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDispatchResponse(d))
	}
	return &dto.DispatchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un despacho por ID.
func (uc *DispatchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDispatchResponse(d *entity.Dispatch) *dto.DispatchResponse {
	if d == nil {
		return nil
	}
	return &dto.DispatchResponse{
		ID:                    d.ID,
		OrderID:               d.OrderID,
		CarrierID:             d.CarrierID,
		CarrierRate:           d.CarrierRate,
		DriverName:            d.DriverName,
		DriverPhone:           d.DriverPhone,
		TruckNumber:           d.TruckNumber,
		TrailerNumber:         d.TrailerNumber,
		Status:                d.Status,
		RateConfirmationSent:  d.RateConfirmationSent,
		EstimatedPickupTime:   d.EstimatedPickupTime,
		ActualPickupTime:      d.ActualPickupTime,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		ActualDeliveryTime:    d.ActualDeliveryTime,
		Notes:                 d.Notes,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}
