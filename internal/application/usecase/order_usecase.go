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

// OrderUseCase casos de uso CRUD para órdenes.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden directa en estado "needs_truck".
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.OriginAddress == "" || in.DestinationAddress == "" || in.EquipmentType == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:                  uuid.New().String(),
		OrderNumber:         fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerID:          in.CustomerID,
		LeadID:              in.LeadID,
		OriginCompany:       in.OriginCompany,
		OriginAddress:       in.OriginAddress,
		OriginCity:          in.OriginCity,
		OriginState:         in.OriginState,
		OriginZipCode:       in.OriginZipCode,
		DestinationCompany:  in.DestinationCompany,
		DestinationAddress:  in.DestinationAddress,
		DestinationCity:     in.DestinationCity,
		DestinationState:    in.DestinationState,
		DestinationZipCode:  in.DestinationZipCode,
		PickupDate:          in.PickupDate,
		DeliveryDate:        in.DeliveryDate,
		EquipmentType:       in.EquipmentType,
		Weight:              in.Weight,
		Commodity:           in.Commodity,
		CustomerRate:        in.CustomerRate,
		Status:              entity.OrderStatusNeedsTruck,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Update actualiza una orden. La progresión de estado es estrictamente hacia
// adelante; saltos y retrocesos se rechazan.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Status != nil {
		if err := lifecycle.ValidateTransition(lifecycle.KindOrder, order.Status, *in.Status); err != nil {
			return nil, err
		}
		order.Status = *in.Status
	}
	if in.OriginCompany != nil {
		order.OriginCompany = in.OriginCompany
	}
	if in.OriginAddress != nil {
		order.OriginAddress = *in.OriginAddress
	}
	if in.DestinationCompany != nil {
		order.DestinationCompany = in.DestinationCompany
	}
	if in.DestinationAddress != nil {
		order.DestinationAddress = *in.DestinationAddress
	}
	if in.PickupDate != nil {
		order.PickupDate = *in.PickupDate
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = in.DeliveryDate
	}
	if in.EquipmentType != nil {
		order.EquipmentType = *in.EquipmentType
	}
	if in.Weight != nil {
		order.Weight = in.Weight
	}
	if in.Commodity != nil {
		order.Commodity = in.Commodity
	}
	if in.CustomerRate != nil {
		order.CustomerRate = *in.CustomerRate
	}
	if in.SpecialInstructions != nil {
		order.SpecialInstructions = in.SpecialInstructions
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		CustomerID:          o.CustomerID,
		LeadID:              o.LeadID,
		QuoteID:             o.QuoteID,
		OriginCompany:       o.OriginCompany,
		OriginAddress:       o.OriginAddress,
		OriginCity:          o.OriginCity,
		OriginState:         o.OriginState,
		OriginZipCode:       o.OriginZipCode,
		DestinationCompany:  o.DestinationCompany,
		DestinationAddress:  o.DestinationAddress,
		DestinationCity:     o.DestinationCity,
		DestinationState:    o.DestinationState,
		DestinationZipCode:  o.DestinationZipCode,
		PickupDate:          o.PickupDate,
		DeliveryDate:        o.DeliveryDate,
		EquipmentType:       o.EquipmentType,
		Weight:              o.Weight,
		Commodity:           o.Commodity,
		CustomerRate:        o.CustomerRate,
		Status:              o.Status,
		SpecialInstructions: o.SpecialInstructions,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
