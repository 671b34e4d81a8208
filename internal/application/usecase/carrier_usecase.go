package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// CarrierUseCase casos de uso CRUD para transportistas.
type CarrierUseCase struct {
	repo repository.CarrierRepository
}

// NewCarrierUseCase construye el caso de uso.
func NewCarrierUseCase(repo repository.CarrierRepository) *CarrierUseCase {
	return &CarrierUseCase{repo: repo}
}

// Create da de alta un transportista activo.
func (uc *CarrierUseCase) Create(in dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	carrier := &entity.Carrier{
		ID:              uuid.New().String(),
		CompanyName:     in.CompanyName,
		ContactPerson:   in.ContactPerson,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		ZipCode:         in.ZipCode,
		MCNumber:        in.MCNumber,
		DOTNumber:       in.DOTNumber,
		InsuranceExpiry: in.InsuranceExpiry,
		W9OnFile:        in.W9OnFile,
		PreferredLanes:  in.PreferredLanes,
		EquipmentTypes:  in.EquipmentTypes,
		Notes:           in.Notes,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(carrier); err != nil {
		return nil, err
	}
	return toCarrierResponse(carrier), nil
}

// GetByID obtiene un transportista por ID.
func (uc *CarrierUseCase) GetByID(id string) (*dto.CarrierResponse, error) {
	carrier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, nil
	}
	return toCarrierResponse(carrier), nil
}

// Update actualiza un transportista campo a campo.
func (uc *CarrierUseCase) Update(id string, in dto.UpdateCarrierRequest) (*dto.CarrierResponse, error) {
	carrier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		carrier.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		carrier.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		carrier.Email = *in.Email
	}
	if in.Phone != nil {
		carrier.Phone = *in.Phone
	}
	if in.Address != nil {
		carrier.Address = in.Address
	}
	if in.City != nil {
		carrier.City = in.City
	}
	if in.State != nil {
		carrier.State = in.State
	}
	if in.ZipCode != nil {
		carrier.ZipCode = in.ZipCode
	}
	if in.MCNumber != nil {
		carrier.MCNumber = in.MCNumber
	}
	if in.DOTNumber != nil {
		carrier.DOTNumber = in.DOTNumber
	}
	if in.InsuranceExpiry != nil {
		carrier.InsuranceExpiry = in.InsuranceExpiry
	}
	if in.W9OnFile != nil {
		carrier.W9OnFile = *in.W9OnFile
	}
	if in.PerformanceRating != nil {
		carrier.PerformanceRating = *in.PerformanceRating
	}
	if in.PreferredLanes != nil {
		carrier.PreferredLanes = in.PreferredLanes
	}
	if in.EquipmentTypes != nil {
		carrier.EquipmentTypes = in.EquipmentTypes
	}
	if in.Notes != nil {
		carrier.Notes = in.Notes
	}
	if in.IsActive != nil {
		carrier.IsActive = *in.IsActive
	}
	carrier.UpdatedAt = time.Now()
	if err := uc.repo.Update(carrier); err != nil {
		return nil, err
	}
	return toCarrierResponse(carrier), nil
}

// List lista transportistas con paginación.
func (uc *CarrierUseCase) List(limit, offset int) (*dto.CarrierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarrierResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarrierResponse(c))
	}
	return &dto.CarrierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un transportista por ID.
func (uc *CarrierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCarrierResponse(c *entity.Carrier) *dto.CarrierResponse {
	if c == nil {
		return nil
	}
	return &dto.CarrierResponse{
		ID:                c.ID,
		CompanyName:       c.CompanyName,
		ContactPerson:     c.ContactPerson,
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		City:              c.City,
		State:             c.State,
		ZipCode:           c.ZipCode,
		MCNumber:          c.MCNumber,
		DOTNumber:         c.DOTNumber,
		InsuranceExpiry:   c.InsuranceExpiry,
		W9OnFile:          c.W9OnFile,
		PerformanceRating: c.PerformanceRating,
		PreferredLanes:    c.PreferredLanes,
		EquipmentTypes:    c.EquipmentTypes,
		Notes:             c.Notes,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
