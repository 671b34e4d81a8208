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

// LeadUseCase casos de uso CRUD para leads.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create crea un lead en estado "new".
func (uc *LeadUseCase) Create(in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.CompanyName == "" || in.ContactPerson == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:               uuid.New().String(),
		CompanyName:      in.CompanyName,
		ContactPerson:    in.ContactPerson,
		Email:            in.Email,
		Phone:            in.Phone,
		OriginCity:       in.OriginCity,
		OriginState:      in.OriginState,
		DestinationCity:  in.DestinationCity,
		DestinationState: in.DestinationState,
		PickupDate:       in.PickupDate,
		EquipmentType:    in.EquipmentType,
		Commodity:        in.Commodity,
		Weight:           in.Weight,
		Notes:            in.Notes,
		Status:           entity.LeadStatusNew,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetByID obtiene un lead por ID.
func (uc *LeadUseCase) GetByID(id string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	return toLeadResponse(lead), nil
}

// Update actualiza un lead. Un cambio de estado se normaliza ("won" →
// "converted") y se valida contra el embudo antes de persistir.
func (uc *LeadUseCase) Update(id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if in.Status != nil {
		next := lifecycle.NormalizeStatus(lifecycle.KindLead, *in.Status)
		if err := lifecycle.ValidateTransition(lifecycle.KindLead, lead.Status, next); err != nil {
			return nil, err
		}
		lead.Status = next
	}
	if in.CompanyName != nil {
		lead.CompanyName = *in.CompanyName
	}
	if in.ContactPerson != nil {
		lead.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.OriginCity != nil {
		lead.OriginCity = in.OriginCity
	}
	if in.OriginState != nil {
		lead.OriginState = in.OriginState
	}
	if in.DestinationCity != nil {
		lead.DestinationCity = in.DestinationCity
	}
	if in.DestinationState != nil {
		lead.DestinationState = in.DestinationState
	}
	if in.PickupDate != nil {
		lead.PickupDate = in.PickupDate
	}
	if in.EquipmentType != nil {
		lead.EquipmentType = in.EquipmentType
	}
	if in.Commodity != nil {
		lead.Commodity = in.Commodity
	}
	if in.Weight != nil {
		lead.Weight = in.Weight
	}
	if in.Notes != nil {
		lead.Notes = in.Notes
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// List lista leads con paginación.
func (uc *LeadUseCase) List(limit, offset int) (*dto.LeadListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un lead por ID.
func (uc *LeadUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:               l.ID,
		CompanyName:      l.CompanyName,
		ContactPerson:    l.ContactPerson,
		Email:            l.Email,
		Phone:            l.Phone,
		OriginCity:       l.OriginCity,
		OriginState:      l.OriginState,
		DestinationCity:  l.DestinationCity,
		DestinationState: l.DestinationState,
		PickupDate:       l.PickupDate,
		EquipmentType:    l.EquipmentType,
		Commodity:        l.Commodity,
		Weight:           l.Weight,
		Notes:            l.Notes,
		Status:           l.Status,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
