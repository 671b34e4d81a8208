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

// FollowUpUseCase casos de uso para tareas de seguimiento.
type FollowUpUseCase struct {
	repo repository.FollowUpRepository
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(repo repository.FollowUpRepository) *FollowUpUseCase {
	return &FollowUpUseCase{repo: repo}
}

// Create crea una tarea pendiente. Prioridad por defecto: "medium";
// tipo por defecto: "other".
func (uc *FollowUpUseCase) Create(in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.FollowUpPriorityMedium
	}
	taskType := in.Type
	if taskType == "" {
		taskType = entity.FollowUpTypeOther
	}
	now := time.Now()
	followUp := &entity.FollowUp{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        taskType,
		LeadID:      in.LeadID,
		CustomerID:  in.CustomerID,
		CarrierID:   in.CarrierID,
		OrderID:     in.OrderID,
		DueDate:     in.DueDate,
		Priority:    priority,
		AssignedTo:  in.AssignedTo,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(followUp); err != nil {
		return nil, err
	}
	return toFollowUpResponse(followUp, now), nil
}

// GetByID obtiene una tarea por ID.
func (uc *FollowUpUseCase) GetByID(id string) (*dto.FollowUpResponse, error) {
	followUp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, nil
	}
	return toFollowUpResponse(followUp, time.Now()), nil
}

// Update actualiza una tarea. Completar es de un solo sentido: enviar
// completed=false sobre una tarea ya completada es un conflicto.
func (uc *FollowUpUseCase) Update(id string, in dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
	followUp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, nil
	}
	now := time.Now()
	if in.Completed != nil {
		switch {
		case *in.Completed && !followUp.Completed:
			followUp.Completed = true
			done := now
			followUp.CompletedAt = &done
		case !*in.Completed && followUp.Completed:
			return nil, domain.ErrConflict
		}
	}
	if in.Title != nil {
		followUp.Title = *in.Title
	}
	if in.Description != nil {
		followUp.Description = in.Description
	}
	if in.Type != nil {
		followUp.Type = *in.Type
	}
	if in.DueDate != nil {
		followUp.DueDate = *in.DueDate
	}
	if in.Priority != nil {
		followUp.Priority = *in.Priority
	}
	if in.AssignedTo != nil {
		followUp.AssignedTo = in.AssignedTo
	}
	if in.Notes != nil {
		followUp.Notes = in.Notes
	}
	followUp.UpdatedAt = now
	if err := uc.repo.Update(followUp); err != nil {
		return nil, err
	}
	return toFollowUpResponse(followUp, now), nil
}

// Complete marca una tarea como completada y fija CompletedAt. Completar
// una tarea ya completada es idempotente: no cambia CompletedAt.
func (uc *FollowUpUseCase) Complete(id string) (*dto.FollowUpResponse, error) {
	followUp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, nil
	}
	now := time.Now()
	if !followUp.Completed {
		followUp.Completed = true
		done := now
		followUp.CompletedAt = &done
		followUp.UpdatedAt = now
		if err := uc.repo.Update(followUp); err != nil {
			return nil, err
		}
	}
	return toFollowUpResponse(followUp, now), nil
}

// List lista tareas con paginación.
func (uc *FollowUpUseCase) List(limit, offset int) (*dto.FollowUpListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFollowUpResponse(f, now))
	}
	return &dto.FollowUpListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListUrgent devuelve las tareas abiertas de prioridad urgente o alta,
// ordenadas por fecha límite ascendente.
func (uc *FollowUpUseCase) ListUrgent(limit int) ([]dto.FollowUpResponse, error) {
	open, err := uc.repo.ListOpen()
	if err != nil {
		return nil, err
	}
	tasks := make([]entity.FollowUp, 0, len(open))
	for _, f := range open {
		tasks = append(tasks, *f)
	}
	urgent := lifecycle.FilterUrgent(tasks, limit)
	now := time.Now()
	items := make([]dto.FollowUpResponse, 0, len(urgent))
	for i := range urgent {
		items = append(items, *toFollowUpResponse(&urgent[i], now))
	}
	return items, nil
}

// Delete elimina una tarea por ID.
func (uc *FollowUpUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFollowUpResponse(f *entity.FollowUp, now time.Time) *dto.FollowUpResponse {
	if f == nil {
		return nil
	}
	return &dto.FollowUpResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Type:        f.Type,
		LeadID:      f.LeadID,
		CustomerID:  f.CustomerID,
		CarrierID:   f.CarrierID,
		OrderID:     f.OrderID,
		DueDate:     f.DueDate,
		Completed:   f.Completed,
		CompletedAt: f.CompletedAt,
		Priority:    f.Priority,
		AssignedTo:  f.AssignedTo,
		Notes:       f.Notes,
		Overdue:     lifecycle.FollowUpOverdue(*f, now),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
