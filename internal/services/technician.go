package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type TechnicianService interface {
	Create(ctx context.Context, technician *domain.Technician) (*domain.Technician, error)
	Update(ctx context.Context, technician *domain.Technician) error
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]*domain.Technician, error)
	GetByID(ctx context.Context, id int) (*domain.Technician, error)
	GetByDrawer(ctx context.Context, drawer int) (*domain.Technician, error)
}

type technicianService struct {
	log            *logger.Logger
	technicianRepo repos.TechnicianRepo
}

func NewTechnicianService(log *logger.Logger, technicianRepo repos.TechnicianRepo) TechnicianService {
	serviceLog := log.With("service", "TechnicianService")
	return &technicianService{
		log:            serviceLog,
		technicianRepo: technicianRepo,
	}
}

// checkAssignments runs the two optional-field uniqueness checks in order,
// excluding selfID (0 on create). Either check short-circuits before any
// write is attempted.
func (ts *technicianService) checkAssignments(ctx context.Context, technician *domain.Technician, selfID int) error {
	if technician.Drawer != nil && *technician.Drawer > 0 {
		occupant, err := ts.technicianRepo.GetByDrawer(ctx, nil, *technician.Drawer)
		if err != nil {
			ts.log.Error("Failed to check drawer assignment", "error", err)
			return apperr.Storage("could not check the drawer assignment", err)
		}
		if occupant != nil && occupant.ID != selfID {
			return apperr.Validation("the drawer is already assigned to another technician")
		}
	}
	if technician.Workstation != nil && strings.TrimSpace(*technician.Workstation) != "" {
		owner, err := ts.technicianRepo.GetByWorkstation(ctx, nil, *technician.Workstation)
		if err != nil {
			ts.log.Error("Failed to check workstation assignment", "error", err)
			return apperr.Storage("could not check the workstation assignment", err)
		}
		if owner != nil && owner.ID != selfID {
			return apperr.Validation("the workstation is already assigned to another technician")
		}
	}
	return nil
}

func (ts *technicianService) Create(ctx context.Context, technician *domain.Technician) (*domain.Technician, error) {
	if technician == nil {
		return nil, apperr.Validation("technician data is required")
	}
	if strings.TrimSpace(technician.Name) == "" {
		return nil, apperr.Validation("the technician name is required")
	}
	if strings.TrimSpace(technician.Surname) == "" {
		return nil, apperr.Validation("the technician surname is required")
	}
	if err := ts.checkAssignments(ctx, technician, 0); err != nil {
		return nil, err
	}

	created, err := ts.technicianRepo.Create(ctx, nil, technician)
	if err != nil {
		ts.log.Error("Failed to create technician", "error", err)
		return nil, apperr.Storage("could not create the technician", err)
	}
	return created, nil
}

func (ts *technicianService) Update(ctx context.Context, technician *domain.Technician) error {
	if technician == nil {
		return apperr.Validation("technician data is required")
	}
	if technician.ID <= 0 {
		return apperr.Validation("invalid technician id")
	}
	if strings.TrimSpace(technician.Name) == "" {
		return apperr.Validation("the technician name is required")
	}
	if strings.TrimSpace(technician.Surname) == "" {
		return apperr.Validation("the technician surname is required")
	}
	if err := ts.checkAssignments(ctx, technician, technician.ID); err != nil {
		return err
	}

	updated, err := ts.technicianRepo.Update(ctx, nil, technician)
	if err != nil {
		ts.log.Error("Failed to update technician", "error", err)
		return apperr.Storage("could not update the technician", err)
	}
	if !updated {
		return apperr.NotFound(fmt.Sprintf("no technician found with id %d", technician.ID))
	}
	return nil
}

func (ts *technicianService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Validation("invalid technician id")
	}

	deleted, err := ts.technicianRepo.Delete(ctx, nil, id)
	if err != nil {
		ts.log.Error("Failed to delete technician", "error", err)
		return apperr.Storage("could not delete the technician", err)
	}
	if !deleted {
		return apperr.NotFound(fmt.Sprintf("no technician found with id %d", id))
	}
	return nil
}

func (ts *technicianService) GetAll(ctx context.Context) ([]*domain.Technician, error) {
	technicians, err := ts.technicianRepo.GetAll(ctx, nil)
	if err != nil {
		ts.log.Error("Failed to fetch technicians", "error", err)
		return nil, apperr.Storage("could not fetch the technicians", err)
	}
	return technicians, nil
}

func (ts *technicianService) GetByID(ctx context.Context, id int) (*domain.Technician, error) {
	if id <= 0 {
		return nil, apperr.Validation("invalid technician id")
	}

	technician, err := ts.technicianRepo.GetByID(ctx, nil, id)
	if err != nil {
		ts.log.Error("Failed to fetch technician", "error", err, "id", id)
		return nil, apperr.Storage("could not fetch the technician", err)
	}
	if technician == nil {
		return nil, apperr.NotFound(fmt.Sprintf("no technician found with id %d", id))
	}
	return technician, nil
}

func (ts *technicianService) GetByDrawer(ctx context.Context, drawer int) (*domain.Technician, error) {
	if drawer <= 0 {
		return nil, apperr.Validation("invalid drawer number")
	}

	technician, err := ts.technicianRepo.GetByDrawer(ctx, nil, drawer)
	if err != nil {
		ts.log.Error("Failed to fetch technician by drawer", "error", err, "drawer", drawer)
		return nil, apperr.Storage("could not fetch the technician", err)
	}
	if technician == nil {
		return nil, apperr.NotFound(fmt.Sprintf("no technician found with drawer %d", drawer))
	}
	return technician, nil
}
