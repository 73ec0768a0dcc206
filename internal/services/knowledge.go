package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type KnowledgeService interface {
	Create(ctx context.Context, knowledge *domain.Knowledge) (*domain.Knowledge, error)
	// CreateForDevices onboards a technician onto a device set: one
	// knowledge row per device id.
	CreateForDevices(ctx context.Context, technicianID int, deviceIDs []int) ([]*domain.Knowledge, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]*domain.Knowledge, error)
	GetByTechnicianID(ctx context.Context, technicianID int) ([]*domain.Knowledge, error)
	GetByDeviceID(ctx context.Context, deviceID int) ([]*domain.Knowledge, error)
	// AvailableDevices is the set difference between all devices and the
	// devices the technician already holds knowledge of, in device order.
	// An unknown technician yields an empty list, not an error: there are
	// simply no candidates for them.
	AvailableDevices(ctx context.Context, technicianID int) ([]*domain.Device, error)
}

type knowledgeService struct {
	log            *logger.Logger
	knowledgeRepo  repos.KnowledgeRepo
	deviceRepo     repos.DeviceRepo
	technicianRepo repos.TechnicianRepo
}

func NewKnowledgeService(log *logger.Logger, knowledgeRepo repos.KnowledgeRepo, deviceRepo repos.DeviceRepo, technicianRepo repos.TechnicianRepo) KnowledgeService {
	serviceLog := log.With("service", "KnowledgeService")
	return &knowledgeService{
		log:            serviceLog,
		knowledgeRepo:  knowledgeRepo,
		deviceRepo:     deviceRepo,
		technicianRepo: technicianRepo,
	}
}

func (ks *knowledgeService) Create(ctx context.Context, knowledge *domain.Knowledge) (*domain.Knowledge, error) {
	if knowledge == nil {
		return nil, apperr.Validation("knowledge data is required")
	}
	if knowledge.TechnicianID <= 0 {
		return nil, apperr.Validation("invalid technician id")
	}
	if knowledge.DeviceID <= 0 {
		return nil, apperr.Validation("invalid device id")
	}

	created, err := ks.knowledgeRepo.Create(ctx, nil, knowledge)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("the technician already has knowledge of this device")
		}
		ks.log.Error("Failed to assign knowledge", "error", err)
		return nil, apperr.Storage("could not assign the knowledge", err)
	}
	return created, nil
}

func (ks *knowledgeService) CreateForDevices(ctx context.Context, technicianID int, deviceIDs []int) ([]*domain.Knowledge, error) {
	if technicianID <= 0 {
		return nil, apperr.Validation("invalid technician id")
	}
	if len(deviceIDs) == 0 {
		return nil, apperr.Validation("at least one device is required")
	}

	created := make([]*domain.Knowledge, 0, len(deviceIDs))
	for _, deviceID := range deviceIDs {
		row, err := ks.Create(ctx, &domain.Knowledge{TechnicianID: technicianID, DeviceID: deviceID})
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}
	return created, nil
}

func (ks *knowledgeService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Validation("invalid knowledge id")
	}

	deleted, err := ks.knowledgeRepo.Delete(ctx, nil, id)
	if err != nil {
		ks.log.Error("Failed to unassign knowledge", "error", err)
		return apperr.Storage("could not unassign the knowledge", err)
	}
	if !deleted {
		return apperr.NotFound(fmt.Sprintf("no knowledge found with id %d", id))
	}
	return nil
}

func (ks *knowledgeService) GetAll(ctx context.Context) ([]*domain.Knowledge, error) {
	rows, err := ks.knowledgeRepo.GetAll(ctx, nil)
	if err != nil {
		ks.log.Error("Failed to fetch knowledge rows", "error", err)
		return nil, apperr.Storage("could not fetch the knowledge records", err)
	}
	return rows, nil
}

func (ks *knowledgeService) GetByTechnicianID(ctx context.Context, technicianID int) ([]*domain.Knowledge, error) {
	if technicianID <= 0 {
		return nil, apperr.Validation("invalid technician id")
	}

	rows, err := ks.knowledgeRepo.GetByTechnicianID(ctx, nil, technicianID)
	if err != nil {
		ks.log.Error("Failed to fetch knowledge by technician", "error", err, "technicianID", technicianID)
		return nil, apperr.Storage("could not fetch the knowledge records", err)
	}
	return rows, nil
}

func (ks *knowledgeService) GetByDeviceID(ctx context.Context, deviceID int) ([]*domain.Knowledge, error) {
	if deviceID <= 0 {
		return nil, apperr.Validation("invalid device id")
	}

	rows, err := ks.knowledgeRepo.GetByDeviceID(ctx, nil, deviceID)
	if err != nil {
		ks.log.Error("Failed to fetch knowledge by device", "error", err, "deviceID", deviceID)
		return nil, apperr.Storage("could not fetch the knowledge records", err)
	}
	return rows, nil
}

func (ks *knowledgeService) AvailableDevices(ctx context.Context, technicianID int) ([]*domain.Device, error) {
	if technicianID <= 0 {
		return nil, apperr.Validation("invalid technician id")
	}

	technician, err := ks.technicianRepo.GetByID(ctx, nil, technicianID)
	if err != nil {
		ks.log.Error("Failed to fetch technician for matching", "error", err, "technicianID", technicianID)
		return nil, apperr.Storage("could not compute the available devices", err)
	}
	if technician == nil {
		return []*domain.Device{}, nil
	}

	devices, err := ks.deviceRepo.GetAll(ctx, nil)
	if err != nil {
		ks.log.Error("Failed to fetch devices for matching", "error", err)
		return nil, apperr.Storage("could not compute the available devices", err)
	}

	known, err := ks.knowledgeRepo.GetByTechnicianID(ctx, nil, technicianID)
	if err != nil {
		ks.log.Error("Failed to fetch knowledge for matching", "error", err, "technicianID", technicianID)
		return nil, apperr.Storage("could not compute the available devices", err)
	}

	knownDevices := make(map[int]struct{}, len(known))
	for _, row := range known {
		knownDevices[row.DeviceID] = struct{}{}
	}

	available := make([]*domain.Device, 0, len(devices))
	for _, device := range devices {
		if _, ok := knownDevices[device.ID]; ok {
			continue
		}
		available = append(available, device)
	}
	return available, nil
}
