package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
	"github.com/cesarforall/TechManager/internal/platform/datefmt"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type UpdateService interface {
	Create(ctx context.Context, update *domain.Update) (*domain.Update, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]*domain.Update, error)
	GetByID(ctx context.Context, id int) (*domain.Update, error)
	GetByDeviceID(ctx context.Context, deviceID int) ([]*domain.Update, error)
}

// updateService creates releases but never fans out acknowledgments
// itself: it announces the new id on the bus and the verification
// orchestration reacts to it, keeping the two services decoupled.
type updateService struct {
	log           *logger.Logger
	updateRepo    repos.UpdateRepo
	deviceService DeviceService
	bus           *events.Bus
}

func NewUpdateService(log *logger.Logger, updateRepo repos.UpdateRepo, deviceService DeviceService, bus *events.Bus) UpdateService {
	serviceLog := log.With("service", "UpdateService")
	return &updateService{
		log:           serviceLog,
		updateRepo:    updateRepo,
		deviceService: deviceService,
		bus:           bus,
	}
}

func (us *updateService) Create(ctx context.Context, update *domain.Update) (*domain.Update, error) {
	if update == nil {
		return nil, apperr.Validation("update data is required")
	}
	if update.DeviceID <= 0 {
		return nil, apperr.Validation("the device id is required")
	}
	if strings.TrimSpace(update.Version) == "" {
		return nil, apperr.Validation("the version field is required")
	}
	if strings.TrimSpace(update.Description) == "" {
		return nil, apperr.Validation("the description field is required")
	}
	if strings.TrimSpace(update.Date) == "" {
		return nil, apperr.Validation("the date field is required")
	}
	normalized, err := datefmt.Normalize(update.Date)
	if err != nil {
		return nil, apperr.Validation("invalid date format")
	}
	update.Date = normalized

	if _, err := us.deviceService.GetByID(ctx, update.DeviceID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation(fmt.Sprintf("no device found with id %d", update.DeviceID))
		}
		return nil, err
	}

	existing, err := us.updateRepo.GetByDeviceID(ctx, nil, update.DeviceID)
	if err != nil {
		us.log.Error("Failed to check existing updates", "error", err, "deviceID", update.DeviceID)
		return nil, apperr.Storage("could not create the update", err)
	}
	for _, other := range existing {
		if other.Version == update.Version {
			return nil, apperr.Validation(fmt.Sprintf("an update with version %s already exists for this device", update.Version))
		}
	}

	created, err := us.updateRepo.Create(ctx, nil, update)
	if err != nil {
		us.log.Error("Failed to create update", "error", err)
		return nil, apperr.Storage("could not create the update", err)
	}

	us.bus.Publish(events.EventUpdateCreated, created.ID)
	return created, nil
}

func (us *updateService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Validation("invalid update id")
	}

	deleted, err := us.updateRepo.Delete(ctx, nil, id)
	if err != nil {
		us.log.Error("Failed to delete update", "error", err)
		return apperr.Storage("could not delete the update", err)
	}
	if !deleted {
		return apperr.NotFound(fmt.Sprintf("no update found with id %d", id))
	}
	return nil
}

func (us *updateService) GetAll(ctx context.Context) ([]*domain.Update, error) {
	updates, err := us.updateRepo.GetAll(ctx, nil)
	if err != nil {
		us.log.Error("Failed to fetch updates", "error", err)
		return nil, apperr.Storage("could not fetch the updates", err)
	}
	if len(updates) == 0 {
		return nil, apperr.NotFound("no updates found")
	}
	return updates, nil
}

func (us *updateService) GetByID(ctx context.Context, id int) (*domain.Update, error) {
	if id <= 0 {
		return nil, apperr.Validation("invalid update id")
	}

	update, err := us.updateRepo.GetByID(ctx, nil, id)
	if err != nil {
		us.log.Error("Failed to fetch update", "error", err, "id", id)
		return nil, apperr.Storage("could not fetch the update", err)
	}
	if update == nil {
		return nil, apperr.NotFound(fmt.Sprintf("no update found with id %d", id))
	}
	return update, nil
}

func (us *updateService) GetByDeviceID(ctx context.Context, deviceID int) ([]*domain.Update, error) {
	if deviceID <= 0 {
		return nil, apperr.Validation("invalid device id")
	}

	updates, err := us.updateRepo.GetByDeviceID(ctx, nil, deviceID)
	if err != nil {
		us.log.Error("Failed to fetch updates by device", "error", err, "deviceID", deviceID)
		return nil, apperr.Storage("could not fetch the updates", err)
	}
	if len(updates) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("no updates found for device %d", deviceID))
	}
	return updates, nil
}
