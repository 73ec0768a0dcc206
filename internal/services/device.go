package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type DeviceService interface {
	Create(ctx context.Context, device *domain.Device) (*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]*domain.Device, error)
	GetByID(ctx context.Context, id int) (*domain.Device, error)
}

type deviceService struct {
	log        *logger.Logger
	deviceRepo repos.DeviceRepo
	bus        *events.Bus
}

func NewDeviceService(log *logger.Logger, deviceRepo repos.DeviceRepo, bus *events.Bus) DeviceService {
	serviceLog := log.With("service", "DeviceService")
	return &deviceService{
		log:        serviceLog,
		deviceRepo: deviceRepo,
		bus:        bus,
	}
}

func (ds *deviceService) Create(ctx context.Context, device *domain.Device) (*domain.Device, error) {
	if device == nil {
		return nil, apperr.Validation("device data is required")
	}
	if strings.TrimSpace(device.Manufacturer) == "" {
		return nil, apperr.Validation("the manufacturer field is required")
	}
	if strings.TrimSpace(device.Model) == "" {
		return nil, apperr.Validation("the model field is required")
	}

	existing, err := ds.deviceRepo.GetByManufacturerModel(ctx, nil, device.Manufacturer, device.Model)
	if err != nil {
		ds.log.Error("Failed to check device by manufacturer and model", "error", err)
		return nil, apperr.Storage("could not create the device", err)
	}
	if existing != nil {
		return nil, apperr.Validation("the device is already registered")
	}

	created, err := ds.deviceRepo.Create(ctx, nil, device)
	if err != nil {
		ds.log.Error("Failed to create device", "error", err)
		return nil, apperr.Storage("could not create the device", err)
	}

	ds.bus.Publish(events.EventDeviceCreated, created.ID)
	return created, nil
}

func (ds *deviceService) Update(ctx context.Context, device *domain.Device) error {
	if device == nil {
		return apperr.Validation("device data is required")
	}
	if device.ID <= 0 {
		return apperr.Validation("invalid device id")
	}
	if strings.TrimSpace(device.Manufacturer) == "" {
		return apperr.Validation("the manufacturer field is required")
	}
	if strings.TrimSpace(device.Model) == "" {
		return apperr.Validation("the model field is required")
	}

	existing, err := ds.deviceRepo.GetByManufacturerModel(ctx, nil, device.Manufacturer, device.Model)
	if err != nil {
		ds.log.Error("Failed to check device by manufacturer and model", "error", err)
		return apperr.Storage("could not update the device", err)
	}
	// A self-match is the unchanged pair; only a different owner blocks.
	if existing != nil && existing.ID != device.ID {
		return apperr.Validation("another device already uses this manufacturer and model")
	}

	updated, err := ds.deviceRepo.Update(ctx, nil, device)
	if err != nil {
		ds.log.Error("Failed to update device", "error", err)
		return apperr.Storage("could not update the device", err)
	}
	if !updated {
		return apperr.NotFound(fmt.Sprintf("no device found with id %d", device.ID))
	}

	ds.bus.Publish(events.EventDeviceUpdated, device.ID)
	return nil
}

func (ds *deviceService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return apperr.Validation("invalid device id")
	}

	deleted, err := ds.deviceRepo.Delete(ctx, nil, id)
	if err != nil {
		ds.log.Error("Failed to delete device", "error", err)
		return apperr.Storage("could not delete the device", err)
	}
	if !deleted {
		return apperr.NotFound(fmt.Sprintf("no device found with id %d", id))
	}
	return nil
}

func (ds *deviceService) GetAll(ctx context.Context) ([]*domain.Device, error) {
	devices, err := ds.deviceRepo.GetAll(ctx, nil)
	if err != nil {
		ds.log.Error("Failed to fetch devices", "error", err)
		return nil, apperr.Storage("could not fetch the devices", err)
	}
	return devices, nil
}

func (ds *deviceService) GetByID(ctx context.Context, id int) (*domain.Device, error) {
	if id <= 0 {
		return nil, apperr.Validation("invalid device id")
	}

	device, err := ds.deviceRepo.GetByID(ctx, nil, id)
	if err != nil {
		ds.log.Error("Failed to fetch device", "error", err, "id", id)
		return nil, apperr.Storage("could not fetch the device", err)
	}
	if device == nil {
		return nil, apperr.NotFound(fmt.Sprintf("no device found with id %d", id))
	}
	return device, nil
}
