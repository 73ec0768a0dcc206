package device

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type DeviceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, device *domain.Device) (*domain.Device, error)
	Update(ctx context.Context, tx *gorm.DB, device *domain.Device) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Device, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Device, error)
	GetByManufacturerModel(ctx context.Context, tx *gorm.DB, manufacturer, model string) (*domain.Device, error)
}

type deviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDeviceRepo(db *gorm.DB, baseLog *logger.Logger) DeviceRepo {
	repoLog := baseLog.With("repo", "DeviceRepo")
	return &deviceRepo{db: db, log: repoLog}
}

func (dr *deviceRepo) Create(ctx context.Context, tx *gorm.DB, device *domain.Device) (*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).Create(device).Error; err != nil {
		return nil, err
	}
	return device, nil
}

func (dr *deviceRepo) Update(ctx context.Context, tx *gorm.DB, device *domain.Device) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).
		Model(&domain.Device{}).
		Where("id = ?", device.ID).
		Updates(map[string]interface{}{
			"manufacturer": device.Manufacturer,
			"model":        device.Model,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (dr *deviceRepo) Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).Delete(&domain.Device{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (dr *deviceRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*domain.Device
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *deviceRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result domain.Device
	if err := transaction.WithContext(ctx).
		First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (dr *deviceRepo) GetByManufacturerModel(ctx context.Context, tx *gorm.DB, manufacturer, model string) (*domain.Device, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result domain.Device
	if err := transaction.WithContext(ctx).
		Where("manufacturer = ? AND model = ?", manufacturer, model).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
