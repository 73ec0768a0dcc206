package update

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

// pendingSelect exposes the derived pending-confirmation count on every
// read, so callers never see an Update without its aggregate state.
const pendingSelect = "updates.*, " +
	"(SELECT COUNT(*) FROM verifications v WHERE v.update_id = updates.id AND v.confirmed = 0) AS pending"

type UpdateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, update *domain.Update) (*domain.Update, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Update, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Update, error)
	GetByDeviceID(ctx context.Context, tx *gorm.DB, deviceID int) ([]*domain.Update, error)
}

type updateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUpdateRepo(db *gorm.DB, baseLog *logger.Logger) UpdateRepo {
	repoLog := baseLog.With("repo", "UpdateRepo")
	return &updateRepo{db: db, log: repoLog}
}

func (ur *updateRepo) Create(ctx context.Context, tx *gorm.DB, update *domain.Update) (*domain.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	if err := transaction.WithContext(ctx).Create(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

func (ur *updateRepo) Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	res := transaction.WithContext(ctx).Delete(&domain.Update{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (ur *updateRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*domain.Update
	if err := transaction.WithContext(ctx).
		Model(&domain.Update{}).
		Select(pendingSelect).
		Preload("Device").
		Order("updates.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *updateRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var result domain.Update
	if err := transaction.WithContext(ctx).
		Model(&domain.Update{}).
		Select(pendingSelect).
		Preload("Device").
		Where("updates.id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ur *updateRepo) GetByDeviceID(ctx context.Context, tx *gorm.DB, deviceID int) ([]*domain.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	var results []*domain.Update
	if err := transaction.WithContext(ctx).
		Model(&domain.Update{}).
		Select(pendingSelect).
		Where("updates.device_id = ?", deviceID).
		Order("updates.id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
