package verification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type VerificationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, verification *domain.Verification) (*domain.Verification, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Verification, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Verification, error)
	GetByUpdateID(ctx context.Context, tx *gorm.DB, updateID int) ([]*domain.Verification, error)
	// Confirm flips the pending row for the (update, technician) pair to
	// confirmed and stamps confirmedAt. The returned flag is false when no
	// pending row matched, so a repeat confirm can never move an existing
	// timestamp.
	Confirm(ctx context.Context, tx *gorm.DB, updateID, technicianID int, confirmedAt string) (bool, error)
	CountPendingByUpdateID(ctx context.Context, tx *gorm.DB, updateID int) (int64, error)
}

type verificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVerificationRepo(db *gorm.DB, baseLog *logger.Logger) VerificationRepo {
	repoLog := baseLog.With("repo", "VerificationRepo")
	return &verificationRepo{db: db, log: repoLog}
}

func (vr *verificationRepo) Create(ctx context.Context, tx *gorm.DB, verification *domain.Verification) (*domain.Verification, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if err := transaction.WithContext(ctx).Create(verification).Error; err != nil {
		return nil, err
	}
	return verification, nil
}

func (vr *verificationRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Verification, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*domain.Verification
	if err := transaction.WithContext(ctx).
		Preload("Technician").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *verificationRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Verification, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result domain.Verification
	if err := transaction.WithContext(ctx).
		Preload("Technician").
		First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (vr *verificationRepo) GetByUpdateID(ctx context.Context, tx *gorm.DB, updateID int) ([]*domain.Verification, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*domain.Verification
	if err := transaction.WithContext(ctx).
		Where("update_id = ?", updateID).
		Preload("Technician").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *verificationRepo) Confirm(ctx context.Context, tx *gorm.DB, updateID, technicianID int, confirmedAt string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	res := transaction.WithContext(ctx).
		Model(&domain.Verification{}).
		Where("update_id = ? AND technician_id = ? AND confirmed = ?", updateID, technicianID, domain.VerificationPending).
		Updates(map[string]interface{}{
			"confirmed":    domain.VerificationConfirmed,
			"confirmed_at": confirmedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (vr *verificationRepo) CountPendingByUpdateID(ctx context.Context, tx *gorm.DB, updateID int) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Verification{}).
		Where("update_id = ? AND confirmed = ?", updateID, domain.VerificationPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
