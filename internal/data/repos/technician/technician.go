package technician

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type TechnicianRepo interface {
	Create(ctx context.Context, tx *gorm.DB, technician *domain.Technician) (*domain.Technician, error)
	Update(ctx context.Context, tx *gorm.DB, technician *domain.Technician) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Technician, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Technician, error)
	GetByDrawer(ctx context.Context, tx *gorm.DB, drawer int) (*domain.Technician, error)
	GetByWorkstation(ctx context.Context, tx *gorm.DB, workstation string) (*domain.Technician, error)
}

type technicianRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTechnicianRepo(db *gorm.DB, baseLog *logger.Logger) TechnicianRepo {
	repoLog := baseLog.With("repo", "TechnicianRepo")
	return &technicianRepo{db: db, log: repoLog}
}

func (tr *technicianRepo) Create(ctx context.Context, tx *gorm.DB, technician *domain.Technician) (*domain.Technician, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if err := transaction.WithContext(ctx).Create(technician).Error; err != nil {
		return nil, err
	}
	return technician, nil
}

func (tr *technicianRepo) Update(ctx context.Context, tx *gorm.DB, technician *domain.Technician) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	// Map form so cleared optional fields are written back as NULL.
	res := transaction.WithContext(ctx).
		Model(&domain.Technician{}).
		Where("id = ?", technician.ID).
		Updates(map[string]interface{}{
			"name":             technician.Name,
			"surname":          technician.Surname,
			"drawer":           technician.Drawer,
			"workstation":      technician.Workstation,
			"workstation_user": technician.WorkstationUser,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (tr *technicianRepo) Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	res := transaction.WithContext(ctx).Delete(&domain.Technician{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (tr *technicianRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Technician, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*domain.Technician
	if err := transaction.WithContext(ctx).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *technicianRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Technician, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result domain.Technician
	if err := transaction.WithContext(ctx).
		First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (tr *technicianRepo) GetByDrawer(ctx context.Context, tx *gorm.DB, drawer int) (*domain.Technician, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result domain.Technician
	if err := transaction.WithContext(ctx).
		Where("drawer = ?", drawer).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (tr *technicianRepo) GetByWorkstation(ctx context.Context, tx *gorm.DB, workstation string) (*domain.Technician, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result domain.Technician
	if err := transaction.WithContext(ctx).
		Where("workstation = ?", workstation).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
