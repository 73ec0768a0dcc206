package knowledge

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type KnowledgeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, knowledge *domain.Knowledge) (*domain.Knowledge, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Knowledge, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Knowledge, error)
	GetByTechnicianID(ctx context.Context, tx *gorm.DB, technicianID int) ([]*domain.Knowledge, error)
	GetByDeviceID(ctx context.Context, tx *gorm.DB, deviceID int) ([]*domain.Knowledge, error)
}

type knowledgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKnowledgeRepo(db *gorm.DB, baseLog *logger.Logger) KnowledgeRepo {
	repoLog := baseLog.With("repo", "KnowledgeRepo")
	return &knowledgeRepo{db: db, log: repoLog}
}

func (kr *knowledgeRepo) Create(ctx context.Context, tx *gorm.DB, knowledge *domain.Knowledge) (*domain.Knowledge, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	if err := transaction.WithContext(ctx).Create(knowledge).Error; err != nil {
		return nil, err
	}
	return knowledge, nil
}

func (kr *knowledgeRepo) Delete(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	res := transaction.WithContext(ctx).Delete(&domain.Knowledge{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (kr *knowledgeRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Knowledge, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	var results []*domain.Knowledge
	if err := transaction.WithContext(ctx).
		Preload("Technician").
		Preload("Device").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (kr *knowledgeRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*domain.Knowledge, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	var result domain.Knowledge
	if err := transaction.WithContext(ctx).
		Preload("Technician").
		Preload("Device").
		First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (kr *knowledgeRepo) GetByTechnicianID(ctx context.Context, tx *gorm.DB, technicianID int) ([]*domain.Knowledge, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	var results []*domain.Knowledge
	if err := transaction.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Preload("Device").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (kr *knowledgeRepo) GetByDeviceID(ctx context.Context, tx *gorm.DB, deviceID int) ([]*domain.Knowledge, error) {
	transaction := tx
	if transaction == nil {
		transaction = kr.db
	}

	var results []*domain.Knowledge
	if err := transaction.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Preload("Technician").
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
