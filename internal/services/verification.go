package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
	"github.com/cesarforall/TechManager/internal/platform/datefmt"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type VerificationService interface {
	Create(ctx context.Context, verification *domain.Verification) (*domain.Verification, error)
	// Confirm stamps the current time on the pending row for the pair and
	// announces the update id so views can refresh their pending counts.
	Confirm(ctx context.Context, updateID, technicianID int) error
	// FanOutForUpdate creates one pending verification per technician
	// holding knowledge of the update's device. Pairs that already exist
	// are skipped, so a retry after a partial failure only fills the gaps.
	FanOutForUpdate(ctx context.Context, updateID int) (int, error)
	GetAll(ctx context.Context) ([]*domain.Verification, error)
	GetByUpdateID(ctx context.Context, updateID int) ([]*domain.Verification, error)
	PendingCount(ctx context.Context, updateID int) (int64, error)
}

type verificationService struct {
	log              *logger.Logger
	verificationRepo repos.VerificationRepo
	updateRepo       repos.UpdateRepo
	knowledgeRepo    repos.KnowledgeRepo
	bus              *events.Bus
}

func NewVerificationService(log *logger.Logger, verificationRepo repos.VerificationRepo, updateRepo repos.UpdateRepo, knowledgeRepo repos.KnowledgeRepo, bus *events.Bus) VerificationService {
	serviceLog := log.With("service", "VerificationService")
	return &verificationService{
		log:              serviceLog,
		verificationRepo: verificationRepo,
		updateRepo:       updateRepo,
		knowledgeRepo:    knowledgeRepo,
		bus:              bus,
	}
}

func (vs *verificationService) Create(ctx context.Context, verification *domain.Verification) (*domain.Verification, error) {
	if verification == nil {
		return nil, apperr.Validation("verification data is required")
	}
	if verification.UpdateID <= 0 {
		return nil, apperr.Validation("the update id is required")
	}
	if verification.TechnicianID <= 0 {
		return nil, apperr.Validation("the technician id is required")
	}

	created, err := vs.verificationRepo.Create(ctx, nil, verification)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("the technician already has a verification for this update")
		}
		vs.log.Error("Failed to assign verification", "error", err)
		return nil, apperr.Storage("could not assign the verification", err)
	}
	return created, nil
}

func (vs *verificationService) Confirm(ctx context.Context, updateID, technicianID int) error {
	if updateID <= 0 {
		return apperr.Validation("invalid update id")
	}
	if technicianID <= 0 {
		return apperr.Validation("invalid technician id")
	}

	confirmed, err := vs.verificationRepo.Confirm(ctx, nil, updateID, technicianID, datefmt.Now())
	if err != nil {
		vs.log.Error("Failed to confirm verification", "error", err, "updateID", updateID, "technicianID", technicianID)
		return apperr.Storage("could not confirm the verification", err)
	}
	if !confirmed {
		return apperr.NotFound(fmt.Sprintf("no pending verification found for update %d and technician %d", updateID, technicianID))
	}

	vs.bus.Publish(events.EventVerificationConfirmed, updateID)
	return nil
}

func (vs *verificationService) FanOutForUpdate(ctx context.Context, updateID int) (int, error) {
	if updateID <= 0 {
		return 0, apperr.Validation("invalid update id")
	}

	update, err := vs.updateRepo.GetByID(ctx, nil, updateID)
	if err != nil {
		vs.log.Error("Failed to fetch update for fan-out", "error", err, "updateID", updateID)
		return 0, apperr.Storage("could not fan out the verifications", err)
	}
	if update == nil {
		return 0, apperr.NotFound(fmt.Sprintf("no update found with id %d", updateID))
	}

	knowledgeRows, err := vs.knowledgeRepo.GetByDeviceID(ctx, nil, update.DeviceID)
	if err != nil {
		vs.log.Error("Failed to fetch knowledge for fan-out", "error", err, "deviceID", update.DeviceID)
		return 0, apperr.Storage("could not fan out the verifications", err)
	}

	created := 0
	for _, row := range knowledgeRows {
		_, err := vs.verificationRepo.Create(ctx, nil, &domain.Verification{
			UpdateID:     updateID,
			TechnicianID: row.TechnicianID,
			Confirmed:    domain.VerificationPending,
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Already fanned out for this technician; a retry is a no-op.
				continue
			}
			vs.log.Error("Failed to create verification during fan-out", "error", err, "updateID", updateID, "technicianID", row.TechnicianID)
			return created, apperr.Storage("could not fan out the verifications", err)
		}
		created++
	}

	vs.log.Info("Fanned out verifications", "updateID", updateID, "created", created, "qualified", len(knowledgeRows))
	return created, nil
}

func (vs *verificationService) GetAll(ctx context.Context) ([]*domain.Verification, error) {
	rows, err := vs.verificationRepo.GetAll(ctx, nil)
	if err != nil {
		vs.log.Error("Failed to fetch verifications", "error", err)
		return nil, apperr.Storage("could not fetch the verifications", err)
	}
	return rows, nil
}

func (vs *verificationService) GetByUpdateID(ctx context.Context, updateID int) ([]*domain.Verification, error) {
	if updateID <= 0 {
		return nil, apperr.Validation("invalid update id")
	}

	rows, err := vs.verificationRepo.GetByUpdateID(ctx, nil, updateID)
	if err != nil {
		vs.log.Error("Failed to fetch verifications by update", "error", err, "updateID", updateID)
		return nil, apperr.Storage("could not fetch the verifications", err)
	}
	return rows, nil
}

func (vs *verificationService) PendingCount(ctx context.Context, updateID int) (int64, error) {
	if updateID <= 0 {
		return 0, apperr.Validation("invalid update id")
	}

	count, err := vs.verificationRepo.CountPendingByUpdateID(ctx, nil, updateID)
	if err != nil {
		vs.log.Error("Failed to count pending verifications", "error", err, "updateID", updateID)
		return 0, apperr.Storage("could not count the pending verifications", err)
	}
	return count, nil
}
