package repos

import (
	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/data/repos/device"
	"github.com/cesarforall/TechManager/internal/data/repos/knowledge"
	"github.com/cesarforall/TechManager/internal/data/repos/technician"
	"github.com/cesarforall/TechManager/internal/data/repos/update"
	"github.com/cesarforall/TechManager/internal/data/repos/verification"
	"github.com/cesarforall/TechManager/internal/platform/logger"
)

type DeviceRepo = device.DeviceRepo
type TechnicianRepo = technician.TechnicianRepo
type KnowledgeRepo = knowledge.KnowledgeRepo
type UpdateRepo = update.UpdateRepo
type VerificationRepo = verification.VerificationRepo

func NewDeviceRepo(db *gorm.DB, baseLog *logger.Logger) DeviceRepo {
	return device.NewDeviceRepo(db, baseLog)
}

func NewTechnicianRepo(db *gorm.DB, baseLog *logger.Logger) TechnicianRepo {
	return technician.NewTechnicianRepo(db, baseLog)
}

func NewKnowledgeRepo(db *gorm.DB, baseLog *logger.Logger) KnowledgeRepo {
	return knowledge.NewKnowledgeRepo(db, baseLog)
}

func NewUpdateRepo(db *gorm.DB, baseLog *logger.Logger) UpdateRepo {
	return update.NewUpdateRepo(db, baseLog)
}

func NewVerificationRepo(db *gorm.DB, baseLog *logger.Logger) VerificationRepo {
	return verification.NewVerificationRepo(db, baseLog)
}
