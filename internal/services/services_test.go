package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/data/repos/testutil"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
)

type testEnv struct {
	db  *gorm.DB
	bus *events.Bus

	devices       DeviceService
	technicians   TechnicianService
	knowledge     KnowledgeService
	updates       UpdateService
	verifications VerificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.DB(t)
	log := testutil.Logger(t)
	bus := events.NewBus(log)

	deviceRepo := repos.NewDeviceRepo(db, log)
	technicianRepo := repos.NewTechnicianRepo(db, log)
	knowledgeRepo := repos.NewKnowledgeRepo(db, log)
	updateRepo := repos.NewUpdateRepo(db, log)
	verificationRepo := repos.NewVerificationRepo(db, log)

	deviceService := NewDeviceService(log, deviceRepo, bus)

	return &testEnv{
		db:            db,
		bus:           bus,
		devices:       deviceService,
		technicians:   NewTechnicianService(log, technicianRepo),
		knowledge:     NewKnowledgeService(log, knowledgeRepo, deviceRepo, technicianRepo),
		updates:       NewUpdateService(log, updateRepo, deviceService, bus),
		verifications: NewVerificationService(log, verificationRepo, updateRepo, knowledgeRepo, bus),
	}
}

func wantKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	got, ok := apperr.KindOf(err)
	if !ok {
		t.Fatalf("expected %v error, got untyped: %v", kind, err)
	}
	if got != kind {
		t.Fatalf("expected %v error, got %v: %v", kind, got, err)
	}
}
