package verification

import (
	"context"
	"testing"

	"github.com/cesarforall/TechManager/internal/data/repos/testutil"
	"github.com/cesarforall/TechManager/internal/domain"
)

func TestVerificationRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewVerificationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	dev := testutil.SeedDevice(t, ctx, db, "Bosch", "GSR 12V")
	upd := testutil.SeedUpdate(t, ctx, db, dev.ID, "1.0.0")
	tech := testutil.SeedTechnician(t, ctx, db, "Ana", "García")

	created, err := repo.Create(ctx, nil, &domain.Verification{
		UpdateID:     upd.ID,
		TechnicianID: tech.ID,
		Confirmed:    domain.VerificationPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("Create: expected assigned id, got %d", created.ID)
	}
	if created.ConfirmedAt != "" {
		t.Fatalf("Create: expected empty confirmation timestamp, got %q", created.ConfirmedAt)
	}

	if _, err := repo.Create(ctx, nil, &domain.Verification{
		UpdateID:     upd.ID,
		TechnicianID: tech.ID,
	}); err == nil {
		t.Fatalf("Create (duplicate pair): expected unique constraint error")
	}

	pending, err := repo.CountPendingByUpdateID(ctx, nil, upd.ID)
	if err != nil {
		t.Fatalf("CountPendingByUpdateID: %v", err)
	}
	if pending != 1 {
		t.Fatalf("expected 1 pending, got %d", pending)
	}

	confirmed, err := repo.Confirm(ctx, nil, upd.ID, tech.ID, "2025-01-16 09:00:00")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !confirmed {
		t.Fatalf("Confirm: expected a row to be affected")
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Confirmed != domain.VerificationConfirmed || got.ConfirmedAt != "2025-01-16 09:00:00" {
		t.Fatalf("GetByID: unexpected state after confirm: %+v", got)
	}

	// A repeat confirm finds no pending row and must not move the stamp.
	confirmed, err = repo.Confirm(ctx, nil, upd.ID, tech.ID, "2025-01-17 10:00:00")
	if err != nil {
		t.Fatalf("Confirm (again): %v", err)
	}
	if confirmed {
		t.Fatalf("Confirm (again): expected no row to be affected")
	}
	got, err = repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID (after repeat confirm): %v", err)
	}
	if got.ConfirmedAt != "2025-01-16 09:00:00" {
		t.Fatalf("repeat confirm moved the timestamp: %+v", got)
	}

	pending, err = repo.CountPendingByUpdateID(ctx, nil, upd.ID)
	if err != nil {
		t.Fatalf("CountPendingByUpdateID (after confirm): %v", err)
	}
	if pending != 0 {
		t.Fatalf("expected 0 pending after confirm, got %d", pending)
	}

	byUpdate, err := repo.GetByUpdateID(ctx, nil, upd.ID)
	if err != nil {
		t.Fatalf("GetByUpdateID: %v", err)
	}
	if len(byUpdate) != 1 || byUpdate[0].Technician == nil || byUpdate[0].Technician.Name != "Ana" {
		t.Fatalf("GetByUpdateID: unexpected result: %+v", byUpdate)
	}
}

func TestVerificationCascade(t *testing.T) {
	db := testutil.DB(t)
	repo := NewVerificationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	dev := testutil.SeedDevice(t, ctx, db, "Bosch", "GSR 12V")
	upd := testutil.SeedUpdate(t, ctx, db, dev.ID, "1.0.0")
	techA := testutil.SeedTechnician(t, ctx, db, "Ana", "García")
	techB := testutil.SeedTechnician(t, ctx, db, "Luis", "Pérez")
	testutil.SeedVerification(t, ctx, db, upd.ID, techA.ID)
	testutil.SeedVerification(t, ctx, db, upd.ID, techB.ID)

	// Deleting a technician removes only their verification rows.
	if err := db.WithContext(ctx).Delete(&domain.Technician{}, techA.ID).Error; err != nil {
		t.Fatalf("delete technician: %v", err)
	}
	all, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].TechnicianID != techB.ID {
		t.Fatalf("expected only the other technician's verification to survive, got %+v", all)
	}

	// Deleting the update's device cascades through the update to the rest.
	if err := db.WithContext(ctx).Delete(&domain.Device{}, dev.ID).Error; err != nil {
		t.Fatalf("delete device: %v", err)
	}
	all, err = repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll (after device delete): %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected cascade to empty verifications, got %+v", all)
	}
}
