package update

import (
	"context"
	"testing"

	"github.com/cesarforall/TechManager/internal/data/repos/testutil"
	"github.com/cesarforall/TechManager/internal/domain"
)

func TestUpdateRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUpdateRepo(db, testutil.Logger(t))
	ctx := context.Background()

	dev := testutil.SeedDevice(t, ctx, db, "Bosch", "GSR 12V")

	created, err := repo.Create(ctx, nil, &domain.Update{
		DeviceID:    dev.ID,
		Version:     "1.2.0",
		Description: "battery fix",
		Date:        "2025-01-15 00:00:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("Create: expected assigned id, got %d", created.ID)
	}

	// Same version on the same device violates the composite unique index.
	if _, err := repo.Create(ctx, nil, &domain.Update{
		DeviceID:    dev.ID,
		Version:     "1.2.0",
		Description: "dup",
		Date:        "2025-01-16 00:00:00",
	}); err == nil {
		t.Fatalf("Create (duplicate version): expected unique constraint error")
	}

	// Same version on another device is fine.
	otherDev := testutil.SeedDevice(t, ctx, db, "Makita", "DF333")
	if _, err := repo.Create(ctx, nil, &domain.Update{
		DeviceID:    otherDev.ID,
		Version:     "1.2.0",
		Description: "same version elsewhere",
		Date:        "2025-01-16 00:00:00",
	}); err != nil {
		t.Fatalf("Create (other device): %v", err)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Version != "1.2.0" || got.Device == nil || got.Device.ID != dev.ID {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}
	if got.Pending != 0 {
		t.Fatalf("GetByID: expected 0 pending without verifications, got %d", got.Pending)
	}

	byDevice, err := repo.GetByDeviceID(ctx, nil, dev.ID)
	if err != nil {
		t.Fatalf("GetByDeviceID: %v", err)
	}
	if len(byDevice) != 1 || byDevice[0].ID != created.ID {
		t.Fatalf("GetByDeviceID: unexpected result: %+v", byDevice)
	}

	all, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAll: expected 2 updates, got %d", len(all))
	}
}

func TestUpdateRepoPendingCount(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUpdateRepo(db, testutil.Logger(t))
	ctx := context.Background()

	dev := testutil.SeedDevice(t, ctx, db, "Bosch", "GSR 12V")
	upd := testutil.SeedUpdate(t, ctx, db, dev.ID, "2.0.0")
	techA := testutil.SeedTechnician(t, ctx, db, "Ana", "García")
	techB := testutil.SeedTechnician(t, ctx, db, "Luis", "Pérez")
	testutil.SeedVerification(t, ctx, db, upd.ID, techA.ID)
	testutil.SeedVerification(t, ctx, db, upd.ID, techB.ID)

	got, err := repo.GetByID(ctx, nil, upd.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Pending != 2 {
		t.Fatalf("expected 2 pending, got %d", got.Pending)
	}

	if err := db.WithContext(ctx).
		Model(&domain.Verification{}).
		Where("update_id = ? AND technician_id = ?", upd.ID, techA.ID).
		Updates(map[string]interface{}{"confirmed": domain.VerificationConfirmed, "confirmed_at": "2025-01-16 09:00:00"}).Error; err != nil {
		t.Fatalf("confirm verification: %v", err)
	}

	got, err = repo.GetByID(ctx, nil, upd.ID)
	if err != nil {
		t.Fatalf("GetByID (after confirm): %v", err)
	}
	if got.Pending != 1 {
		t.Fatalf("expected 1 pending after confirm, got %d", got.Pending)
	}
}

func TestUpdateRepoCascade(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUpdateRepo(db, testutil.Logger(t))
	ctx := context.Background()

	dev := testutil.SeedDevice(t, ctx, db, "Bosch", "GSR 12V")
	testutil.SeedUpdate(t, ctx, db, dev.ID, "2.0.0")

	if err := db.WithContext(ctx).Delete(&domain.Device{}, dev.ID).Error; err != nil {
		t.Fatalf("delete device: %v", err)
	}

	all, err := repo.GetAll(ctx, nil)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected device delete to cascade to updates, got %+v", all)
	}
}
