package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/cesarforall/TechManager/internal/domain"
)

func SeedTechnician(tb testing.TB, ctx context.Context, tx *gorm.DB, name, surname string) *domain.Technician {
	tb.Helper()
	t := &domain.Technician{
		Name:    name,
		Surname: surname,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed technician: %v", err)
	}
	return t
}

func SeedDevice(tb testing.TB, ctx context.Context, tx *gorm.DB, manufacturer, model string) *domain.Device {
	tb.Helper()
	d := &domain.Device{
		Manufacturer: manufacturer,
		Model:        model,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed device: %v", err)
	}
	return d
}

func SeedKnowledge(tb testing.TB, ctx context.Context, tx *gorm.DB, technicianID, deviceID int) *domain.Knowledge {
	tb.Helper()
	k := &domain.Knowledge{
		TechnicianID: technicianID,
		DeviceID:     deviceID,
	}
	if err := tx.WithContext(ctx).Create(k).Error; err != nil {
		tb.Fatalf("seed knowledge: %v", err)
	}
	return k
}

func SeedUpdate(tb testing.TB, ctx context.Context, tx *gorm.DB, deviceID int, version string) *domain.Update {
	tb.Helper()
	u := &domain.Update{
		DeviceID:    deviceID,
		Version:     version,
		Description: "seeded update",
		Date:        "2025-01-15 00:00:00",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed update: %v", err)
	}
	return u
}

func SeedVerification(tb testing.TB, ctx context.Context, tx *gorm.DB, updateID, technicianID int) *domain.Verification {
	tb.Helper()
	v := &domain.Verification{
		UpdateID:     updateID,
		TechnicianID: technicianID,
		Confirmed:    domain.VerificationPending,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed verification: %v", err)
	}
	return v
}

func PtrInt(v int) *int { return &v }

func PtrString(v string) *string { return &v }
