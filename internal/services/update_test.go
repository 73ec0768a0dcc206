package services

import (
	"context"
	"testing"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
)

func TestUpdateServiceCreateValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dev, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	if err != nil {
		t.Fatalf("create device: %v", err)
	}

	cases := []struct {
		name    string
		payload *domain.Update
		message string
	}{
		{"nil payload", nil, "update data is required"},
		{"missing device id", &domain.Update{Version: "1.0", Description: "d", Date: "2025-01-15"}, "the device id is required"},
		{"blank version", &domain.Update{DeviceID: dev.ID, Version: " ", Description: "d", Date: "2025-01-15"}, "the version field is required"},
		{"blank description", &domain.Update{DeviceID: dev.ID, Version: "1.0", Description: "", Date: "2025-01-15"}, "the description field is required"},
		{"blank date", &domain.Update{DeviceID: dev.ID, Version: "1.0", Description: "d", Date: ""}, "the date field is required"},
		{"bad date", &domain.Update{DeviceID: dev.ID, Version: "1.0", Description: "d", Date: "not-a-date"}, "invalid date format"},
	}
	for _, c := range cases {
		_, err := env.updates.Create(ctx, c.payload)
		wantKind(t, err, apperr.KindValidation)
		if err.Error() != c.message {
			t.Fatalf("%s: got message %q, want %q", c.name, err.Error(), c.message)
		}
	}

	// Unknown device fails only after the field checks pass.
	_, err = env.updates.Create(ctx, &domain.Update{DeviceID: 9999, Version: "1.0", Description: "d", Date: "2025-01-15"})
	wantKind(t, err, apperr.KindValidation)
	if err.Error() != "no device found with id 9999" {
		t.Fatalf("unknown device: got message %q", err.Error())
	}
}

func TestUpdateServiceCreateNormalizesDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dev, _ := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})

	created, err := env.updates.Create(ctx, &domain.Update{
		DeviceID:    dev.ID,
		Version:     "1.2.0",
		Description: "battery fix",
		Date:        "2025-01-15",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Date != "2025-01-15 00:00:00" {
		t.Fatalf("expected normalized date, got %q", created.Date)
	}

	got, err := env.updates.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Date != "2025-01-15 00:00:00" {
		t.Fatalf("expected normalized date persisted, got %q", got.Date)
	}
}

func TestUpdateServiceCreateDuplicateVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	dev, _ := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	other, _ := env.devices.Create(ctx, &domain.Device{Manufacturer: "Makita", Model: "DF333"})

	if _, err := env.updates.Create(ctx, &domain.Update{DeviceID: dev.ID, Version: "1.2.0", Description: "d", Date: "2025-01-15"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := env.updates.Create(ctx, &domain.Update{DeviceID: dev.ID, Version: "1.2.0", Description: "again", Date: "2025-02-01"})
	wantKind(t, err, apperr.KindValidation)
	if err.Error() != "an update with version 1.2.0 already exists for this device" {
		t.Fatalf("unexpected duplicate message: %q", err.Error())
	}

	// Case-sensitive comparison: a differently cased version is distinct.
	if _, err := env.updates.Create(ctx, &domain.Update{DeviceID: dev.ID, Version: "1.2.0-RC", Description: "rc", Date: "2025-02-01"}); err != nil {
		t.Fatalf("Create (different version): %v", err)
	}

	// The same version on another device is allowed.
	if _, err := env.updates.Create(ctx, &domain.Update{DeviceID: other.ID, Version: "1.2.0", Description: "d", Date: "2025-01-15"}); err != nil {
		t.Fatalf("Create (other device): %v", err)
	}
}

func TestUpdateServiceCreateEmitsEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var announced []int
	env.bus.Subscribe(events.EventUpdateCreated, func(id int) { announced = append(announced, id) })

	dev, _ := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	created, err := env.updates.Create(ctx, &domain.Update{DeviceID: dev.ID, Version: "1.0", Description: "d", Date: "2025-01-15"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(announced) != 1 || announced[0] != created.ID {
		t.Fatalf("expected UpdateCreated with id %d, got %v", created.ID, announced)
	}
}

func TestUpdateServiceReads(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Empty tables: "nothing found" is reported as not-found, not as a
	// storage fault.
	_, err := env.updates.GetAll(ctx)
	wantKind(t, err, apperr.KindNotFound)

	dev, _ := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	_, err = env.updates.GetByDeviceID(ctx, dev.ID)
	wantKind(t, err, apperr.KindNotFound)

	created, err := env.updates.Create(ctx, &domain.Update{DeviceID: dev.ID, Version: "1.0", Description: "d", Date: "2025-01-15"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := env.updates.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("GetAll: unexpected result %+v", all)
	}

	byDevice, err := env.updates.GetByDeviceID(ctx, dev.ID)
	if err != nil {
		t.Fatalf("GetByDeviceID: %v", err)
	}
	if len(byDevice) != 1 {
		t.Fatalf("GetByDeviceID: unexpected result %+v", byDevice)
	}

	_, err = env.updates.GetByID(ctx, 9999)
	wantKind(t, err, apperr.KindNotFound)
}
