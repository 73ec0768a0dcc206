package services

import (
	"context"
	"testing"

	"github.com/cesarforall/TechManager/internal/domain"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/platform/apperr"
)

func TestDeviceServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var createdEvents []int
	env.bus.Subscribe(events.EventDeviceCreated, func(id int) { createdEvents = append(createdEvents, id) })

	created, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(createdEvents) != 1 || createdEvents[0] != created.ID {
		t.Fatalf("expected DeviceCreated with id %d, got %v", created.ID, createdEvents)
	}

	_, err = env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	wantKind(t, err, apperr.KindValidation)
	if err.Error() != "the device is already registered" {
		t.Fatalf("unexpected duplicate message: %q", err.Error())
	}

	// Same model under a different manufacturer is a different device, and
	// the pair comparison is case-sensitive.
	if _, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "bosch", Model: "GSR 12V"}); err != nil {
		t.Fatalf("Create (case variant): %v", err)
	}

	_, err = env.devices.Create(ctx, &domain.Device{Manufacturer: "", Model: "X"})
	wantKind(t, err, apperr.KindValidation)
	_, err = env.devices.Create(ctx, &domain.Device{Manufacturer: "X", Model: "  "})
	wantKind(t, err, apperr.KindValidation)
	_, err = env.devices.Create(ctx, nil)
	wantKind(t, err, apperr.KindValidation)
}

func TestDeviceServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var updatedEvents []int
	env.bus.Subscribe(events.EventDeviceUpdated, func(id int) { updatedEvents = append(updatedEvents, id) })

	first, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "Makita", Model: "DF333"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Self-match: re-saving the same pair is allowed.
	if err := env.devices.Update(ctx, &domain.Device{ID: first.ID, Manufacturer: "Bosch", Model: "GSR 12V"}); err != nil {
		t.Fatalf("Update (self): %v", err)
	}
	if len(updatedEvents) != 1 || updatedEvents[0] != first.ID {
		t.Fatalf("expected DeviceUpdated with id %d, got %v", first.ID, updatedEvents)
	}

	// Taking another device's pair is rejected.
	err = env.devices.Update(ctx, &domain.Device{ID: second.ID, Manufacturer: "Bosch", Model: "GSR 12V"})
	wantKind(t, err, apperr.KindValidation)

	err = env.devices.Update(ctx, &domain.Device{ID: 0, Manufacturer: "Bosch", Model: "GSR 12V"})
	wantKind(t, err, apperr.KindValidation)

	err = env.devices.Update(ctx, &domain.Device{ID: 9999, Manufacturer: "Hilti", Model: "TE 2"})
	wantKind(t, err, apperr.KindNotFound)
}

func TestDeviceServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.devices.Create(ctx, &domain.Device{Manufacturer: "Bosch", Model: "GSR 12V"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := env.devices.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	wantKind(t, env.devices.Delete(ctx, created.ID), apperr.KindNotFound)
	wantKind(t, env.devices.Delete(ctx, -1), apperr.KindValidation)

	if _, err := env.devices.GetByID(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Fatalf("GetByID after delete: expected not found, got %v", err)
	}
}
