package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"securitybot/pkg/logger"
	"securitybot/storage"
)

func TestDatasetSizes(t *testing.T) {
	s := New(nil, logger.NewNop())
	if n := len(s.Service().GetAll()); n != 5 {
		t.Errorf("services = %d, want 5", n)
	}
	if n := len(s.Request().GetAll()); n != 3 {
		t.Errorf("requests = %d, want 3", n)
	}
	if n := len(s.Payment().GetAll()); n != 3 {
		t.Errorf("payments = %d, want 3", n)
	}
	if n := len(s.Incident().GetAll()); n != 3 {
		t.Errorf("incidents = %d, want 3", n)
	}
	if n := len(s.Vehicle().GetAll()); n != 4 {
		t.Errorf("vehicles = %d, want 4", n)
	}
}

func TestLookupsByID(t *testing.T) {
	s := New(nil, logger.NewNop())

	svc, err := s.Service().GetByID("3")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if svc.Name != "Vigilancia Domiciliaria" {
		t.Fatalf("service 3 = %q", svc.Name)
	}
	if _, err := s.Service().GetByID("99"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p, err := s.Payment().GetByID("1")
	if err != nil {
		t.Fatalf("payment GetByID: %v", err)
	}
	if p.Receipt == nil || *p.Receipt != "COMP-2024-001" {
		t.Fatalf("payment 1 receipt = %v", p.Receipt)
	}
	if _, err := s.Payment().GetByID("99"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.User().GetByEmail("SEBASTIAN@example.com"); err != nil {
		t.Fatalf("GetByEmail should be case-insensitive: %v", err)
	}
	if _, err := s.User().GetByEmail("nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncidentsByUserSkipsAnonymous(t *testing.T) {
	s := New(nil, logger.NewNop())
	got := s.Incident().GetByUser("1")
	ids := make([]string, 0, len(got))
	for _, i := range got {
		ids = append(ids, i.ID)
	}
	if diff := cmp.Diff([]string{"1", "3"}, ids); diff != "" {
		t.Fatalf("incident ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsAreCopies(t *testing.T) {
	s := New(nil, logger.NewNop())

	all := s.Service().GetAll()
	all[0].Benefits[0] = "changed"
	*all[0].Price = 1

	again, _ := s.Service().GetByID(all[0].ID)
	if again.Benefits[0] == "changed" || *again.Price == 1 {
		t.Fatal("mutating a returned service changed the dataset")
	}

	v, _ := s.Vehicle().GetByPlate("ABCD12")
	v.History[0].Event = "changed"
	v2, _ := s.Vehicle().GetByPlate("ABCD12")
	if v2.History[0].Event == "changed" {
		t.Fatal("mutating a returned vehicle changed the dataset")
	}
}

func TestVehicleFirstMatchWins(t *testing.T) {
	list := cloneAll(vehicles, cloneVehicle)
	dup := cloneVehicle(list[0])
	dup.Make = "Duplicate"
	list = append(list, dup)

	r := newVehicleRepo(list)
	v, err := r.GetByPlate(list[0].Plate)
	if err != nil {
		t.Fatalf("GetByPlate: %v", err)
	}
	if v.Make == "Duplicate" {
		t.Fatal("expected the first vehicle with the plate")
	}
}

func TestKV(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	if _, ok, err := kv.Get(ctx, 1, storage.KeyAuthToken); ok || err != nil {
		t.Fatalf("empty Get = ok:%v err:%v", ok, err)
	}
	if err := kv.Set(ctx, 1, storage.KeyAuthToken, "marker"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := kv.Get(ctx, 1, storage.KeyAuthToken); !ok || v != "marker" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if _, ok, _ := kv.Get(ctx, 2, storage.KeyAuthToken); ok {
		t.Fatal("keys must be scoped per device")
	}
	if err := kv.Delete(ctx, 1, storage.KeyAuthToken); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, 1, storage.KeyAuthToken); ok {
		t.Fatal("value survived Delete")
	}

	_ = kv.Set(ctx, 3, storage.KeyHasSeenOnboarding, "true")
	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, 3, storage.KeyHasSeenOnboarding); ok {
		t.Fatal("value survived Clear")
	}
}

func TestKVHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewKV().Set(ctx, 1, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
