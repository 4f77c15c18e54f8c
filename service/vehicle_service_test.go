package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"securitybot/pkg/logger"
	"securitybot/storage/mock"
)

func TestNormalizePlate(t *testing.T) {
	tests := map[string]string{
		"abcd12":      "ABCD12",
		" ABCD12 ":    "ABCD12",
		"ab cd\t12\n": "ABCD12",
		"":            "",
	}
	for in, want := range tests {
		if got := NormalizePlate(in); got != want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindByPlate(t *testing.T) {
	vs := newTestManager(nil).Vehicle()

	a := vs.FindByPlate("abcd12")
	b := vs.FindByPlate(" ABCD12 ")
	c := vs.FindByPlate("ABCD12")
	if a == nil || b == nil || c == nil {
		t.Fatal("expected all three lookups to find ABCD12")
	}
	if a.Plate != "ABCD12" || b.Plate != a.Plate || c.Plate != a.Plate || a.Make != "Toyota" {
		t.Fatalf("lookups disagree: %v %v %v", a.Plate, b.Plate, c.Plate)
	}

	if v := vs.FindByPlate("ZZZZ99"); v != nil {
		t.Fatalf("expected nil, got %+v", v)
	}
	if v := vs.FindByPlate("ABCD1"); v != nil {
		t.Fatal("partial plates must not match")
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	vs := newTestManager(nil).Vehicle()

	if _, err := vs.Verify(ctx, "   "); !errors.Is(err, ErrEmptyPlate) {
		t.Fatalf("expected ErrEmptyPlate, got %v", err)
	}
	v, err := vs.Verify(ctx, "efgh 34")
	if err != nil || v == nil || v.Make != "Honda" {
		t.Fatalf("Verify = %+v, %v", v, err)
	}
	v, err = vs.Verify(ctx, "ZZZZ99")
	if err != nil || v != nil {
		t.Fatalf("not found must be nil without error, got %+v, %v", v, err)
	}
}

func TestVerifyCancelled(t *testing.T) {
	stg := mock.New(nil, logger.NewNop())
	vs := NewVehicleService(stg, logger.NewNop(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := vs.Verify(ctx, "ABCD12"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
