package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulateCompletes(t *testing.T) {
	if err := Simulate(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if err := Simulate(context.Background(), 0); err != nil {
		t.Fatalf("Simulate(0): %v", err)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Simulate(ctx, time.Hour) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Simulate did not return after cancel")
	}
}
