package game

import (
	"errors"
	"testing"

	"github.com/sreejithr/openage/internal/engine/input"
)

func TestHandlersRunInOrder(t *testing.T) {
	var h Handlers
	var order []int

	h.RegisterDrawGame(func() error {
		order = append(order, 1)
		return nil
	})
	h.RegisterDrawGame(func() error {
		order = append(order, 2)
		return nil
	})
	h.RegisterDrawGame(func() error {
		order = append(order, 3)
		return nil
	})

	if err := h.runDrawGame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected registration order, got %v", order)
	}
}

func TestHandlersDrawStopsOnError(t *testing.T) {
	var h Handlers
	wantErr := errors.New("draw failed")
	ran := false

	h.RegisterDrawGame(func() error { return wantErr })
	h.RegisterDrawGame(func() error {
		ran = true
		return nil
	})

	if err := h.runDrawGame(); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if ran {
		t.Error("handler after failing one should not run")
	}
}

func TestHandlersInputAllSeeEvents(t *testing.T) {
	var h Handlers
	calls := 0

	h.RegisterInput(func(events []input.Event) bool {
		calls++
		return false // request shutdown
	})
	h.RegisterInput(func(events []input.Event) bool {
		calls++
		return true
	})

	if cont := h.runInput(nil); cont {
		t.Error("expected shutdown request to propagate")
	}
	if calls != 2 {
		t.Errorf("expected both handlers to run, got %d calls", calls)
	}
}

func TestHandlersTickShutdown(t *testing.T) {
	var h Handlers

	h.RegisterTick(func(dt float64) bool { return true })
	if !h.runTick(0.016) {
		t.Error("expected tick to continue")
	}

	h.RegisterTick(func(dt float64) bool { return false })
	if h.runTick(0.016) {
		t.Error("expected tick to request shutdown")
	}
}
