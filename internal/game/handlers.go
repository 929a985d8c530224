package game

import (
	"github.com/sreejithr/openage/internal/engine/input"
)

// InputFunc processes the frame's input events. Returning false
// requests loop shutdown.
type InputFunc func(events []input.Event) bool

// TickFunc advances simulation state by dt seconds. Returning false
// requests loop shutdown.
type TickFunc func(dt float64) bool

// DrawFunc renders one layer of the frame.
type DrawFunc func() error

// Handlers holds the engine callback lists. Each frame runs the four
// phases in fixed order: input, tick, draw game, draw HUD. Within a
// phase, handlers run in registration order.
type Handlers struct {
	onInput    []InputFunc
	onTick     []TickFunc
	onDrawGame []DrawFunc
	onDrawHUD  []DrawFunc
}

func (h *Handlers) RegisterInput(fn InputFunc) {
	h.onInput = append(h.onInput, fn)
}

func (h *Handlers) RegisterTick(fn TickFunc) {
	h.onTick = append(h.onTick, fn)
}

func (h *Handlers) RegisterDrawGame(fn DrawFunc) {
	h.onDrawGame = append(h.onDrawGame, fn)
}

func (h *Handlers) RegisterDrawHUD(fn DrawFunc) {
	h.onDrawHUD = append(h.onDrawHUD, fn)
}

// runInput invokes all input handlers. All handlers see the events
// even when an earlier one requests shutdown.
func (h *Handlers) runInput(events []input.Event) bool {
	cont := true
	for _, fn := range h.onInput {
		if !fn(events) {
			cont = false
		}
	}
	return cont
}

func (h *Handlers) runTick(dt float64) bool {
	cont := true
	for _, fn := range h.onTick {
		if !fn(dt) {
			cont = false
		}
	}
	return cont
}

func (h *Handlers) runDrawGame() error {
	for _, fn := range h.onDrawGame {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handlers) runDrawHUD() error {
	for _, fn := range h.onDrawHUD {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
