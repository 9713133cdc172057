package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/wanderer/internal/core"
)

// HoldTracker turns terminal key presses into held movement keys.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until window has passed since its last press.
type HoldTracker struct {
	window time.Duration
	until  map[core.MoveSet]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[core.MoveSet]time.Time),
	}
}

// Press records a press of a movement action. Non-movement actions are
// ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	k := core.MoveKeyFor(a)
	if k == 0 {
		return
	}
	h.until[k] = now.Add(h.window)
}

// Held returns the keys still held at now and forgets expired ones.
func (h *HoldTracker) Held(now time.Time) core.MoveSet {
	var held core.MoveSet
	for k, until := range h.until {
		if now.Before(until) {
			held = held.With(k)
		} else {
			delete(h.until, k)
		}
	}
	return held
}

// Release drops every held key.
func (h *HoldTracker) Release() {
	clear(h.until)
}

// LookSmoother spreads each look key press over several ticks. A press
// contributes one unit in total; damping sets how slowly it is paid out.
type LookSmoother struct {
	damping    float64
	yaw, pitch float64
}

// NewLookSmoother creates a smoother. damping must be in [0, 1).
func NewLookSmoother(damping float64) *LookSmoother {
	return &LookSmoother{damping: damping}
}

// Push adds a look impulse.
func (l *LookSmoother) Push(yaw, pitch float64) {
	l.yaw += yaw
	l.pitch += pitch
}

// PushAction adds the impulse for a look action.
func (l *LookSmoother) PushAction(a core.Action) {
	switch a {
	case core.ActionLookLeft:
		l.Push(-1, 0)
	case core.ActionLookRight:
		l.Push(1, 0)
	case core.ActionLookUp:
		l.Push(0, -1)
	case core.ActionLookDown:
		l.Push(0, 1)
	}
}

// Step returns this tick's share of the pending look and keeps the rest.
func (l *LookSmoother) Step() (yaw, pitch float64) {
	share := 1 - l.damping
	yaw, pitch = l.yaw*share, l.pitch*share
	l.yaw -= yaw
	l.pitch -= pitch
	if math.Abs(l.yaw) < 1e-3 {
		yaw += l.yaw
		l.yaw = 0
	}
	if math.Abs(l.pitch) < 1e-3 {
		pitch += l.pitch
		l.pitch = 0
	}
	return yaw, pitch
}

// Reset drops pending look movement.
func (l *LookSmoother) Reset() {
	l.yaw, l.pitch = 0, 0
}
