// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import "github.com/gamesmiths-guild/forge/active"

// Handle is the caller-facing token Apply returns for a tracked effect.
// It is a thin wrapper over the ActiveEffect package manager
// keeps privately, exposing only the query/inhibition-control surface a
// host needs — a host never gets direct access to the ActiveEffect itself.
type Handle struct {
	ae *active.ActiveEffect
}

// Valid reports whether this handle still refers to a live, non-removed
// effect. A Handle returned for a stack merge remains Valid for as long as
// the peer it merged into does.
func (h *Handle) Valid() bool {
	return h != nil && h.ae != nil && !h.ae.Removed()
}

// SetInhibit sets the effect's inhibited state directly.
func (h *Handle) SetInhibit(v bool) {
	if h.Valid() {
		h.ae.SetInhibited(v)
	}
}

// IsInhibited reports whether the effect's modifiers are currently
// detached due to inhibition.
func (h *Handle) IsInhibited() bool {
	return h.Valid() && h.ae.IsInhibited()
}

// RemainingDuration returns the time left before a HasDuration effect
// expires.
func (h *Handle) RemainingDuration() float32 {
	if !h.Valid() {
		return 0
	}
	return h.ae.RemainingDuration()
}

// NextPeriodicTick returns the running threshold until the next periodic
// execution.
func (h *Handle) NextPeriodicTick() float32 {
	if !h.Valid() {
		return 0
	}
	return h.ae.NextPeriodicTick()
}

// ExecutionCount returns how many times this effect's modifiers have
// executed.
func (h *Handle) ExecutionCount() int32 {
	if !h.Valid() {
		return 0
	}
	return h.ae.ExecutionCount()
}

// StackCount returns the current stack count.
func (h *Handle) StackCount() int32 {
	if !h.Valid() {
		return 0
	}
	return h.ae.StackCount()
}
