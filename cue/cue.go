// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cue implements the presentation-hook pipeline the effects engine
// dispatches into: a Tag-to-handler fan-out and the per-dispatch magnitude
// parameters each dispatch carries. Cue side effects themselves
// (visual/audio) are out of scope; this package only carries the signal.
package cue

import "github.com/KirkDiggler/rpg-toolkit/core"

// MagnitudeType selects which derived quantity a CueData reports as its
// magnitude.
type MagnitudeType int

const (
	EffectLevel MagnitudeType = iota
	StackCount
	AttributeValueChange
	AttributeBaseValue
	AttributeCurrentValue
	AttributeModifier
	AttributeOverflow
	AttributeValidModifier
	AttributeMin
	AttributeMax
	AttributeMagnitudeEvaluatedUpToChannel
)

// RequiresAttribute reports whether this magnitude type needs an
// AttributeKey to be meaningful (an attribute-keyed cue magnitude without
// an attribute is a configuration error).
func (t MagnitudeType) RequiresAttribute() bool {
	switch t {
	case AttributeValueChange, AttributeBaseValue, AttributeCurrentValue, AttributeModifier,
		AttributeOverflow, AttributeValidModifier, AttributeMin, AttributeMax,
		AttributeMagnitudeEvaluatedUpToChannel:
		return true
	default:
		return false
	}
}

// CueData configures a single named cue: which tag identifies it to
// CueManager, how its magnitude is derived, and (for attribute-keyed
// magnitude types) which attribute to read.
type CueData struct {
	Tag           string
	MagnitudeType MagnitudeType
	AttributeKey  string // required iff MagnitudeType.RequiresAttribute()
	FinalChannel  int    // only used by AttributeMagnitudeEvaluatedUpToChannel
	Min, Max      float32
	Custom        map[string]any
}

// Params is the payload delivered to a cue Handler on dispatch.
type Params struct {
	Magnitude   int32
	Normalized  float32
	Source      core.Entity
	Custom      map[string]any
	// Interrupted is only meaningful for the Remove lifecycle.
	Interrupted bool
}

// Normalized computes clamp((magnitude-min)/(max-min), 0, 1), returning 1
// when the range collapses to (near) nothing.
func Normalized(magnitude, min, max float32) float32 {
	if max-min <= 0.01 {
		return 1
	}
	n := (magnitude - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Lifecycle identifies which of the four dispatch points a cue fired from.
type Lifecycle int

const (
	Execute Lifecycle = iota
	Apply
	Update
	Remove
)

// Handler receives a dispatched cue.
type Handler func(lifecycle Lifecycle, target core.Entity, params Params)

// Manager maps tags to the handlers subscribed to them and fans a dispatch
// out to all of them.
type Manager struct {
	nextID int
	byTag  map[string]map[int]Handler
}

// NewManager constructs an empty cue manager.
func NewManager() *Manager {
	return &Manager{byTag: make(map[string]map[int]Handler)}
}

// Subscribe registers handler for tag, returning an unsubscribe function.
func (m *Manager) Subscribe(tag string, handler Handler) (unsubscribe func()) {
	if m.byTag[tag] == nil {
		m.byTag[tag] = make(map[int]Handler)
	}
	id := m.nextID
	m.nextID++
	m.byTag[tag][id] = handler

	return func() {
		delete(m.byTag[tag], id)
	}
}

// Dispatch fans a cue event out to every handler subscribed to tag.
func (m *Manager) Dispatch(tag string, lifecycle Lifecycle, target core.Entity, params Params) {
	for _, h := range m.byTag[tag] {
		h(lifecycle, target, params)
	}
}
