// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import "github.com/KirkDiggler/rpg-toolkit/core"

// Ownership is the {Owner, Source} pair used for stack gating and
// attribution. Owner is typically the entity that caused
// the effect (a caster); Source is the specific originating mechanic (a
// spell, an item). Either may be nil if the host has no notion of it.
type Ownership struct {
	Owner  core.Entity
	Source core.Entity
}

// sameOwner compares two Ownerships by Owner identity only, per the
// ownership gate in the stacking protocol.
func (o Ownership) sameOwner(other Ownership) bool {
	if o.Owner == nil || other.Owner == nil {
		return o.Owner == other.Owner
	}
	return o.Owner.GetID() == other.Owner.GetID() && o.Owner.GetType() == other.Owner.GetType()
}

// SameOwner reports whether o and other share the same Owner entity.
func (o Ownership) SameOwner(other Ownership) bool { return o.sameOwner(other) }

// CueSource returns the entity cue dispatch should report as Params.Source:
// the specific originating Source if one is set, else the Owner.
func (o Ownership) CueSource() core.Entity {
	if o.Source != nil {
		return o.Source
	}
	return o.Owner
}

// RuntimeEffect wraps an immutable EffectData with the per-cast knobs that
// vary per application: level, ownership, and caller-supplied magnitudes.
// It is cheaply clonable configuration-plus-knobs, not
// uniquely owned by anything — many ActiveEffects may share a RuntimeEffect
// value (e.g. one cast applied to several targets).
type RuntimeEffect struct {
	data             *EffectData
	level            int32
	ownership        Ownership
	callerMagnitudes map[string]float32

	nextSubID    int
	levelChanged map[int]func(newLevel int32)
}

// NewRuntimeEffect constructs a RuntimeEffect at the given level and
// ownership.
func NewRuntimeEffect(data *EffectData, level int32, ownership Ownership) *RuntimeEffect {
	return &RuntimeEffect{
		data:             data,
		level:            level,
		ownership:        ownership,
		callerMagnitudes: make(map[string]float32),
	}
}

// Data returns the underlying immutable configuration.
func (r *RuntimeEffect) Data() *EffectData { return r.data }

// Level returns the current evaluated level.
func (r *RuntimeEffect) Level() int32 { return r.level }

// Ownership returns the {Owner, Source} pair.
func (r *RuntimeEffect) Ownership() Ownership { return r.ownership }

// SetLevel sets the level, firing LevelChanged if it actually changed.
func (r *RuntimeEffect) SetLevel(level int32) {
	if level == r.level {
		return
	}
	r.level = level
	for _, h := range r.levelChanged {
		h(level)
	}
}

// LevelUp increments the level by one.
func (r *RuntimeEffect) LevelUp() {
	r.SetLevel(r.level + 1)
}

// SetSetByCallerMagnitude records a caller-supplied magnitude under tag,
// consumed by SetByCaller magnitude specs.
func (r *RuntimeEffect) SetSetByCallerMagnitude(tag string, value float32) {
	r.callerMagnitudes[tag] = value
}

// CallerMagnitudes returns the live caller-magnitude map for evaluation.
func (r *RuntimeEffect) CallerMagnitudes() map[string]float32 { return r.callerMagnitudes }

// OnLevelChanged subscribes handler to LevelChanged events, returning an
// unsubscribe function. A non-snapshot-level ActiveEffect subscribes here
// on Apply and unsubscribes on final Unapply.
func (r *RuntimeEffect) OnLevelChanged(handler func(newLevel int32)) (unsubscribe func()) {
	if r.levelChanged == nil {
		r.levelChanged = make(map[int]func(newLevel int32))
	}
	id := r.nextSubID
	r.nextSubID++
	r.levelChanged[id] = handler
	return func() { delete(r.levelChanged, id) }
}

// Clone returns a RuntimeEffect sharing the same EffectData and ownership
// but with its own level and caller-magnitude map, for applying the same
// cast configuration to a different target at a possibly different level.
func (r *RuntimeEffect) Clone(level int32) *RuntimeEffect {
	clone := NewRuntimeEffect(r.data, level, r.ownership)
	for k, v := range r.callerMagnitudes {
		clone.callerMagnitudes[k] = v
	}
	return clone
}
