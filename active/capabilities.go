// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package active implements the ActiveEffect state machine: the
// per-application runtime that tracks duration, periodic ticking, stack
// count, inhibition, and snapshot/live magnitude capture for one effect on
// one target.
package active

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/gamesmiths-guild/forge/geffect"
)

// Every effect-component capability is polymorphic over this set, with
// unstated hooks defaulting to no-ops. Components opt in by implementing whichever of
// these interfaces they need, in addition to geffect.Component.

// CanApplyEffectComponent vetoes admission before an ActiveEffect exists.
type CanApplyEffectComponent interface {
	geffect.Component
	CanApplyEffect(target core.Entity, effect *geffect.RuntimeEffect) bool
}

// ActiveEffectAddedComponent is notified when an ActiveEffect is
// registered; returning false requests inhibition at application time.
type ActiveEffectAddedComponent interface {
	geffect.Component
	OnActiveEffectAdded(target core.Entity, evaluated *EvaluatedSnapshot) bool
}

// PostActiveEffectAddedComponent is notified after an ActiveEffect has
// been fully registered (including any inhibition from
// ActiveEffectAddedComponent).
type PostActiveEffectAddedComponent interface {
	geffect.Component
	OnPostActiveEffectAdded(target core.Entity, evaluated *EvaluatedSnapshot)
}

// ActiveEffectUnappliedComponent is notified when one stack (removed=false)
// or the whole ActiveEffect (removed=true) is unapplied.
type ActiveEffectUnappliedComponent interface {
	geffect.Component
	OnActiveEffectUnapplied(target core.Entity, evaluated *EvaluatedSnapshot, removed bool)
}

// ActiveEffectChangedComponent is notified on inhibition flips and
// level/stack changes.
type ActiveEffectChangedComponent interface {
	geffect.Component
	OnActiveEffectChanged(target core.Entity, evaluated *EvaluatedSnapshot)
}

// EffectAppliedComponent is notified once, when an ActiveEffect is first
// applied. A stack merged into an existing ActiveEffect does not notify it.
type EffectAppliedComponent interface {
	geffect.Component
	OnEffectApplied(target core.Entity, evaluated *EvaluatedSnapshot)
}

// EffectExecutedComponent is notified on Instant application and every
// periodic tick.
type EffectExecutedComponent interface {
	geffect.Component
	OnEffectExecuted(target core.Entity, evaluated *EvaluatedSnapshot)
}
