// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import "github.com/gamesmiths-guild/forge/attribute"

// Component is the marker every effect-component capability implements.
// EffectData
// holds components only as this marker; the full capability interfaces
// (ActiveEffectAddedComponent, EffectExecutedComponent, ...) are defined in
// package active, which is the only package that needs to know about
// ActiveEffect/EvaluatedSnapshot types and therefore the only one that can
// define them without a package cycle. Concrete components are free to
// implement any subset of those capability interfaces in addition to
// Component.
type Component interface {
	// ComponentName identifies the component for logging and validation
	// messages; it is not interpreted by the engine.
	ComponentName() string
}

// TagMutatingComponent is implemented by components that add or remove
// tags on a target (e.g. ModifierTagsEffectComponent in package manager).
// Tag-mutating components are forbidden on Instant effects
// since an Instant effect never has a lifetime to hold the tags for.
type TagMutatingComponent interface {
	Component
	MutatesTags() bool
}

// ExecutionContext is the read-only view a CustomExecution gets of the
// moment it runs: Instant application or one periodic tick.
type ExecutionContext struct {
	Level      int32
	StackCount int32
	Source     *attribute.Map
	Target     *attribute.Map
}

// CustomExecution is a calculator-handle-style hook that runs additional
// side effects alongside an effect's modifiers, at every point its
// modifiers would execute.
type CustomExecution interface {
	Execute(ctx ExecutionContext)
}
