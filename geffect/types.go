// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package geffect defines the immutable effect configuration (EffectData)
// and its per-application runtime wrapper (RuntimeEffect). Construction
// validates every cross-field invariant up front so configuration errors
// surface immediately, not mid-game.
package geffect

import "github.com/gamesmiths-guild/forge/magnitude"

// DurationType selects how long an ActiveEffect persists once applied.
type DurationType int

const (
	// Instant effects mutate target attributes once and are never tracked
	// as an ActiveEffect.
	Instant DurationType = iota
	// Infinite effects persist until explicitly removed.
	Infinite
	// HasDuration effects persist for an evaluated duration, then expire.
	HasDuration
)

// Duration describes an effect's lifetime. Duration is nil unless
// Type == HasDuration.
type Duration struct {
	Type     DurationType
	Duration *magnitude.ScalableFloat
}

// Operation selects how a Modifier's evaluated magnitude is applied to its
// target attribute channel.
type Operation int

const (
	FlatBonus Operation = iota
	PercentBonus
	Override
)

// InhibitionRemovedPolicy controls how a periodic effect's tick
// accumulation resumes once inhibition clears.
type InhibitionRemovedPolicy int

const (
	NeverReset InhibitionRemovedPolicy = iota
	ResetPeriod
	ExecuteAndResetPeriod
)

// PeriodicData configures an effect's repeating tick.
type PeriodicData struct {
	Period                  magnitude.ScalableFloat
	ExecuteOnApplication    bool
	InhibitionRemovedPolicy InhibitionRemovedPolicy
}

// StackPolicy decides whether stacks aggregate per source or per target.
type StackPolicy int

const (
	AggregateBySource StackPolicy = iota
	AggregateByTarget
)

// StackLevelPolicy decides whether effects of differing level can share a
// stack.
type StackLevelPolicy int

const (
	AggregateLevels StackLevelPolicy = iota
	SegregateLevels
)

// MagnitudePolicy decides whether a stack's modifiers sum with stackCount.
type MagnitudePolicy int

const (
	DontStack MagnitudePolicy = iota
	Sum
)

// OverflowPolicy decides what happens when a stacking application would
// exceed StackLimit.
type OverflowPolicy int

const (
	AllowApplication OverflowPolicy = iota
	DenyApplication
)

// ExpirationPolicy decides how a stacked HasDuration effect expires.
type ExpirationPolicy int

const (
	ClearEntireStack ExpirationPolicy = iota
	RemoveSingleStackAndRefreshDuration
)

// OwnerDenialPolicy decides whether a differing owner blocks a stack
// merge. OwnerDenialUnspecified is the zero value so that validation can
// tell "never configured" apart from an explicit AlwaysAllow choice when
// StackPolicy == AggregateByTarget requires one to be picked.
type OwnerDenialPolicy int

const (
	OwnerDenialUnspecified OwnerDenialPolicy = iota
	OwnerAlwaysAllow
	OwnerDenyIfDifferent
)

// OwnerOverridePolicy decides whether a differing owner takes ownership of
// the stack.
type OwnerOverridePolicy int

const (
	OwnerNoOverride OwnerOverridePolicy = iota
	OwnerOverride
)

// StackCountPolicy decides whether an override resets or preserves the
// current stack count. Shared by both the owner- and level-override
// conditional fields.
type StackCountPolicy int

const (
	PreserveStacks StackCountPolicy = iota
	ResetStacks
)

// LevelComparison is a bitflag set describing a level relationship.
type LevelComparison int

const (
	LevelEqual  LevelComparison = 1 << iota
	LevelHigher
	LevelLower
)

// Has reports whether rel is included in the flag set.
func (f LevelComparison) Has(rel LevelComparison) bool { return f&rel != 0 }

// ApplicationRefreshPolicy decides whether a successful stack application
// refreshes remainingDuration.
type ApplicationRefreshPolicy int

const (
	NoRefreshOnApplication ApplicationRefreshPolicy = iota
	RefreshOnSuccessfulApplication
)

// ApplicationResetPeriodPolicy decides whether a successful stack
// application resets the periodic clock.
type ApplicationResetPeriodPolicy int

const (
	NoResetOnApplication ApplicationResetPeriodPolicy = iota
	ResetOnSuccessfulApplication
)

// StackingData configures the multi-axis stacking protocol. The conditional fields are only consulted when their governing
// policy requires them; validation in NewEffectData enforces that they are
// set consistently.
type StackingData struct {
	StackLimit   magnitude.ScalableInt
	InitialStack magnitude.ScalableInt

	StackPolicy      StackPolicy
	StackLevelPolicy StackLevelPolicy
	MagnitudePolicy  MagnitudePolicy
	OverflowPolicy   OverflowPolicy
	ExpirationPolicy ExpirationPolicy

	// Conditional on StackPolicy == AggregateByTarget.
	OwnerDenialPolicy             OwnerDenialPolicy
	OwnerOverridePolicy           OwnerOverridePolicy
	OwnerOverrideStackCountPolicy StackCountPolicy

	// Conditional on StackLevelPolicy == AggregateLevels.
	LevelDenialPolicy             LevelComparison
	LevelOverridePolicy           LevelComparison
	LevelOverrideStackCountPolicy StackCountPolicy

	ApplicationRefreshPolicy       ApplicationRefreshPolicy
	ApplicationResetPeriodPolicy   ApplicationResetPeriodPolicy
	ExecuteOnSuccessfulApplication bool
}
