// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/rpgerr"

	"github.com/gamesmiths-guild/forge/cue"
)

// EffectData is the immutable configuration for an effect.
// Construct it with NewEffectData, which validates every cross-field
// invariant up front — a configuration error is fatal for
// the caller, never a silent admission rejection.
type EffectData struct {
	Name string

	// Ref is an optional interning/identity key a host can assign so
	// configurations loaded from disk (see Load/LoadAll) can be looked up
	// and compared by identity instead of by Equal's structural walk.
	Ref *core.Ref

	Duration Duration

	Modifiers []Modifier

	Stacking *StackingData
	Periodic *PeriodicData

	SnapshotLevel bool

	Components []Component

	RequireModifierSuccessToTriggerCue bool
	SuppressStackingCues               bool

	CustomExecutions []CustomExecution

	Cues []cue.CueData
}

// NewEffectData validates cfg and returns it as an immutable EffectData,
// or a configuration error describing the first
// invariant violated.
func NewEffectData(cfg EffectData) (*EffectData, error) {
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	data := cfg
	data.Modifiers = append([]Modifier(nil), cfg.Modifiers...)
	data.Components = append([]Component(nil), cfg.Components...)
	data.CustomExecutions = append([]CustomExecution(nil), cfg.CustomExecutions...)
	data.Cues = append([]cue.CueData(nil), cfg.Cues...)
	return &data, nil
}

func validate(cfg *EffectData) error {
	isInstant := cfg.Duration.Type == Instant

	if isInstant {
		if cfg.Periodic != nil {
			return cfgErr("effect %q: Instant effects cannot be Periodic", cfg.Name)
		}
		if cfg.Stacking != nil {
			return cfgErr("effect %q: Instant effects cannot have StackingData", cfg.Name)
		}
		if !cfg.SnapshotLevel {
			return cfgErr("effect %q: Instant effects must have SnapshotLevel=true", cfg.Name)
		}
		for _, m := range cfg.Modifiers {
			if m.isNonSnapshotAttributeBased() {
				return cfgErr("effect %q: Instant effects cannot use a non-snapshot AttributeBased modifier on %q",
					cfg.Name, m.Attribute)
			}
		}
		for _, c := range cfg.Components {
			if tm, ok := c.(TagMutatingComponent); ok && tm.MutatesTags() {
				return cfgErr("effect %q: tag-mutating component %q is forbidden on Instant effects",
					cfg.Name, c.ComponentName())
			}
		}
	}

	if cfg.Duration.Type == HasDuration && cfg.Duration.Duration == nil {
		return cfgErr("effect %q: HasDuration requires a Duration value", cfg.Name)
	}

	if cfg.Stacking != nil {
		if err := validateStacking(cfg.Name, cfg.Stacking); err != nil {
			return err
		}
	}

	for _, c := range cfg.Cues {
		if c.MagnitudeType == cue.StackCount {
			if cfg.SuppressStackingCues {
				return cfgErr("effect %q: cue %q uses StackCount magnitude but SuppressStackingCues is set",
					cfg.Name, c.Tag)
			}
			if cfg.Stacking == nil {
				return cfgErr("effect %q: cue %q uses StackCount magnitude but the effect has no StackingData",
					cfg.Name, c.Tag)
			}
		}
		if c.MagnitudeType.RequiresAttribute() && c.AttributeKey == "" {
			return cfgErr("effect %q: cue %q requires an AttributeKey for its magnitude type", cfg.Name, c.Tag)
		}
	}

	return nil
}

func validateStacking(name string, s *StackingData) error {
	if s.StackPolicy == AggregateByTarget && s.OwnerDenialPolicy == OwnerDenialUnspecified {
		return cfgErr("effect %q: AggregateByTarget stacking requires an explicit OwnerDenialPolicy", name)
	}
	if s.StackLevelPolicy == AggregateLevels &&
		s.LevelDenialPolicy == 0 && s.LevelOverridePolicy == 0 {
		return cfgErr("effect %q: AggregateLevels stacking requires a LevelDenialPolicy or LevelOverridePolicy", name)
	}
	if s.LevelDenialPolicy&s.LevelOverridePolicy != 0 {
		return cfgErr("effect %q: LevelDenialPolicy and LevelOverridePolicy overlap", name)
	}
	return nil
}

func cfgErr(format string, args ...any) error {
	return rpgerr.NewfWithOpts(rpgerr.CodeInvalidArgument, nil, format, args...)
}
