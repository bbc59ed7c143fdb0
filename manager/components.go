// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/gamesmiths-guild/forge/active"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/tagfx"
)

//go:generate mockgen -destination=dicemock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

// ModifierTagsEffectComponent adds Tags to the target's tag container for
// as long as the effect is applied, removing them on Unapply. It holds no
// per-application state, so the same EffectData.Components slice can
// safely back any number of concurrent applications.
type ModifierTagsEffectComponent struct {
	Tags    []string
	Mutator tagfx.Mutator
}

// ComponentName implements geffect.Component.
func (c *ModifierTagsEffectComponent) ComponentName() string { return "ModifierTags" }

// MutatesTags implements geffect.TagMutatingComponent: this component is
// forbidden on Instant effects, since an Instant effect never
// has a lifetime to hold the granted tags for.
func (c *ModifierTagsEffectComponent) MutatesTags() bool { return len(c.Tags) > 0 }

// OnEffectApplied implements active.EffectAppliedComponent.
func (c *ModifierTagsEffectComponent) OnEffectApplied(core.Entity, *active.EvaluatedSnapshot) {
	if c.Mutator != nil && len(c.Tags) > 0 {
		c.Mutator.Add(c.Tags...)
	}
}

// OnActiveEffectUnapplied implements active.ActiveEffectUnappliedComponent.
func (c *ModifierTagsEffectComponent) OnActiveEffectUnapplied(_ core.Entity, _ *active.EvaluatedSnapshot, removed bool) {
	if removed && c.Mutator != nil && len(c.Tags) > 0 {
		c.Mutator.Remove(c.Tags...)
	}
}

// TargetTagRequirementsEffectComponent gates an effect on the target's own
// tags: Application is checked once at admission time,
// Ongoing and Removal are re-checked by Manager.reevaluateTagRequirements
// whenever the target's tags change. All three are optional: a nil
// Application never rejects, a nil Ongoing never inhibits, and a nil
// Removal never removes.
//
// This component deliberately holds no subscription of its own — see
// Manager.reevaluateTagRequirements for why that responsibility lives on
// Manager instead.
type TargetTagRequirementsEffectComponent struct {
	Application tagfx.Requirements
	Ongoing     tagfx.Requirements
	Removal     tagfx.Requirements
}

// ComponentName implements geffect.Component.
func (c *TargetTagRequirementsEffectComponent) ComponentName() string { return "TargetTagRequirements" }

// ChanceToApplyEffectComponent admits an effect with probability Chance,
// rolling against Roller. A nil Roller always admits, so
// tests that don't care about randomness can omit it.
type ChanceToApplyEffectComponent struct {
	// Chance is the probability of admission in [0, 1].
	Chance float32
	Roller dice.Roller
}

// ComponentName implements geffect.Component.
func (c *ChanceToApplyEffectComponent) ComponentName() string { return "ChanceToApply" }

// CanApplyEffect implements active.CanApplyEffectComponent.
func (c *ChanceToApplyEffectComponent) CanApplyEffect(core.Entity, *geffect.RuntimeEffect) bool {
	if c.Roller == nil || c.Chance >= 1 {
		return true
	}
	if c.Chance <= 0 {
		return false
	}
	roll, err := c.Roller.Roll(10000)
	if err != nil {
		return false
	}
	return float32(roll) <= c.Chance*10000
}

// AbilityGranter is the host surface GrantAbilityEffectComponent grants and
// revokes abilities through. The engine has no notion of
// what an ability is beyond this identifier-based handoff.
type AbilityGranter interface {
	GrantAbility(entity core.Entity, abilityID string)
	RevokeAbility(entity core.Entity, abilityID string)
}

// GrantAbilityEffectComponent grants AbilityID to the target while the
// effect is applied, revoking it on Unapply.
type GrantAbilityEffectComponent struct {
	AbilityID string
	Granter   AbilityGranter
}

// ComponentName implements geffect.Component.
func (c *GrantAbilityEffectComponent) ComponentName() string { return "GrantAbility" }

// OnEffectApplied implements active.EffectAppliedComponent.
func (c *GrantAbilityEffectComponent) OnEffectApplied(target core.Entity, _ *active.EvaluatedSnapshot) {
	if c.Granter != nil {
		c.Granter.GrantAbility(target, c.AbilityID)
	}
}

// OnActiveEffectUnapplied implements active.ActiveEffectUnappliedComponent.
func (c *GrantAbilityEffectComponent) OnActiveEffectUnapplied(target core.Entity, _ *active.EvaluatedSnapshot, removed bool) {
	if removed && c.Granter != nil {
		c.Granter.RevokeAbility(target, c.AbilityID)
	}
}
