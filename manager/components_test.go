// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package manager_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/cue"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/magnitude"
	"github.com/gamesmiths-guild/forge/manager"
	"github.com/gamesmiths-guild/forge/manager/dicemock"
	tagfxmock "github.com/gamesmiths-guild/forge/tagfx/mock"
)

// TestChanceToApplyEffectComponent_Denies exercises the probabilistic
// admission gate against a mocked dice.Roller.
func TestChanceToApplyEffectComponent_Denies(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Roll(10000).Return(9000, nil)

	c := &manager.ChanceToApplyEffectComponent{Chance: 0.5, Roller: roller}
	require.False(t, c.CanApplyEffect(nil, nil))
}

// TestChanceToApplyEffectComponent_Admits mirrors the above with a roll that
// should succeed.
func TestChanceToApplyEffectComponent_Admits(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Roll(10000).Return(1000, nil)

	c := &manager.ChanceToApplyEffectComponent{Chance: 0.5, Roller: roller}
	require.True(t, c.CanApplyEffect(nil, nil))
}

// TestChanceToApplyEffectComponent_RollerError treats an injected dice error
// as a denial.
func TestChanceToApplyEffectComponent_RollerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Roll(10000).Return(0, errors.New("boom"))

	c := &manager.ChanceToApplyEffectComponent{Chance: 0.9, Roller: roller}
	require.False(t, c.CanApplyEffect(nil, nil))
}

// TestTargetTagRequirementsApplicationGate exercises the Application gate
// against a mocked tag container and requirements predicate. The gate is
// checked directly in Manager.Apply rather than through
// CanApplyEffectComponent (see manager.go).
func TestTargetTagRequirementsApplicationGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	tags := tagfxmock.NewMockChangeNotifier(ctrl)
	tags.EXPECT().OnTagsChanged(gomock.Any()).Return(func() {})
	reqs := tagfxmock.NewMockRequirements(ctrl)
	reqs.EXPECT().RequirementsMet(gomock.Any()).Return(false)

	evaluator := magnitude.NewEvaluator()
	cues := cue.NewManager()
	vitals := attribute.NewSet("Vitals")
	vitals.Add("Health", attribute.Config{Base: 100, Min: 0, Max: 200, Channels: 1})
	target := attribute.NewMap()
	target.AddSet(vitals)

	mgr := manager.New(manager.Config{
		Target:      fakeEntity{id: "target"},
		TargetAttrs: target,
		Evaluator:   evaluator,
		Cues:        cues,
		Tags:        tags,
	})
	defer mgr.Close()

	data, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Blessed",
		Duration: geffect.Duration{Type: geffect.Infinite},
		Components: []geffect.Component{
			&manager.TargetTagRequirementsEffectComponent{Application: reqs},
		},
	})
	require.NoError(t, err)

	runtime := geffect.NewRuntimeEffect(data, 1, geffect.Ownership{Owner: fakeEntity{id: "caster"}})
	h, ok := mgr.Apply(runtime, nil)
	require.False(t, ok)
	require.Nil(t, h)
}

// TestModifierTagsEffectComponent_AddsAndRemoves exercises the tag-mutation
// lifecycle against a mocked Mutator.
func TestModifierTagsEffectComponent_AddsAndRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	mutator := tagfxmock.NewMockMutator(ctrl)
	mutator.EXPECT().Add("Blessed", "Buffed")
	mutator.EXPECT().Remove("Blessed", "Buffed")

	evaluator := magnitude.NewEvaluator()
	cues := cue.NewManager()
	vitals := attribute.NewSet("Vitals")
	vitals.Add("Health", attribute.Config{Base: 100, Min: 0, Max: 200, Channels: 1})
	target := attribute.NewMap()
	target.AddSet(vitals)

	mgr := manager.New(manager.Config{
		Target:      fakeEntity{id: "target"},
		TargetAttrs: target,
		Evaluator:   evaluator,
		Cues:        cues,
	})

	data, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Blessing",
		Duration: geffect.Duration{Type: geffect.Infinite},
		Components: []geffect.Component{
			&manager.ModifierTagsEffectComponent{Tags: []string{"Blessed", "Buffed"}, Mutator: mutator},
		},
	})
	require.NoError(t, err)

	runtime := geffect.NewRuntimeEffect(data, 1, geffect.Ownership{Owner: fakeEntity{id: "caster"}})
	h, ok := mgr.Apply(runtime, nil)
	require.True(t, ok)
	require.NotNil(t, h)

	mgr.Remove(h, false)
}

// TestModifierTagsEffectComponent_ForbiddenOnInstant confirms the
// construction-time configuration-error path: a tag-mutating
// component on an Instant effect is a construction-time failure, never a
// runtime surprise.
func TestModifierTagsEffectComponent_ForbiddenOnInstant(t *testing.T) {
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:          "InstantBlessing",
		Duration:      geffect.Duration{Type: geffect.Instant},
		SnapshotLevel: true,
		Components: []geffect.Component{
			&manager.ModifierTagsEffectComponent{Tags: []string{"Blessed"}},
		},
	})
	require.Error(t, err)
}
