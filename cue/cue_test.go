// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package cue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/gamesmiths-guild/forge/cue"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name          string
		mag, min, max float32
		want          float32
	}{
		{"midpoint", 5, 0, 10, 0.5},
		{"below min clamps", -5, 0, 10, 0},
		{"above max clamps", 50, 0, 10, 1},
		{"degenerate range returns one", 5, 3, 3.005, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cue.Normalized(tt.mag, tt.min, tt.max), 0.001)
		})
	}
}

func TestMagnitudeTypeRequiresAttribute(t *testing.T) {
	assert.False(t, cue.EffectLevel.RequiresAttribute())
	assert.False(t, cue.StackCount.RequiresAttribute())
	assert.True(t, cue.AttributeCurrentValue.RequiresAttribute())
	assert.True(t, cue.AttributeMagnitudeEvaluatedUpToChannel.RequiresAttribute())
}

func TestManagerDispatchFansOutAndUnsubscribes(t *testing.T) {
	m := cue.NewManager()
	var calls []cue.Lifecycle
	unsub := m.Subscribe("fx.bless", func(lc cue.Lifecycle, target core.Entity, params cue.Params) {
		calls = append(calls, lc)
	})

	var target core.Entity
	m.Dispatch("fx.bless", cue.Apply, target, cue.Params{Magnitude: 1})
	m.Dispatch("fx.other", cue.Apply, target, cue.Params{}) // different tag, no call
	unsub()
	m.Dispatch("fx.bless", cue.Remove, target, cue.Params{})

	assert.Equal(t, []cue.Lifecycle{cue.Apply}, calls)
}
