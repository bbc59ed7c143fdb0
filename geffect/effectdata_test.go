// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gamesmiths-guild/forge/cue"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/magnitude"
)

type EffectDataSuite struct {
	suite.Suite
}

func TestEffectDataSuite(t *testing.T) {
	suite.Run(t, new(EffectDataSuite))
}

func (s *EffectDataSuite) TestInstantValidConfig() {
	data, err := geffect.NewEffectData(geffect.EffectData{
		Name:          "Instant Damage",
		Duration:      geffect.Duration{Type: geffect.Instant},
		SnapshotLevel: true,
		Modifiers: []geffect.Modifier{
			{Attribute: "Vitals.Health", Operation: geffect.FlatBonus, Magnitude: magnitude.ScalableFloat{Base: -25}},
		},
	})
	s.NoError(err)
	s.Equal("Instant Damage", data.Name)
}

func (s *EffectDataSuite) TestInstantCannotBePeriodic() {
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:          "Bad",
		Duration:      geffect.Duration{Type: geffect.Instant},
		SnapshotLevel: true,
		Periodic:      &geffect.PeriodicData{},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestInstantRequiresSnapshotLevel() {
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.Instant},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestInstantRejectsNonSnapshotAttributeBased() {
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:          "Bad",
		Duration:      geffect.Duration{Type: geffect.Instant},
		SnapshotLevel: true,
		Modifiers: []geffect.Modifier{
			{
				Attribute: "Vitals.Health",
				Operation: geffect.FlatBonus,
				Magnitude: magnitude.AttributeBased{
					Capture: magnitude.AttributeCaptureDef{AttributeKey: "Vitals.Mana", Snapshot: false},
				},
			},
		},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestHasDurationRequiresDurationValue() {
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestAggregateByTargetRequiresOwnerDenialPolicy() {
	dur := magnitude.ScalableFloat{Base: 10}
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration, Duration: &dur},
		Stacking: &geffect.StackingData{StackPolicy: geffect.AggregateByTarget},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestAggregateLevelsRequiresLevelPolicy() {
	dur := magnitude.ScalableFloat{Base: 10}
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration, Duration: &dur},
		Stacking: &geffect.StackingData{
			StackPolicy:      geffect.AggregateBySource,
			StackLevelPolicy: geffect.AggregateLevels,
		},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestLevelDenialOverlapsOverrideRejected() {
	dur := magnitude.ScalableFloat{Base: 10}
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration, Duration: &dur},
		Stacking: &geffect.StackingData{
			StackPolicy:         geffect.AggregateBySource,
			StackLevelPolicy:    geffect.AggregateLevels,
			LevelDenialPolicy:   geffect.LevelHigher,
			LevelOverridePolicy: geffect.LevelHigher,
		},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestCueStackCountRequiresStackingAndNotSuppressed() {
	dur := magnitude.ScalableFloat{Base: 10}
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration, Duration: &dur},
		Cues:     []cue.CueData{{Tag: "fx.stack", MagnitudeType: cue.StackCount}},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestAttributeCueRequiresAttributeKey() {
	dur := magnitude.ScalableFloat{Base: 10}
	_, err := geffect.NewEffectData(geffect.EffectData{
		Name:     "Bad",
		Duration: geffect.Duration{Type: geffect.HasDuration, Duration: &dur},
		Cues:     []cue.CueData{{Tag: "fx.dmg", MagnitudeType: cue.AttributeCurrentValue}},
	})
	s.Error(err)
}

func (s *EffectDataSuite) TestEqualIsStructural() {
	mk := func() geffect.EffectData {
		return geffect.EffectData{
			Name:          "Bless",
			Duration:      geffect.Duration{Type: geffect.Instant},
			SnapshotLevel: true,
			Modifiers: []geffect.Modifier{
				{Attribute: "Vitals.Health", Operation: geffect.FlatBonus, Magnitude: magnitude.ScalableFloat{Base: 1}},
			},
		}
	}
	a, err := geffect.NewEffectData(mk())
	s.NoError(err)
	b, err := geffect.NewEffectData(mk())
	s.NoError(err)

	s.True(a.Equal(b))
	s.Equal(a.Hash(), b.Hash())

	cfg := mk()
	cfg.Name = "Curse"
	c, err := geffect.NewEffectData(cfg)
	s.NoError(err)
	s.False(a.Equal(c))
}
