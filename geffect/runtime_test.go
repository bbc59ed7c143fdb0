// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/gamesmiths-guild/forge/geffect"
)

type fakeEntity struct{ id, typ string }

func (f fakeEntity) GetID() string            { return f.id }
func (f fakeEntity) GetType() core.EntityType { return core.EntityType(f.typ) }

type RuntimeEffectSuite struct {
	suite.Suite
	data *geffect.EffectData
}

func TestRuntimeEffectSuite(t *testing.T) {
	suite.Run(t, new(RuntimeEffectSuite))
}

func (s *RuntimeEffectSuite) SetupTest() {
	data, err := geffect.NewEffectData(geffect.EffectData{
		Name:          "Poison",
		Duration:      geffect.Duration{Type: geffect.Instant},
		SnapshotLevel: true,
	})
	s.Require().NoError(err)
	s.data = data
}

func (s *RuntimeEffectSuite) TestSetLevelFiresOnlyOnChange() {
	r := geffect.NewRuntimeEffect(s.data, 1, geffect.Ownership{})
	var seen []int32
	r.OnLevelChanged(func(lvl int32) { seen = append(seen, lvl) })

	r.SetLevel(1) // no-op, same level
	r.LevelUp()
	r.SetLevel(5)

	s.Equal([]int32{2, 5}, seen)
}

func (s *RuntimeEffectSuite) TestCallerMagnitudes() {
	r := geffect.NewRuntimeEffect(s.data, 1, geffect.Ownership{})
	r.SetSetByCallerMagnitude("SpellPower", 7)
	s.Equal(float32(7), r.CallerMagnitudes()["SpellPower"])
}

func (s *RuntimeEffectSuite) TestOwnershipSameOwner() {
	a := geffect.Ownership{Owner: fakeEntity{id: "1", typ: "char"}}
	b := geffect.Ownership{Owner: fakeEntity{id: "1", typ: "char"}}
	c := geffect.Ownership{Owner: fakeEntity{id: "2", typ: "char"}}

	s.True(a.SameOwner(b))
	s.False(a.SameOwner(c))
	s.True(geffect.Ownership{}.SameOwner(geffect.Ownership{}))
}

func (s *RuntimeEffectSuite) TestCloneSharesDataAndOwnershipNotLevel() {
	r := geffect.NewRuntimeEffect(s.data, 1, geffect.Ownership{Owner: fakeEntity{id: "1"}})
	r.SetSetByCallerMagnitude("X", 3)

	clone := r.Clone(5)
	s.Same(r.Data(), clone.Data())
	s.Equal(int32(5), clone.Level())
	s.Equal(float32(3), clone.CallerMagnitudes()["X"])
}
