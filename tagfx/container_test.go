// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package tagfx_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gamesmiths-guild/forge/tagfx"
)

type SetSuite struct {
	suite.Suite
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

func (s *SetSuite) TestHasAllHasAny() {
	set := tagfx.NewSet("poisoned", "prone")

	s.True(set.HasAll("poisoned"))
	s.True(set.HasAll("poisoned", "prone"))
	s.False(set.HasAll("poisoned", "stunned"))

	s.True(set.HasAny("stunned", "prone"))
	s.False(set.HasAny("stunned", "blinded"))
}

func (s *SetSuite) TestAddRemoveNotifies() {
	set := tagfx.NewSet()
	var seen []string
	unsub := set.OnTagsChanged(func(c tagfx.Container) {
		seen = append(seen, "changed")
	})
	defer unsub()

	set.Add("burning")
	set.Add("burning") // no-op, already present: must not notify again
	set.Remove("burning")

	s.Equal([]string{"changed", "changed"}, seen)
	s.False(set.HasAny("burning"))
}

func (s *SetSuite) TestUnsubscribeStopsNotifications() {
	set := tagfx.NewSet()
	count := 0
	unsub := set.OnTagsChanged(func(c tagfx.Container) { count++ })
	unsub()

	set.Add("charmed")
	s.Equal(0, count)
}

func (s *SetSuite) TestRequirement() {
	set := tagfx.NewSet("undead", "flying")

	req := &tagfx.Requirement{RequireAll: []string{"undead"}, RequireNone: []string{"blessed"}}
	s.True(req.RequirementsMet(set))

	set.Add("blessed")
	s.False(req.RequirementsMet(set))
}

func (s *SetSuite) TestRequirementNilContainer() {
	req := &tagfx.Requirement{}
	s.True(req.RequirementsMet(nil))

	req2 := &tagfx.Requirement{RequireAll: []string{"x"}}
	s.False(req2.RequirementsMet(nil))
}
