// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package active

import (
	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/geffect"
)

// EvaluatedModifier is one modifier resolved against a concrete target (and
// possibly source) attribute, with its magnitude computed for the current
// level/ownership/stack.
type EvaluatedModifier struct {
	TargetAttribute  *attribute.Attribute
	Operation        geffect.Operation
	Magnitude        float32
	Channel          int
	IsSnapshot       bool
	BackingAttribute *attribute.Attribute // nil unless the magnitude is AttributeBased
}

// EvaluatedSnapshot caches the per-application evaluation an ActiveEffect
// reuses across ticks: the evaluated duration and period, and each
// modifier's resolved target/magnitude.
type EvaluatedSnapshot struct {
	Level      int32
	StackCount int32
	Duration   float32
	Period     float32
	HasPeriod  bool
	Modifiers  []EvaluatedModifier
	Inhibited  bool
}
