// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Equal reports whether d and other are structurally equivalent: same
// name, duration, stacking, periodic, snapshot-level and cue-policy flags,
// and sequence-equal modifiers/components/executions/cues.
// Components and CustomExecutions are compared by reference identity:
// calculators and handlers are shared by reference, so two effects holding
// the same component instance are equal on that axis even though
// function-valued fields are not otherwise comparable.
func (d *EffectData) Equal(other *EffectData) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.Name != other.Name ||
		d.SnapshotLevel != other.SnapshotLevel ||
		d.RequireModifierSuccessToTriggerCue != other.RequireModifierSuccessToTriggerCue ||
		d.SuppressStackingCues != other.SuppressStackingCues {
		return false
	}
	if !reflect.DeepEqual(d.Duration, other.Duration) {
		return false
	}
	if !reflect.DeepEqual(d.Stacking, other.Stacking) {
		return false
	}
	if !reflect.DeepEqual(d.Periodic, other.Periodic) {
		return false
	}
	if !reflect.DeepEqual(d.Modifiers, other.Modifiers) {
		return false
	}
	if !reflect.DeepEqual(d.Cues, other.Cues) {
		return false
	}
	if len(d.Components) != len(other.Components) {
		return false
	}
	for i := range d.Components {
		if d.Components[i] != other.Components[i] {
			return false
		}
	}
	if len(d.CustomExecutions) != len(other.CustomExecutions) {
		return false
	}
	for i := range d.CustomExecutions {
		if d.CustomExecutions[i] != other.CustomExecutions[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal, so host tooling
// can intern EffectData values in a map.
func (d *EffectData) Hash() uint64 {
	h := fnv.New64a()
	var dur any
	if d.Duration.Duration != nil {
		dur = *d.Duration.Duration
	}
	fmt.Fprintf(h, "%s|%v|%v|%v|%v|%t|%t|%t|%v",
		d.Name, d.Duration.Type, dur, d.Stacking, d.Periodic,
		d.SnapshotLevel, d.RequireModifierSuccessToTriggerCue, d.SuppressStackingCues,
		d.Cues)
	for _, m := range d.Modifiers {
		fmt.Fprintf(h, "|m:%s|%v|%d|%T", m.Attribute, m.Operation, m.Channel, m.Magnitude)
	}
	for _, c := range d.Components {
		fmt.Fprintf(h, "|c:%p", c)
	}
	for _, e := range d.CustomExecutions {
		fmt.Fprintf(h, "|e:%p", e)
	}
	return h.Sum64()
}
