// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package active

import (
	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/magnitude"
)

// EvaluateModifiers evaluates every Modifier in mods against in, scaling
// by stackMultiplier. It is a free function, not an ActiveEffect method, so package manager's Instant application path
// — which never constructs an ActiveEffect — can share the exact same
// evaluation code as periodic/duration effects.
func EvaluateModifiers(ev *magnitude.Evaluator, mods []geffect.Modifier, in magnitude.Input, stackMultiplier float32) []EvaluatedModifier {
	out := make([]EvaluatedModifier, 0, len(mods))
	for _, m := range mods {
		mag := ev.Evaluate(m.Magnitude, in) * stackMultiplier

		var targetAttr *attribute.Attribute
		if in.Target != nil {
			targetAttr, _ = in.Target.Resolve(m.Attribute)
		}

		var backing *attribute.Attribute
		var isSnapshot bool
		if ab, ok := m.Magnitude.(magnitude.AttributeBased); ok {
			isSnapshot = ab.Capture.Snapshot
			side := in.Target
			if ab.Capture.Source == magnitude.CaptureSource {
				side = in.Source
			}
			if side != nil {
				backing, _ = side.Resolve(ab.Capture.AttributeKey)
			}
		}

		out = append(out, EvaluatedModifier{
			TargetAttribute:  targetAttr,
			Operation:        m.Operation,
			Magnitude:        mag,
			Channel:          m.Channel,
			IsSnapshot:       isSnapshot,
			BackingAttribute: backing,
		})
	}
	return out
}

// ExecuteModifiers mutates each modifier's target attribute Base directly
// — the path Instant effects and every periodic tick use instead of
// attaching a persistent channel modifier.
func ExecuteModifiers(mods []EvaluatedModifier) {
	for _, m := range mods {
		if m.TargetAttribute == nil {
			continue
		}
		switch m.Operation {
		case geffect.FlatBonus:
			m.TargetAttribute.ExecuteFlat(int32(m.Magnitude))
		case geffect.PercentBonus:
			m.TargetAttribute.ExecutePercent(m.Magnitude)
		case geffect.Override:
			m.TargetAttribute.ExecuteOverride(int32(m.Magnitude))
		}
	}
}

// attachModifiers adds a persistent channel modifier for each evaluated
// modifier — the path non-periodic Infinite/HasDuration effects use while
// applied.
func attachModifiers(mods []EvaluatedModifier) {
	for _, m := range mods {
		attachModifier(m)
	}
}

// detachModifiers reverses attachModifiers exactly, the inverse required by
// the reversibility invariant.
func detachModifiers(mods []EvaluatedModifier) {
	for _, m := range mods {
		detachModifier(m)
	}
}

func attachModifier(m EvaluatedModifier) {
	if m.TargetAttribute == nil {
		return
	}
	switch m.Operation {
	case geffect.FlatBonus:
		m.TargetAttribute.AddFlatModifier(m.Magnitude, m.Channel)
	case geffect.PercentBonus:
		m.TargetAttribute.AddPercentModifier(m.Magnitude, m.Channel)
	case geffect.Override:
		m.TargetAttribute.AddOverride(attribute.OverrideRecord{Magnitude: int32(m.Magnitude), Channel: m.Channel})
	}
}

func detachModifier(m EvaluatedModifier) {
	if m.TargetAttribute == nil {
		return
	}
	switch m.Operation {
	case geffect.FlatBonus:
		m.TargetAttribute.RemoveFlatModifier(m.Magnitude, m.Channel)
	case geffect.PercentBonus:
		m.TargetAttribute.RemovePercentModifier(m.Magnitude, m.Channel)
	case geffect.Override:
		m.TargetAttribute.ClearOverride(attribute.OverrideRecord{Magnitude: int32(m.Magnitude), Channel: m.Channel})
	}
}

// touchedAttributes returns the distinct target attributes mods writes to,
// in first-seen order.
func touchedAttributes(mods []EvaluatedModifier) []*attribute.Attribute {
	seen := make(map[*attribute.Attribute]struct{}, len(mods))
	out := make([]*attribute.Attribute, 0, len(mods))
	for _, m := range mods {
		if m.TargetAttribute == nil {
			continue
		}
		if _, ok := seen[m.TargetAttribute]; ok {
			continue
		}
		seen[m.TargetAttribute] = struct{}{}
		out = append(out, m.TargetAttribute)
	}
	return out
}

// FlushAll captures each touched attribute's pending delta and flushes it,
// returning the pre-flush deltas for cue magnitude computation. Exported
// for package manager's Instant path, which flushes outside of any ActiveEffect.
func FlushAll(mods []EvaluatedModifier) map[*attribute.Attribute]int32 {
	pending := make(map[*attribute.Attribute]int32)
	attrs := touchedAttributes(mods)
	for _, attr := range attrs {
		pending[attr] = attr.PendingValueChange()
	}
	for _, attr := range attrs {
		attr.Flush()
	}
	return pending
}
