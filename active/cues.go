// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package active

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/cue"
	"github.com/gamesmiths-guild/forge/geffect"
)

// CueContext carries the evaluated state DispatchCues needs to resolve a
// cue's magnitude. It is deliberately smaller than
// EvaluatedSnapshot so package manager's Instant path — which never builds
// a full snapshot or constructs an ActiveEffect — can supply it directly.
type CueContext struct {
	Level       int32
	StackCount  int32
	TargetAttrs *attribute.Map
}

// DispatchCues fires every cue configured on data for lifecycle lc, honoring
// RequireModifierSuccessToTriggerCue and SuppressStackingCues. pending is the pre-flush PendingValueChange snapshot FlushAll
// captured, keyed by attribute; it feeds the AttributeValueChange magnitude
// type and the RequireModifierSuccessToTriggerCue gate. It is the shared
// dispatch path for ActiveEffect's own lifecycle cues and for package
// manager's Instant application, which has no ActiveEffect to dispatch
// from.
func DispatchCues(cues *cue.Manager, data *geffect.EffectData, lc cue.Lifecycle, target, source core.Entity,
	ctx CueContext, pending map[*attribute.Attribute]int32, interrupted bool,
) {
	if len(data.Cues) == 0 {
		return
	}
	if lc == cue.Update && data.SuppressStackingCues {
		return
	}
	if data.RequireModifierSuccessToTriggerCue {
		any := false
		for _, v := range pending {
			if v != 0 {
				any = true
				break
			}
		}
		if !any {
			return
		}
	}

	for _, cd := range data.Cues {
		mag := resolveCueMagnitude(cd, ctx, pending)
		params := cue.Params{
			Magnitude:   mag,
			Normalized:  cue.Normalized(float32(mag), cd.Min, cd.Max),
			Source:      source,
			Custom:      cd.Custom,
			Interrupted: interrupted,
		}
		cues.Dispatch(cd.Tag, lc, target, params)
	}
}

func resolveCueMagnitude(cd cue.CueData, ctx CueContext, pending map[*attribute.Attribute]int32) int32 {
	switch cd.MagnitudeType {
	case cue.EffectLevel:
		return ctx.Level
	case cue.StackCount:
		return ctx.StackCount
	}

	if ctx.TargetAttrs == nil {
		return 0
	}
	attr, err := ctx.TargetAttrs.Resolve(cd.AttributeKey)
	if err != nil {
		return 0
	}
	switch cd.MagnitudeType {
	case cue.AttributeValueChange:
		return pending[attr]
	case cue.AttributeBaseValue:
		return attr.Base()
	case cue.AttributeCurrentValue:
		return attr.Current()
	case cue.AttributeModifier:
		return attr.Modifier()
	case cue.AttributeOverflow:
		return attr.Overflow()
	case cue.AttributeValidModifier:
		return attr.ValidModifier()
	case cue.AttributeMin:
		return attr.Min()
	case cue.AttributeMax:
		return attr.Max()
	case cue.AttributeMagnitudeEvaluatedUpToChannel:
		return int32(attr.CalculateMagnitudeUpToChannel(cd.FinalChannel))
	default:
		return 0
	}
}
