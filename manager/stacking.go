// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package manager

import (
	"github.com/gamesmiths-guild/forge/active"
	"github.com/gamesmiths-guild/forge/geffect"
)

// findPeer locates the ActiveEffect, if any, that an incoming application
// of runtime should merge into rather than become a new ActiveEffect. A
// peer must be backed by the same EffectData and satisfy the configured
// StackPolicy/StackLevelPolicy compatibility: AggregateBySource requires
// the same Owner; AggregateByTarget matches any owner. SegregateLevels
// additionally requires an exact level match — AggregateLevels defers the
// level relationship to mergeStack's gates.
func (m *Manager) findPeer(data *geffect.EffectData, runtime *geffect.RuntimeEffect) *active.ActiveEffect {
	for _, ae := range m.actives {
		if ae.Removed() || !sameEffectData(ae.Runtime().Data(), data) {
			continue
		}
		if data.Stacking.StackPolicy == geffect.AggregateBySource &&
			!ae.Runtime().Ownership().SameOwner(runtime.Ownership()) {
			continue
		}
		if data.Stacking.StackLevelPolicy == geffect.SegregateLevels &&
			ae.Runtime().Level() != runtime.Level() {
			continue
		}
		return ae
	}
	return nil
}

// levelRelation classifies incomingLevel against peerLevel as a
// LevelComparison bitflag, for consulting LevelDenialPolicy and
// LevelOverridePolicy.
func levelRelation(peerLevel, incomingLevel int32) geffect.LevelComparison {
	switch {
	case incomingLevel == peerLevel:
		return geffect.LevelEqual
	case incomingLevel > peerLevel:
		return geffect.LevelHigher
	default:
		return geffect.LevelLower
	}
}

// mergeStack runs the multi-axis stacking protocol against an existing
// peer for a new application of incoming. The gates run in a fixed order:
// level, overflow, owner, then the stack-count change — so a level
// override's ResetStacks can be superseded by an owner override's
// ResetStacks, never the other way around, and the stack limit is always
// read at the post-level-override effective level. ok is false if the
// merge is denied outright (no side effects at all); changed reports
// whether anything observable actually happened, so the caller can decide
// whether an additional Update cue is owed for a merge that succeeded but
// changed nothing.
func mergeStack(peer *active.ActiveEffect, incoming *geffect.RuntimeEffect, stacking *geffect.StackingData) (ok, changed bool) {
	effectiveLevel := peer.Runtime().Level()
	resetStacks := false
	takeIncoming := false

	// Level gate. Only consulted when levels aggregate; SegregateLevels
	// peers were already level-matched by findPeer.
	if stacking.StackLevelPolicy == geffect.AggregateLevels {
		rel := levelRelation(effectiveLevel, incoming.Level())
		if stacking.LevelDenialPolicy.Has(rel) {
			return false, false
		}
		if stacking.LevelOverridePolicy.Has(rel) {
			effectiveLevel = incoming.Level()
			changed = true
			resetStacks = stacking.LevelOverrideStackCountPolicy == geffect.ResetStacks
		}
	}

	// Overflow gate, at the effective (post-level-override) level.
	limit := stacking.StackLimit.Eval(effectiveLevel)
	if peer.StackCount() >= limit && stacking.OverflowPolicy == geffect.DenyApplication {
		return false, false
	}

	// Owner gate. A same-owner application passes through untouched; the
	// denial and override policies only ever see differing owners.
	if !peer.Runtime().Ownership().SameOwner(incoming.Ownership()) {
		if stacking.OwnerDenialPolicy == geffect.OwnerDenyIfDifferent {
			return false, false
		}
		if stacking.OwnerOverridePolicy == geffect.OwnerOverride {
			takeIncoming = true
			changed = true
			if stacking.OwnerOverrideStackCountPolicy == geffect.ResetStacks {
				resetStacks = true
			}
		}
	}

	// Commit the effective runtime and level. An owner override adopts the
	// incoming runtime wholesale; a level override alone keeps the peer's
	// runtime (and with it the original owner) and only moves its level.
	if takeIncoming {
		peer.ReplaceRuntime(incoming)
	}
	if peer.Runtime().Level() != effectiveLevel {
		peer.Runtime().SetLevel(effectiveLevel)
	}

	// Stack-count change.
	nextCount := peer.StackCount()
	if resetStacks {
		nextCount = stacking.InitialStack.Eval(effectiveLevel)
	} else if nextCount < limit {
		nextCount++
	}
	if nextCount > limit {
		nextCount = limit
	}
	if nextCount != peer.StackCount() {
		peer.SetStackCount(nextCount)
		changed = true
	}

	// Re-evaluate now that level, ownership, and stack count have settled,
	// so the refresh and reset steps below read post-merge Duration/Period.
	if changed {
		peer.TriggerReEvaluate()
	}

	if stacking.ApplicationRefreshPolicy == geffect.RefreshOnSuccessfulApplication {
		peer.RefreshDuration()
	}

	if stacking.ApplicationResetPeriodPolicy == geffect.ResetOnSuccessfulApplication {
		peer.ResetPeriod()
	}

	if stacking.ExecuteOnSuccessfulApplication {
		peer.ExecuteOnApply()
	}

	return true, changed
}
