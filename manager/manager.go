// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package manager implements the Effects Manager: the
// per-entity coordinator that runs admission control over an Apply call,
// matches and merges compatible stacks, drives Update ticks across every
// registered ActiveEffect, and answers read-only queries about what is
// applied. It is the outermost layer of the engine — everything else
// (attribute, magnitude, geffect, active, cue) is a collaborator it wires
// together for one target entity.
package manager

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/gamesmiths-guild/forge/active"
	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/cue"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/magnitude"
	"github.com/gamesmiths-guild/forge/tagfx"
)

// Config constructs a Manager for one target entity.
type Config struct {
	Target      core.Entity
	TargetAttrs *attribute.Map
	Evaluator   *magnitude.Evaluator
	Cues        *cue.Manager

	// Tags is optional: the target's own tag container, subscribed to so
	// TargetTagRequirementsEffectComponent's Removal/Ongoing requirements
	// are re-checked whenever the target's tags change. A Manager with no tag-requirement components
	// never needs this.
	Tags tagfx.ChangeNotifier

	// Bus is optional: when supplied, every ActiveEffect this Manager
	// constructs publishes lifecycle telemetry to it,
	// and the Instant fire-and-forget path publishes its own
	// EffectExecuted event directly.
	Bus events.EventBus
}

// Manager is the per-entity effects coordinator. One Manager exclusively
// owns its target's ActiveEffects.
type Manager struct {
	target      core.Entity
	targetAttrs *attribute.Map
	evaluator   *magnitude.Evaluator
	cues        *cue.Manager
	tags        tagfx.ChangeNotifier
	bus         events.EventBus

	actives   []*active.ActiveEffect
	tagsUnsub func()
}

// New constructs a Manager for cfg.Target, subscribing to cfg.Tags if
// supplied.
func New(cfg Config) *Manager {
	m := &Manager{
		target:      cfg.Target,
		targetAttrs: cfg.TargetAttrs,
		evaluator:   cfg.Evaluator,
		cues:        cfg.Cues,
		tags:        cfg.Tags,
		bus:         cfg.Bus,
	}
	if cfg.Tags != nil {
		m.tagsUnsub = cfg.Tags.OnTagsChanged(func(tagfx.Container) { m.reevaluateTagRequirements() })
	}
	return m
}

// Close tears down the tag subscription this Manager holds, if any. A host
// that discards a Manager (entity destroyed) should call this to avoid a
// dangling callback into a freed target.
func (m *Manager) Close() {
	if m.tagsUnsub != nil {
		m.tagsUnsub()
		m.tagsUnsub = nil
	}
}

// Target returns the entity this Manager coordinates effects for.
func (m *Manager) Target() core.Entity { return m.target }

// Apply runs the admission pipeline: component
// veto, Instant fire-and-forget, stack merge against a compatible peer, or
// a fresh ActiveEffect. ok is false for an admission rejection or a denied
// stack merge (no handle, no side effects); it is true with a nil *Handle
// for a successful Instant application, which is fire-and-forget.
func (m *Manager) Apply(runtime *geffect.RuntimeEffect, sourceAttrs *attribute.Map) (handle *Handle, ok bool) {
	data := runtime.Data()

	for _, c := range data.Components {
		if cc, isCanApply := c.(active.CanApplyEffectComponent); isCanApply {
			if !cc.CanApplyEffect(m.target, runtime) {
				return nil, false
			}
		}
		// TargetTagRequirementsEffectComponent's Application requirement is
		// checked directly against m.tags rather than through
		// CanApplyEffectComponent, since that interface has no way to reach
		// the target's tag container and the component itself must stay
		// stateless.
		if tc, isTagReq := c.(*TargetTagRequirementsEffectComponent); isTagReq && tc.Application != nil {
			if m.tags == nil || !tc.Application.RequirementsMet(m.tags) {
				return nil, false
			}
		}
	}

	if data.Duration.Type == geffect.Instant {
		m.applyInstant(runtime, sourceAttrs)
		return nil, true
	}

	if data.Stacking != nil {
		if peer := m.findPeer(data, runtime); peer != nil {
			merged, changed := mergeStack(peer, runtime, data.Stacking)
			if !merged {
				return nil, false
			}
			// A merge that changed something already fired its own Update
			// cue via reEvaluate; this covers the remaining case — a
			// successful merge that left nothing observably different
			// (e.g. the stack was already at its limit with
			// AllowApplication).
			if !changed && !data.SuppressStackingCues {
				active.DispatchCues(m.cues, data, cue.Update, m.target, runtime.Ownership().CueSource(), active.CueContext{
					Level:       peer.Runtime().Level(),
					StackCount:  peer.StackCount(),
					TargetAttrs: m.targetAttrs,
				}, nil, false)
			}
			return &Handle{ae: peer}, true
		}
	}

	ae := active.NewActiveEffect(active.Config{
		Runtime:     runtime,
		Target:      m.target,
		TargetAttrs: m.targetAttrs,
		SourceAttrs: sourceAttrs,
		Evaluator:   m.evaluator,
		Cues:        m.cues,
		Bus:         m.bus,
	})
	ae.Apply()
	m.actives = append(m.actives, ae)
	return &Handle{ae: ae}, true
}

// applyInstant evaluates and executes an Instant effect's modifiers
// directly against target attributes, without ever constructing an
// ActiveEffect. It shares EvaluateModifiers/
// ExecuteModifiers/FlushAll/DispatchCues with package active's periodic
// tick path, which performs the identical evaluate-mutate-flush-cue
// sequence for a duration effect's tick.
func (m *Manager) applyInstant(runtime *geffect.RuntimeEffect, sourceAttrs *attribute.Map) {
	data := runtime.Data()

	in := magnitude.Input{
		Level:            runtime.Level(),
		Source:           sourceAttrs,
		Target:           m.targetAttrs,
		CallerMagnitudes: runtime.CallerMagnitudes(),
	}
	evaluated := active.EvaluateModifiers(m.evaluator, data.Modifiers, in, 1)
	active.ExecuteModifiers(evaluated)

	ctx := geffect.ExecutionContext{
		Level:      runtime.Level(),
		StackCount: 1,
		Source:     sourceAttrs,
		Target:     m.targetAttrs,
	}
	for _, ce := range data.CustomExecutions {
		ce.Execute(ctx)
	}

	pending := active.FlushAll(evaluated)

	snapshot := &active.EvaluatedSnapshot{
		Level:      runtime.Level(),
		StackCount: 1,
		Modifiers:  evaluated,
	}
	for _, c := range data.Components {
		if ec, isExecuted := c.(active.EffectExecutedComponent); isExecuted {
			ec.OnEffectExecuted(m.target, snapshot)
		}
	}

	active.DispatchCues(m.cues, data, cue.Execute, m.target, runtime.Ownership().CueSource(), active.CueContext{
		Level:       runtime.Level(),
		StackCount:  1,
		TargetAttrs: m.targetAttrs,
	}, pending, false)

	if m.bus != nil {
		_ = m.bus.Publish(active.NewInstantExecutedEvent(m.target, data.Name, data.Ref, runtime.Level()))
	}
}

// Remove unapplies and drops the ActiveEffect h refers to.
// Handles are idempotent: removing an already-removed handle is a no-op,
// and a nil handle is ignored.
func (m *Manager) Remove(h *Handle, interrupted bool) {
	if h == nil || h.ae == nil || h.ae.Removed() {
		return
	}
	h.ae.Unapply(interrupted)
	m.prune()
}

// UnapplyByData removes the first active effect backed by data, or does
// nothing if none is found.
func (m *Manager) UnapplyByData(data *geffect.EffectData) {
	for _, ae := range m.actives {
		if ae.Removed() {
			continue
		}
		if sameEffectData(ae.Runtime().Data(), data) {
			ae.Unapply(false)
			m.prune()
			return
		}
	}
}

// Update advances every registered ActiveEffect by dt, then sweeps out any
// that reached stackCount == 0. It iterates over a
// snapshot of the effects list so a component callback that calls back
// into Remove/Apply mid-Update does not corrupt iteration.
func (m *Manager) Update(dt float64) {
	snapshot := make([]*active.ActiveEffect, len(m.actives))
	copy(snapshot, m.actives)

	for _, ae := range snapshot {
		if ae.Removed() {
			continue
		}
		ae.Update(float32(dt))
	}

	m.prune()
}

// prune drops every ActiveEffect that has reached Removed(), in place.
func (m *Manager) prune() {
	kept := m.actives[:0]
	for _, ae := range m.actives {
		if !ae.Removed() {
			kept = append(kept, ae)
		}
	}
	m.actives = kept
}

// EffectInfo is one entry of GetEffectInfo's result.
type EffectInfo struct {
	Owner      core.Entity
	Level      int32
	StackCount int32
}

// GetEffectInfo returns {owner, level, stackCount} for every live active
// effect backed by data.
func (m *Manager) GetEffectInfo(data *geffect.EffectData) []EffectInfo {
	var out []EffectInfo
	for _, ae := range m.actives {
		if ae.Removed() || !sameEffectData(ae.Runtime().Data(), data) {
			continue
		}
		out = append(out, EffectInfo{
			Owner:      ae.Runtime().Ownership().Owner,
			Level:      ae.Runtime().Level(),
			StackCount: ae.StackCount(),
		})
	}
	return out
}

// ActiveSummary is one entry of Snapshot's result: a host-debug/UI view of
// a live active effect.
type ActiveSummary struct {
	Handle            *Handle
	Ref               *core.Ref
	EffectName        string
	Level             int32
	StackCount        int32
	RemainingDuration float32
	Inhibited         bool
}

// Snapshot returns a summary of every live active effect on this Manager's
// target, for host-side UI/debug overlays.
func (m *Manager) Snapshot() []ActiveSummary {
	out := make([]ActiveSummary, 0, len(m.actives))
	for _, ae := range m.actives {
		if ae.Removed() {
			continue
		}
		out = append(out, ActiveSummary{
			Handle:            &Handle{ae: ae},
			Ref:               ae.Runtime().Data().Ref,
			EffectName:        ae.Runtime().Data().Name,
			Level:             ae.Runtime().Level(),
			StackCount:        ae.StackCount(),
			RemainingDuration: ae.RemainingDuration(),
			Inhibited:         ae.IsInhibited(),
		})
	}
	return out
}

// reevaluateTagRequirements re-checks every active TargetTagRequirements-
// EffectComponent's Removal/Ongoing requirements against m.tags, called
// whenever the target's tags change. This lives on
// Manager rather than on the component itself because EffectData.Components
// are shared by value across every ActiveEffect built from the same
// EffectData — a subscription token held by the component
// would be clobbered by a second concurrent application of the same
// effect to a different target.
func (m *Manager) reevaluateTagRequirements() {
	if m.tags == nil {
		return
	}
	snapshot := make([]*active.ActiveEffect, len(m.actives))
	copy(snapshot, m.actives)

	for _, ae := range snapshot {
		if ae.Removed() {
			continue
		}
		for _, c := range ae.Runtime().Data().Components {
			tc, ok := c.(*TargetTagRequirementsEffectComponent)
			if !ok {
				continue
			}
			if tc.Removal != nil && tc.Removal.RequirementsMet(m.tags) {
				ae.Unapply(true)
				break
			}
			if tc.Ongoing != nil {
				ae.SetInhibited(!tc.Ongoing.RequirementsMet(m.tags))
			}
		}
	}
	m.prune()
}

func sameEffectData(a, b *geffect.EffectData) bool {
	return a == b || a.Equal(b)
}
