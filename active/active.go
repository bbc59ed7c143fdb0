// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package active

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/cue"
	"github.com/gamesmiths-guild/forge/geffect"
	"github.com/gamesmiths-guild/forge/magnitude"
)

// periodicEpsilon absorbs floating-point drift in the periodic tick loop.
const periodicEpsilon = 1e-4

// Config constructs an ActiveEffect: the RuntimeEffect being applied, the
// target (and, for AttributeBased captures with Source=CaptureSource, the
// source) attribute maps, and the shared Evaluator/cue.Manager collaborators.
type Config struct {
	Runtime     *geffect.RuntimeEffect
	Target      core.Entity
	TargetAttrs *attribute.Map
	SourceAttrs *attribute.Map
	Evaluator   *magnitude.Evaluator
	Cues        *cue.Manager

	// Bus is optional: when supplied, lifecycle telemetry (EffectApplied/
	// Executed/Changed/Removed) is published to it alongside cue dispatch
	// and component callbacks. A nil Bus skips telemetry
	// entirely; cues and components are unaffected either way.
	Bus events.EventBus
}

// ActiveEffect is the per-application runtime: one RuntimeEffect applied to
// one target, tracking duration, periodic ticking, stack count, inhibition,
// and the evaluated snapshot the rest of the state machine reuses across
// ticks. It also serves as its own handle — the query
// and inhibition-control surface hosts drive it through.
type ActiveEffect struct {
	runtime     *geffect.RuntimeEffect
	target      core.Entity
	targetAttrs *attribute.Map
	sourceAttrs *attribute.Map
	evaluator   *magnitude.Evaluator
	cues        *cue.Manager
	bus         events.EventBus

	stackCount        int32
	remainingDuration float32
	nextPeriodicTick  float32
	internalTime      float32
	executionCount    int32
	isInhibited       bool
	removed           bool

	snapshotCache map[magnitude.CacheKey]float32
	subs          subscriptionTracker
	levelUnsub    func()

	evaluated *EvaluatedSnapshot
}

// NewActiveEffect constructs an ActiveEffect from cfg, seeding stackCount
// from StackingData.InitialStack when the effect stacks. It does not apply
// the effect — call Apply once the caller has finished configuring it.
func NewActiveEffect(cfg Config) *ActiveEffect {
	ae := &ActiveEffect{
		runtime:       cfg.Runtime,
		target:        cfg.Target,
		targetAttrs:   cfg.TargetAttrs,
		sourceAttrs:   cfg.SourceAttrs,
		evaluator:     cfg.Evaluator,
		cues:          cfg.Cues,
		bus:           cfg.Bus,
		snapshotCache: make(map[magnitude.CacheKey]float32),
		stackCount:    1,
	}
	if s := cfg.Runtime.Data().Stacking; s != nil {
		ae.stackCount = s.InitialStack.Eval(cfg.Runtime.Level())
	}
	return ae
}

// Get implements magnitude.SnapshotCache.
func (a *ActiveEffect) Get(key magnitude.CacheKey) (float32, bool) {
	v, ok := a.snapshotCache[key]
	return v, ok
}

// Set implements magnitude.SnapshotCache.
func (a *ActiveEffect) Set(key magnitude.CacheKey, value float32) {
	a.snapshotCache[key] = value
}

// Target returns the entity this ActiveEffect is applied to.
func (a *ActiveEffect) Target() core.Entity { return a.target }

// Runtime returns the underlying RuntimeEffect.
func (a *ActiveEffect) Runtime() *geffect.RuntimeEffect { return a.runtime }

// IsInhibited reports whether the effect's modifiers are currently detached
// due to inhibition.
func (a *ActiveEffect) IsInhibited() bool { return a.isInhibited }

// StackCount returns the current stack count.
func (a *ActiveEffect) StackCount() int32 { return a.stackCount }

// RemainingDuration returns the time left before a HasDuration effect
// expires; meaningless for Infinite effects.
func (a *ActiveEffect) RemainingDuration() float32 { return a.remainingDuration }

// NextPeriodicTick returns the running threshold internalTime must reach to
// fire the next periodic execution.
func (a *ActiveEffect) NextPeriodicTick() float32 { return a.nextPeriodicTick }

// ExecutionCount returns how many times this effect's modifiers have
// executed (Instant effects aside, which never become an ActiveEffect).
func (a *ActiveEffect) ExecutionCount() int32 { return a.executionCount }

// Removed reports whether this ActiveEffect has undergone its final
// Unapply and should be dropped by its owning manager.
func (a *ActiveEffect) Removed() bool { return a.removed }

// SetStackCount overwrites the stack count directly; used by the stacking
// merge protocol, which is responsible for clamping
// against StackLimit before calling this.
func (a *ActiveEffect) SetStackCount(n int32) { a.stackCount = n }

// RefreshDuration resets remainingDuration to the currently evaluated
// duration.
func (a *ActiveEffect) RefreshDuration() {
	if a.evaluated != nil {
		a.remainingDuration = a.evaluated.Duration
	}
}

// ResetPeriod resets the periodic clock to fire exactly one evaluated
// period from now.
func (a *ActiveEffect) ResetPeriod() {
	a.internalTime = 0
	if a.evaluated != nil {
		a.nextPeriodicTick = a.evaluated.Period
	}
}

// ExecuteOnApply runs one execution out of band, for
// ExecuteOnSuccessfulApplication. The burst applies the single-stack
// magnitude: stack scaling affects the recurring periodic ticks, not the
// execution fired by the application itself.
func (a *ActiveEffect) ExecuteOnApply() {
	a.executeWith(a.unstackedModifiers())
	a.executionCount++
}

// unstackedModifiers re-evaluates the effect's modifiers at a stack
// multiplier of 1. When magnitudes don't scale with stacks the cached
// evaluation is already unstacked and is returned as-is.
func (a *ActiveEffect) unstackedModifiers() []EvaluatedModifier {
	data := a.runtime.Data()
	if data.Stacking == nil || data.Stacking.MagnitudePolicy != geffect.Sum || a.stackCount == 1 {
		return a.evaluated.Modifiers
	}
	in := magnitude.Input{
		Level:            a.runtime.Level(),
		Source:           a.sourceAttrs,
		Target:           a.targetAttrs,
		CallerMagnitudes: a.runtime.CallerMagnitudes(),
		Cache:            a,
	}
	return EvaluateModifiers(a.evaluator, data.Modifiers, in, 1)
}

// TriggerReEvaluate forces the re-evaluate-and-reapply procedure, for callers (the stacking merge protocol) that changed level or
// ownership without going through a subscription that would trigger it
// automatically.
func (a *ActiveEffect) TriggerReEvaluate() { a.reEvaluate() }

// ReplaceRuntime swaps the underlying RuntimeEffect wholesale — the
// "effectiveEffect := R" step of an owner-override stack merge — carrying over the LevelChanged subscription if one was
// held.
func (a *ActiveEffect) ReplaceRuntime(r *geffect.RuntimeEffect) {
	hadSub := a.levelUnsub != nil
	if hadSub {
		a.levelUnsub()
	}
	a.runtime = r
	if hadSub {
		a.levelUnsub = r.OnLevelChanged(func(int32) { a.reEvaluate() })
	}
}

// Apply performs the first application of the effect.
func (a *ActiveEffect) Apply() { a.apply(false) }

// apply runs the shared Apply/re-apply core. On the initial application
// (reApplication=false) it resets execution bookkeeping, latches
// registration-time inhibition from ActiveEffectAddedComponent, subscribes
// to LevelChanged and non-snapshot capture sources, runs
// ExecuteOnApplication, and fires the Apply cue and EffectApplied
// components. On re-application it only rebuilds the
// snapshot and reattaches non-periodic modifiers — duration, periodic clock, execution
// count, and subscriptions are left untouched, since those are the
// stacking protocol's responsibility, not a generic re-evaluation's.
func (a *ActiveEffect) apply(reApplication bool) map[*attribute.Attribute]int32 {
	data := a.runtime.Data()

	if !reApplication {
		a.executionCount = 0
		a.internalTime = 0
	}

	a.evaluated = a.buildSnapshot()

	if !reApplication {
		a.remainingDuration = a.evaluated.Duration

		inhibited := false
		for _, c := range data.Components {
			if ac, ok := c.(ActiveEffectAddedComponent); ok {
				if !ac.OnActiveEffectAdded(a.target, a.evaluated) {
					inhibited = true
				}
			}
		}
		a.isInhibited = inhibited
	}
	a.evaluated.Inhibited = a.isInhibited

	if !data.SnapshotLevel && a.levelUnsub == nil {
		a.levelUnsub = a.runtime.OnLevelChanged(func(int32) { a.reEvaluate() })
	}

	if !a.isInhibited {
		if data.Periodic != nil {
			if data.Periodic.ExecuteOnApplication && !reApplication {
				a.executeOnce()
				a.executionCount++
			}
			if !reApplication {
				a.nextPeriodicTick = a.evaluated.Period
			}
		} else {
			attachModifiers(a.evaluated.Modifiers)
		}
	}

	if !reApplication {
		for _, m := range a.evaluated.Modifiers {
			if m.BackingAttribute != nil && !m.IsSnapshot {
				backing := m.BackingAttribute
				a.subs.track(backing.Subscribe(func(int32) { a.reEvaluate() }))
			}
		}
	}

	pending := FlushAll(a.evaluated.Modifiers)

	if !reApplication {
		a.fireCues(cue.Apply, pending, false)
		for _, c := range data.Components {
			if pc, ok := c.(PostActiveEffectAddedComponent); ok {
				pc.OnPostActiveEffectAdded(a.target, a.evaluated)
			}
			if ec, ok := c.(EffectAppliedComponent); ok {
				ec.OnEffectApplied(a.target, a.evaluated)
			}
		}
		_ = publish(a.bus, newAppliedEvent(a.target, data.Name, data.Ref, a.evaluated.Level, a.evaluated.StackCount))
	}

	return pending
}

// buildSnapshot evaluates duration, period, and every modifier's magnitude
// at the current level/stack count.
func (a *ActiveEffect) buildSnapshot() *EvaluatedSnapshot {
	data := a.runtime.Data()
	level := a.runtime.Level()

	var duration float32
	if data.Duration.Type == geffect.HasDuration && data.Duration.Duration != nil {
		duration = data.Duration.Duration.Eval(level)
	}

	hasPeriod := data.Periodic != nil
	var period float32
	if hasPeriod {
		period = data.Periodic.Period.Eval(level)
	}

	stackMult := float32(1)
	if data.Stacking != nil && data.Stacking.MagnitudePolicy == geffect.Sum {
		stackMult = float32(a.stackCount)
	}

	in := magnitude.Input{
		Level:            level,
		Source:           a.sourceAttrs,
		Target:           a.targetAttrs,
		CallerMagnitudes: a.runtime.CallerMagnitudes(),
		Cache:            a,
	}

	return &EvaluatedSnapshot{
		Level:      level,
		StackCount: a.stackCount,
		Duration:   duration,
		Period:     period,
		HasPeriod:  hasPeriod,
		Modifiers:  EvaluateModifiers(a.evaluator, data.Modifiers, in, stackMult),
	}
}

// reEvaluate re-derives the snapshot and reattaches modifiers in place,
// firing ActiveEffectChanged and the Update cue only if the observable
// result actually changed.
func (a *ActiveEffect) reEvaluate() {
	if a.removed {
		return
	}
	data := a.runtime.Data()
	old := a.evaluated

	if !a.isInhibited && data.Periodic == nil && old != nil {
		detachModifiers(old.Modifiers)
	}

	pending := a.apply(true)

	if !evaluationsEqual(old, a.evaluated) {
		for _, c := range data.Components {
			if cc, ok := c.(ActiveEffectChangedComponent); ok {
				cc.OnActiveEffectChanged(a.target, a.evaluated)
			}
		}
		a.fireCues(cue.Update, pending, false)
		_ = publish(a.bus, newChangedEvent(a.target, data.Name, data.Ref, a.evaluated.Level, a.evaluated.StackCount, a.isInhibited))
	}
}

// Unapply fully removes the effect: detaches modifiers, tears down every
// subscription, and fires the Remove cue. interrupted
// reports whether the removal was forced (e.g. dispelled) rather than a
// natural expiry.
func (a *ActiveEffect) Unapply(interrupted bool) {
	if a.removed {
		return
	}
	data := a.runtime.Data()

	if !a.isInhibited && data.Periodic == nil && a.evaluated != nil {
		detachModifiers(a.evaluated.Modifiers)
	}

	var pending map[*attribute.Attribute]int32
	if a.evaluated != nil {
		pending = FlushAll(a.evaluated.Modifiers)
	}

	a.subs.unsubscribeAll()
	if a.levelUnsub != nil {
		a.levelUnsub()
		a.levelUnsub = nil
	}
	a.stackCount = 0
	a.removed = true

	for _, c := range data.Components {
		if uc, ok := c.(ActiveEffectUnappliedComponent); ok {
			uc.OnActiveEffectUnapplied(a.target, a.evaluated, true)
		}
	}
	a.fireCues(cue.Remove, pending, interrupted)
	_ = publish(a.bus, newRemovedEvent(a.target, data.Name, data.Ref, interrupted))
}

// Update advances this effect's duration/periodic clock by dt. Instant effects never become an ActiveEffect and should never
// reach Update.
func (a *ActiveEffect) Update(dt float32) {
	if a.removed {
		return
	}
	data := a.runtime.Data()
	switch data.Duration.Type {
	case geffect.HasDuration:
		a.remainingDuration -= dt
		if a.remainingDuration <= 0 {
			catchUp := dt + a.remainingDuration
			if !a.isInhibited {
				a.runPeriodicTick(catchUp)
			}
			a.applyExpiration()
		} else if !a.isInhibited {
			a.runPeriodicTick(dt)
		}
	case geffect.Infinite:
		if !a.isInhibited {
			a.runPeriodicTick(dt)
		}
	}
}

// runPeriodicTick accumulates dt and executes once per evaluated period
// elapsed, absorbing drift with periodicEpsilon.
func (a *ActiveEffect) runPeriodicTick(dt float32) {
	if a.evaluated == nil || !a.evaluated.HasPeriod || a.evaluated.Period <= 0 {
		return
	}
	a.internalTime += dt
	for a.internalTime >= a.nextPeriodicTick-periodicEpsilon {
		a.executeOnce()
		a.executionCount++
		a.nextPeriodicTick += a.evaluated.Period
	}
}

// executeOnce runs one execution with the cached (stack-scaled) modifier
// evaluation; callers are responsible for bumping executionCount.
func (a *ActiveEffect) executeOnce() {
	a.executeWith(a.evaluated.Modifiers)
}

// executeWith mutates target attributes directly, runs CustomExecutions,
// notifies EffectExecutedComponent, and fires the Execute cue.
func (a *ActiveEffect) executeWith(mods []EvaluatedModifier) {
	ExecuteModifiers(mods)

	data := a.runtime.Data()
	ctx := geffect.ExecutionContext{
		Level:      a.evaluated.Level,
		StackCount: a.evaluated.StackCount,
		Source:     a.sourceAttrs,
		Target:     a.targetAttrs,
	}
	for _, ce := range data.CustomExecutions {
		ce.Execute(ctx)
	}
	for _, c := range data.Components {
		if ec, ok := c.(EffectExecutedComponent); ok {
			ec.OnEffectExecuted(a.target, a.evaluated)
		}
	}

	pending := FlushAll(mods)
	a.fireCues(cue.Execute, pending, false)
	_ = publish(a.bus, newExecutedEvent(a.target, data.Name, data.Ref, a.evaluated.Level, a.evaluated.StackCount, a.executionCount+1))
}

// applyExpiration runs the HasDuration expiration policy once
// remainingDuration has crossed zero.
func (a *ActiveEffect) applyExpiration() {
	data := a.runtime.Data()
	policy := geffect.ClearEntireStack
	if data.Stacking != nil {
		policy = data.Stacking.ExpirationPolicy
	}

	switch policy {
	case geffect.ClearEntireStack:
		a.Unapply(false)

	case geffect.RemoveSingleStackAndRefreshDuration:
		for {
			a.stackCount--
			if a.stackCount <= 0 {
				a.Unapply(false)
				return
			}
			a.reEvaluate()
			// Every single-stack drop notifies, even mid-cascade when one
			// coarse tick drains several stacks before the refreshed
			// duration outruns it.
			for _, c := range data.Components {
				if uc, ok := c.(ActiveEffectUnappliedComponent); ok {
					uc.OnActiveEffectUnapplied(a.target, a.evaluated, false)
				}
			}

			catchUp := -a.remainingDuration
			if catchUp < 0 {
				catchUp = 0
			}
			if catchUp > a.evaluated.Duration {
				catchUp = a.evaluated.Duration
			}
			if catchUp > 0 && !a.isInhibited {
				a.runPeriodicTick(catchUp)
			}
			a.remainingDuration += a.evaluated.Duration
			if a.remainingDuration > periodicEpsilon {
				break
			}
		}
	}
}

// SetInhibited toggles inhibition, attaching/detaching non-periodic
// modifiers and applying InhibitionRemovedPolicy when a periodic effect's
// inhibition clears.
func (a *ActiveEffect) SetInhibited(v bool) {
	if v == a.isInhibited || a.evaluated == nil {
		a.isInhibited = v
		return
	}
	data := a.runtime.Data()
	a.isInhibited = v

	if data.Periodic != nil {
		if !v {
			switch data.Periodic.InhibitionRemovedPolicy {
			case geffect.ResetPeriod:
				a.internalTime = 0
				a.nextPeriodicTick = a.evaluated.Period
			case geffect.ExecuteAndResetPeriod:
				a.internalTime = 0
				a.nextPeriodicTick = a.evaluated.Period
				a.ExecuteOnApply()
			case geffect.NeverReset:
				// Resume accumulation exactly where it left off.
			}
		}
	} else {
		if v {
			detachModifiers(a.evaluated.Modifiers)
		} else {
			attachModifiers(a.evaluated.Modifiers)
		}
		FlushAll(a.evaluated.Modifiers)
	}

	a.evaluated.Inhibited = v
	for _, c := range data.Components {
		if cc, ok := c.(ActiveEffectChangedComponent); ok {
			cc.OnActiveEffectChanged(a.target, a.evaluated)
		}
	}
	_ = publish(a.bus, newChangedEvent(a.target, data.Name, data.Ref, a.evaluated.Level, a.evaluated.StackCount, v))
}

// fireCues dispatches every configured cue for lifecycle, delegating to
// the shared DispatchCues helper package manager's Instant path also uses.
func (a *ActiveEffect) fireCues(lc cue.Lifecycle, pending map[*attribute.Attribute]int32, interrupted bool) {
	DispatchCues(a.cues, a.runtime.Data(), lc, a.target, a.ownerEntity(), CueContext{
		Level:       a.evaluated.Level,
		StackCount:  a.evaluated.StackCount,
		TargetAttrs: a.targetAttrs,
	}, pending, interrupted)
}

func (a *ActiveEffect) ownerEntity() core.Entity {
	return a.runtime.Ownership().CueSource()
}

// evaluationsEqual reports whether two snapshots describe the same
// observable outcome, used to suppress redundant Update cues.
func evaluationsEqual(old, newer *EvaluatedSnapshot) bool {
	if old == nil || newer == nil {
		return old == newer
	}
	if old.Level != newer.Level || old.StackCount != newer.StackCount ||
		old.Duration != newer.Duration || old.Period != newer.Period {
		return false
	}
	if len(old.Modifiers) != len(newer.Modifiers) {
		return false
	}
	for i := range old.Modifiers {
		if old.Modifiers[i].Magnitude != newer.Modifiers[i].Magnitude {
			return false
		}
	}
	return true
}
