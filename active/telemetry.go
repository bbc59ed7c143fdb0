// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package active

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event refs for the telemetry events an ActiveEffect publishes to an
// optionally-injected events.EventBus. A host that wants observability
// subscribes to these refs on its own Bus instead of Forge importing a
// logging package directly.
var (
	EffectAppliedEventRef  = mustParseRef("forge:effect:applied")
	EffectExecutedEventRef = mustParseRef("forge:effect:executed")
	EffectChangedEventRef  = mustParseRef("forge:effect:changed")
	EffectRemovedEventRef  = mustParseRef("forge:effect:removed")
)

func mustParseRef(s string) *core.Ref {
	ref, err := core.ParseString(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// EffectAppliedEvent is published the first time an ActiveEffect is
// registered against a target.
type EffectAppliedEvent struct {
	events.BaseEvent
	Target     core.Entity
	EffectName string
	EffectRef  *core.Ref
	Level      int32
	StackCount int32
}

// EffectExecutedEvent is published on every Instant application and every
// periodic tick.
type EffectExecutedEvent struct {
	events.BaseEvent
	Target         core.Entity
	EffectName     string
	EffectRef      *core.Ref
	Level          int32
	StackCount     int32
	ExecutionCount int32
}

// EffectChangedEvent is published when a re-evaluation actually altered the
// observable snapshot (level, stacks, or a captured magnitude) or when
// inhibition flips.
type EffectChangedEvent struct {
	events.BaseEvent
	Target     core.Entity
	EffectName string
	EffectRef  *core.Ref
	Level      int32
	StackCount int32
	Inhibited  bool
}

// EffectRemovedEvent is published on final removal, not on
// a partial stack decrement.
type EffectRemovedEvent struct {
	events.BaseEvent
	Target      core.Entity
	EffectName  string
	EffectRef   *core.Ref
	Interrupted bool
}

func newAppliedEvent(target core.Entity, name string, ref *core.Ref, level, stack int32) *EffectAppliedEvent {
	return &EffectAppliedEvent{
		BaseEvent:  *events.NewBaseEvent(EffectAppliedEventRef),
		Target:     target,
		EffectName: name,
		EffectRef:  ref,
		Level:      level,
		StackCount: stack,
	}
}

func newExecutedEvent(target core.Entity, name string, ref *core.Ref, level, stack, count int32) *EffectExecutedEvent {
	return &EffectExecutedEvent{
		BaseEvent:      *events.NewBaseEvent(EffectExecutedEventRef),
		Target:         target,
		EffectName:     name,
		EffectRef:      ref,
		Level:          level,
		StackCount:     stack,
		ExecutionCount: count,
	}
}

func newChangedEvent(target core.Entity, name string, ref *core.Ref, level, stack int32, inhibited bool) *EffectChangedEvent {
	return &EffectChangedEvent{
		BaseEvent:  *events.NewBaseEvent(EffectChangedEventRef),
		Target:     target,
		EffectName: name,
		EffectRef:  ref,
		Level:      level,
		StackCount: stack,
		Inhibited:  inhibited,
	}
}

func newRemovedEvent(target core.Entity, name string, ref *core.Ref, interrupted bool) *EffectRemovedEvent {
	return &EffectRemovedEvent{
		BaseEvent:   *events.NewBaseEvent(EffectRemovedEventRef),
		Target:      target,
		EffectName:  name,
		EffectRef:   ref,
		Interrupted: interrupted,
	}
}

// NewInstantExecutedEvent builds the EffectExecuted telemetry event for an
// Instant application, which never constructs an
// ActiveEffect and so has no internal executionCount to report; stackCount
// is always 1 for an Instant effect.
func NewInstantExecutedEvent(target core.Entity, name string, ref *core.Ref, level int32) *EffectExecutedEvent {
	return newExecutedEvent(target, name, ref, level, 1, 1)
}

// publish sends ev to bus if bus is non-nil. Publish errors (cascade-depth
// guard tripping) are reported back to the caller rather than swallowed,
// since a cascading event storm is exactly the kind of thing a host wants
// to know about; callers that don't care can ignore the return.
func publish(bus events.EventBus, ev events.Event) error {
	if bus == nil {
		return nil
	}
	return bus.Publish(ev)
}
