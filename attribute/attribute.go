// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package attribute implements the bounded integer values the effects
// engine modifies: Base/Current/Min/Max plus a per-channel modifier stack,
// with batched change notification.
package attribute

import "fmt"

// Channel is an ordered calculation lane within an attribute. Channels are
// evaluated in ascending index order; each one applies an override (which
// shadows everything computed so far in that channel) or a flat-then-percent
// step.
type Channel struct {
	override        *int32
	hasOverride     bool
	flatModifier    float32
	percentModifier float32 // identity is 1.0

	// overrides is the insertion-ordered override record stack for this
	// channel. The most recent entry is authoritative; when
	// it is cleared the previous one takes over.
	overrides []int32
}

func newChannel() Channel {
	return Channel{percentModifier: 1.0}
}

// Attribute is a bounded integer property of an entity: Base clamped to
// [Min, Max], a channel stack that derives Current from Base, and the
// derived values the engine reads back (Modifier, Overflow, ValidModifier).
type Attribute struct {
	key string

	base int32
	min  int32
	max  int32

	channels []Channel

	current      int32
	modifier     int32
	overflow     int32
	pendingDelta int32

	subs *subscribers
}

// Config describes the construction parameters for a new Attribute.
type Config struct {
	Key      string
	Base     int32
	Min      int32
	Max      int32
	Channels int // number of evaluation channels, minimum 1
}

// New constructs an Attribute. It panics if Min > Base, Base > Max, or
// Min > Max — these are construction-time invariants whose violation is a
// programmer error, not a recoverable
// configuration errors.
func New(cfg Config) *Attribute {
	if cfg.Min > cfg.Max {
		panic(fmt.Sprintf("attribute %q: min %d > max %d", cfg.Key, cfg.Min, cfg.Max))
	}
	if cfg.Base < cfg.Min || cfg.Base > cfg.Max {
		panic(fmt.Sprintf("attribute %q: base %d outside [%d, %d]", cfg.Key, cfg.Base, cfg.Min, cfg.Max))
	}
	n := cfg.Channels
	if n < 1 {
		n = 1
	}

	a := &Attribute{
		key:      cfg.Key,
		base:     cfg.Base,
		min:      cfg.Min,
		max:      cfg.Max,
		channels: make([]Channel, n),
		subs:     newSubscribers(),
	}
	for i := range a.channels {
		a.channels[i] = newChannel()
	}
	a.recompute()
	return a
}

// Key returns the attribute's fully-qualified "<SetName>.<FieldName>" key.
func (a *Attribute) Key() string { return a.key }

// Base returns the permanent, unmodified value.
func (a *Attribute) Base() int32 { return a.base }

// Min returns the current floor.
func (a *Attribute) Min() int32 { return a.min }

// Max returns the current ceiling.
func (a *Attribute) Max() int32 { return a.max }

// Current returns the fully evaluated, clamped value.
func (a *Attribute) Current() int32 { return a.current }

// Modifier returns Current - Base computed before clamping.
func (a *Attribute) Modifier() int32 { return a.modifier }

// Overflow returns the signed amount by which the unclamped evaluation
// exceeded Max (positive) or fell below Min (negative), or 0 if within
// bounds. Overflow is signed so its sign always indicates direction:
// floor(v)-Max above the ceiling, floor(v)-Min below the floor.
func (a *Attribute) Overflow() int32 { return a.overflow }

// ValidModifier returns Modifier - Overflow.
func (a *Attribute) ValidModifier() int32 { return a.modifier - a.overflow }

// PendingValueChange returns the delta accumulated since the last Flush.
func (a *Attribute) PendingValueChange() int32 { return a.pendingDelta }

// ChannelCount returns the number of evaluation channels.
func (a *Attribute) ChannelCount() int { return len(a.channels) }

// SetMin changes the floor. Precondition: v <= Max. Re-clamps Base and
// recomputes derived values. Panics on precondition violation.
func (a *Attribute) SetMin(v int32) {
	if v > a.max {
		panic(fmt.Sprintf("attribute %q: SetMin(%d) > max %d", a.key, v, a.max))
	}
	a.min = v
	if a.base < a.min {
		a.base = a.min
	}
	a.recompute()
}

// SetMax changes the ceiling. Precondition: v >= Min.
func (a *Attribute) SetMax(v int32) {
	if v < a.min {
		panic(fmt.Sprintf("attribute %q: SetMax(%d) < min %d", a.key, v, a.min))
	}
	a.max = v
	if a.base > a.max {
		a.base = a.max
	}
	a.recompute()
}

// ExecuteFlat permanently adds v to Base, clamped to [Min, Max].
func (a *Attribute) ExecuteFlat(v int32) {
	a.setBase(a.base + v)
}

// ExecutePercent permanently scales Base by (1+p), clamped.
func (a *Attribute) ExecutePercent(p float32) {
	a.setBase(int32(floor32(float32(a.base) * (1 + p))))
}

// ExecuteOverride permanently sets Base to v, clamped.
func (a *Attribute) ExecuteOverride(v int32) {
	a.setBase(v)
}

func (a *Attribute) setBase(v int32) {
	a.base = clamp32(v, a.min, a.max)
	a.recompute()
}

// AddFlatModifier adds a flat modifier to a channel.
func (a *Attribute) AddFlatModifier(v float32, ch int) {
	a.channels[ch].flatModifier += v
	a.recompute()
}

// RemoveFlatModifier subtracts a previously added flat modifier from a
// channel — the exact inverse of AddFlatModifier, required for the
// reversibility invariant.
func (a *Attribute) RemoveFlatModifier(v float32, ch int) {
	a.channels[ch].flatModifier -= v
	a.recompute()
}

// AddPercentModifier adds a percent modifier to a channel.
func (a *Attribute) AddPercentModifier(p float32, ch int) {
	a.channels[ch].percentModifier += p
	a.recompute()
}

// RemovePercentModifier subtracts a previously added percent modifier.
func (a *Attribute) RemovePercentModifier(p float32, ch int) {
	a.channels[ch].percentModifier -= p
	a.recompute()
}

// OverrideRecord identifies one entry in a channel's override stack.
type OverrideRecord struct {
	Magnitude int32
	Channel   int
}

// AddOverride pushes an override record onto the channel's stack. The most
// recently pushed override is authoritative for that channel until removed.
func (a *Attribute) AddOverride(rec OverrideRecord) {
	c := &a.channels[rec.Channel]
	c.overrides = append(c.overrides, rec.Magnitude)
	a.syncOverride(rec.Channel)
	a.recompute()
}

// ClearOverride removes the most recent matching override record from the
// channel's stack, restoring whatever was pushed before it (or clearing the
// slot if none remain).
func (a *Attribute) ClearOverride(rec OverrideRecord) {
	c := &a.channels[rec.Channel]
	for i := len(c.overrides) - 1; i >= 0; i-- {
		if c.overrides[i] == rec.Magnitude {
			c.overrides = append(c.overrides[:i], c.overrides[i+1:]...)
			break
		}
	}
	a.syncOverride(rec.Channel)
	a.recompute()
}

func (a *Attribute) syncOverride(ch int) {
	c := &a.channels[ch]
	if len(c.overrides) == 0 {
		c.hasOverride = false
		c.override = nil
		return
	}
	top := c.overrides[len(c.overrides)-1]
	c.hasOverride = true
	c.override = &top
}

// CalculateMagnitudeUpToChannel performs a read-only partial evaluation of
// the channel chain through channel k inclusive, without touching Current
// or any derived/stored state. Used by MagnitudeEvaluatedUpToChannel
// captures.
func (a *Attribute) CalculateMagnitudeUpToChannel(k int) float32 {
	v := float32(a.base)
	for i := 0; i <= k && i < len(a.channels); i++ {
		v = evalChannel(a.channels[i], v)
	}
	return v
}

// recompute runs the channel evaluation algebra and
// accumulates the resulting delta into PendingValueChange. It does not
// fire ValueChanged — that only happens on Flush, so a single effect
// operation that touches many channels emits exactly one notification.
func (a *Attribute) recompute() {
	v := float32(a.base)
	for i := range a.channels {
		v = evalChannel(a.channels[i], v)
	}

	floored := floor32(v)
	newCurrent := clamp32(floored, a.min, a.max)

	var overflow int32
	switch {
	case floored > a.max:
		overflow = floored - a.max
	case floored < a.min:
		overflow = floored - a.min
	}

	delta := newCurrent - a.current
	a.current = newCurrent
	a.modifier = floored - a.base
	a.overflow = overflow
	a.pendingDelta += delta
}

func evalChannel(c Channel, v float32) float32 {
	if c.hasOverride {
		return float32(*c.override)
	}
	return (v + c.flatModifier) * c.percentModifier
}

// Flush invokes ValueChanged once with the accumulated delta (if non-zero)
// and resets PendingValueChange to 0. The Effects Manager calls this after
// every top-level mutating operation.
func (a *Attribute) Flush() {
	delta := a.pendingDelta
	a.pendingDelta = 0
	if delta != 0 {
		a.subs.notify(delta)
	}
}

// Subscribe registers handler to be called on each Flush that produced a
// non-zero delta. It returns an unsubscribe function — the token-based
// back-edge the engine's re-evaluation wiring relies on.
func (a *Attribute) Subscribe(handler func(delta int32)) (unsubscribe func()) {
	return a.subs.add(handler)
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floor32(v float32) int32 {
	i := int32(v)
	if v < float32(i) {
		i--
	}
	return i
}
