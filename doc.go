// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package forge provides an effects engine: attribute modification,
// time-limited and stacking effects, periodic ticking, and host
// notification through cues and components.
//
// Purpose:
// Forge gives a game host a single coordinator per entity (package
// manager) for applying, stacking, ticking, and removing effects against
// that entity's attributes, without owning anything about what an
// attribute, a tag, or an ability means to the host.
//
// Scope:
//   - Bounded integer attributes with a layered modifier stack (package
//     attribute)
//   - Magnitude specs that scale with level and capture source/target
//     attributes (package magnitude)
//   - Immutable effect configuration with construction-time validation
//     (package geffect)
//   - The active-effect state machine: duration, periodic ticks,
//     inhibition, re-evaluation (package active)
//   - Host notification through tagged cues (package cue)
//   - The per-entity admission/stacking/tick coordinator and its shipped
//     components (package manager)
//
// Non-Goals:
//   - A tag registry or hierarchy: hosts supply their own through the
//     tagfx interfaces
//   - Persistence, replication, or scripting: out of scope for the engine
//   - Multi-threaded entity updates: one Manager owns one entity's effects
//
// Integration:
// This module integrates with:
//   - rpg-toolkit/core: entity identity and the Ref interning key
//   - rpg-toolkit/dice: the RNG ChanceToApplyEffectComponent injects
//   - rpg-toolkit/rpgerr: configuration-error reporting
//   - rpg-toolkit/events: optional lifecycle telemetry published by
//     package active and package manager's Instant path
package forge
