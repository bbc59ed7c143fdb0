// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import "github.com/gamesmiths-guild/forge/magnitude"

// Modifier is one (attribute, operation, magnitude, channel) tuple within
// an effect.
type Modifier struct {
	Attribute string
	Operation Operation
	Magnitude magnitude.Spec
	Channel   int
}

// isNonSnapshotAttributeBased reports whether this modifier's magnitude is
// an AttributeBased spec whose capture is live (non-snapshot) — such
// modifiers are forbidden on Instant effects because
// there is nothing left to subscribe to after an instantaneous mutation.
func (m Modifier) isNonSnapshotAttributeBased() bool {
	ab, ok := m.Magnitude.(magnitude.AttributeBased)
	return ok && !ab.Capture.Snapshot
}
