// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package magnitude implements the MagnitudeSpec tagged-variant hierarchy
// and the evaluator that reduces a spec plus a level and a pair of
// attribute maps to a scalar float32.
package magnitude

import "sort"

// Point is a single (level, multiplier) sample in a Curve.
type Point struct {
	Level      int32
	Multiplier float32
}

// Curve maps an effect level to a multiplier via linear interpolation
// between the two nearest Points, holding flat before the first point and
// after the last. A Curve with no points evaluates to 1.0 (identity) at
// every level, so a ScalableFloat with a zero-value Curve behaves as a
// flat, non-scaling constant.
type Curve struct {
	points []Point
}

// NewCurve builds a Curve from unordered points, sorting them by level.
func NewCurve(points ...Point) Curve {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	return Curve{points: sorted}
}

// Eval returns the interpolated multiplier at level.
func (c Curve) Eval(level int32) float32 {
	if len(c.points) == 0 {
		return 1.0
	}
	if level <= c.points[0].Level {
		return c.points[0].Multiplier
	}
	last := c.points[len(c.points)-1]
	if level >= last.Level {
		return last.Multiplier
	}

	for i := 1; i < len(c.points); i++ {
		hi := c.points[i]
		if level > hi.Level {
			continue
		}
		lo := c.points[i-1]
		span := float32(hi.Level - lo.Level)
		t := float32(level-lo.Level) / span
		return lo.Multiplier + t*(hi.Multiplier-lo.Multiplier)
	}
	return last.Multiplier
}

// ScalableFloat is a float32 base value scaled by a level Curve
// so its value at a given level is Base * Curve.Eval(level).
type ScalableFloat struct {
	Base  float32
	Curve Curve
}

// Eval returns Base * Curve.Eval(level).
func (s ScalableFloat) Eval(level int32) float32 {
	return s.Base * s.Curve.Eval(level)
}

// ScalableInt is the integer counterpart used for stack limits and initial
// stack counts.
type ScalableInt struct {
	Base  int32
	Curve Curve
}

// Eval returns round(Base * Curve.Eval(level)).
func (s ScalableInt) Eval(level int32) int32 {
	v := float32(s.Base) * s.Curve.Eval(level)
	if v < 0 {
		return int32(v - 0.5)
	}
	return int32(v + 0.5)
}
