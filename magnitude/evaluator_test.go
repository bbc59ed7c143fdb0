// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package magnitude_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamesmiths-guild/forge/attribute"
	"github.com/gamesmiths-guild/forge/magnitude"
)

func TestCurveEval(t *testing.T) {
	tests := []struct {
		name  string
		curve magnitude.Curve
		level int32
		want  float32
	}{
		{"empty curve is identity", magnitude.Curve{}, 5, 1.0},
		{"below first point clamps", magnitude.NewCurve(magnitude.Point{Level: 5, Multiplier: 2}), 1, 2},
		{"above last point clamps", magnitude.NewCurve(magnitude.Point{Level: 1, Multiplier: 1}, magnitude.Point{Level: 10, Multiplier: 3}), 99, 3},
		{
			"interpolates linearly",
			magnitude.NewCurve(magnitude.Point{Level: 0, Multiplier: 1}, magnitude.Point{Level: 10, Multiplier: 2}),
			5, 1.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.curve.Eval(tt.level), 0.001)
		})
	}
}

func TestScalableFloatEval(t *testing.T) {
	sf := magnitude.ScalableFloat{Base: 10, Curve: magnitude.NewCurve(
		magnitude.Point{Level: 1, Multiplier: 1},
		magnitude.Point{Level: 2, Multiplier: 2},
	)}
	assert.InDelta(t, float32(20), sf.Eval(2), 0.001)
}

func newTargetMap(health int32) *attribute.Map {
	set := attribute.NewSet("Vitals")
	set.Add("Health", attribute.Config{Base: health, Min: 0, Max: 100})
	m := attribute.NewMap()
	m.AddSet(set)
	return m
}

func TestEvaluateScalableFloat(t *testing.T) {
	e := magnitude.NewEvaluator()
	spec := magnitude.ScalableFloat{Base: -25}
	got := e.Evaluate(spec, magnitude.Input{Level: 1})
	assert.InDelta(t, float32(-25), got, 0.001)
}

func TestEvaluateAttributeBasedCurrentValue(t *testing.T) {
	e := magnitude.NewEvaluator()
	target := newTargetMap(40)
	spec := magnitude.AttributeBased{
		Capture:     magnitude.AttributeCaptureDef{AttributeKey: "Vitals.Health", Source: magnitude.CaptureTarget},
		Calc:        magnitude.CurrentValue,
		Coefficient: magnitude.ScalableFloat{Base: 1},
	}
	got := e.Evaluate(spec, magnitude.Input{Level: 1, Target: target})
	assert.InDelta(t, float32(40), got, 0.001)
}

func TestEvaluateAttributeBasedMissingAttributeYieldsZero(t *testing.T) {
	e := magnitude.NewEvaluator()
	target := newTargetMap(40)
	spec := magnitude.AttributeBased{
		Capture:     magnitude.AttributeCaptureDef{AttributeKey: "Vitals.Mana", Source: magnitude.CaptureTarget},
		Calc:        magnitude.CurrentValue,
		Coefficient: magnitude.ScalableFloat{Base: 1},
	}
	got := e.Evaluate(spec, magnitude.Input{Level: 1, Target: target})
	assert.Equal(t, float32(0), got)
}

type fakeCache struct {
	data map[magnitude.CacheKey]float32
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[magnitude.CacheKey]float32)} }

func (c *fakeCache) Get(k magnitude.CacheKey) (float32, bool) { v, ok := c.data[k]; return v, ok }
func (c *fakeCache) Set(k magnitude.CacheKey, v float32)      { c.data[k] = v }

func TestSnapshotCaptureIsMemoized(t *testing.T) {
	e := magnitude.NewEvaluator()
	target := newTargetMap(50)
	cache := newFakeCache()
	spec := magnitude.AttributeBased{
		Capture:     magnitude.AttributeCaptureDef{AttributeKey: "Vitals.Health", Source: magnitude.CaptureTarget, Snapshot: true},
		Calc:        magnitude.CurrentValue,
		Coefficient: magnitude.ScalableFloat{Base: 1},
	}
	in := magnitude.Input{Level: 1, Target: target, Cache: cache}

	first := e.Evaluate(spec, in)
	assert.InDelta(t, float32(50), first, 0.001)

	health, err := target.Resolve("Vitals.Health")
	assert.NoError(t, err)
	health.ExecuteFlat(-50) // mutate underlying attribute after snapshot taken

	second := e.Evaluate(spec, in)
	assert.Equal(t, first, second, "snapshot capture must not observe post-capture mutation")
}

func TestSetByCallerMissingTagYieldsZero(t *testing.T) {
	e := magnitude.NewEvaluator()
	got := e.Evaluate(magnitude.SetByCaller{Tag: "SpellPower"}, magnitude.Input{})
	assert.Equal(t, float32(0), got)
}

func TestSetByCallerResolvesFromMap(t *testing.T) {
	e := magnitude.NewEvaluator()
	got := e.Evaluate(magnitude.SetByCaller{Tag: "SpellPower"}, magnitude.Input{
		CallerMagnitudes: map[string]float32{"SpellPower": 12},
	})
	assert.Equal(t, float32(12), got)
}

type doubleCalculator struct{}

func (doubleCalculator) CalculateBaseMagnitude(ctx magnitude.EvalContext) float32 {
	v, _ := ctx.CallerMagnitude("X")
	return v * 2
}

func TestCustomCalculatedAppliesAffineForm(t *testing.T) {
	e := magnitude.NewEvaluator()
	spec := magnitude.CustomCalculated{
		Calculator:  doubleCalculator{},
		Coefficient: magnitude.ScalableFloat{Base: 1},
		PostAdd:     magnitude.ScalableFloat{Base: 3},
	}
	got := e.Evaluate(spec, magnitude.Input{CallerMagnitudes: map[string]float32{"X": 5}})
	assert.InDelta(t, float32(13), got, 0.001) // (5*2) + 3
}

// TestCustomCalculatedLookupCurveReplacesResult confirms the affine result
// is remapped through LookupCurve, not scaled by it ("pass
// the result through it", distinct from ScalableFloat's own
// base*curve.eval(level) scaling).
func TestCustomCalculatedLookupCurveReplacesResult(t *testing.T) {
	e := magnitude.NewEvaluator()
	lookup := magnitude.NewCurve(magnitude.Point{Level: 0, Multiplier: 100}, magnitude.Point{Level: 100, Multiplier: 100})
	spec := magnitude.CustomCalculated{
		Calculator:  doubleCalculator{},
		Coefficient: magnitude.ScalableFloat{Base: 1},
		PostAdd:     magnitude.ScalableFloat{Base: 3},
		LookupCurve: &lookup,
	}
	got := e.Evaluate(spec, magnitude.Input{CallerMagnitudes: map[string]float32{"X": 5}})
	// affine result is (5*2)+3 = 13; a multiplicative bug would yield
	// 13*100 = 1300, but LookupCurve(13) replaces the result outright with
	// its own flat 100, proving replacement rather than scaling.
	assert.InDelta(t, float32(100), got, 0.001)
}
