// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package magnitude

import "github.com/gamesmiths-guild/forge/attribute"

// EvalContext is the read-only view a CustomCalculator gets of the
// evaluation in progress: the effect's level, its caller-set magnitudes,
// and the source/target attribute maps.
type EvalContext interface {
	Level() int32
	CallerMagnitude(tag string) (float32, bool)
	Source() *attribute.Map
	Target() *attribute.Map
}

// Input bundles everything an Evaluate call needs beyond the Spec itself.
type Input struct {
	Level            int32
	Source           *attribute.Map
	Target           *attribute.Map
	CallerMagnitudes map[string]float32
	Cache            SnapshotCache
}

type evalContext struct{ in Input }

func (c evalContext) Level() int32 { return c.in.Level }
func (c evalContext) CallerMagnitude(tag string) (float32, bool) {
	v, ok := c.in.CallerMagnitudes[tag]
	return v, ok
}
func (c evalContext) Source() *attribute.Map { return c.in.Source }
func (c evalContext) Target() *attribute.Map { return c.in.Target }

// Evaluator reduces a MagnitudeSpec to a scalar. It holds
// no state of its own — all caching lives in the caller-supplied
// SnapshotCache — so a single Evaluator is safely reused across effects.
type Evaluator struct{}

// NewEvaluator constructs an Evaluator. It has no configuration today; the
// constructor exists so call sites don't depend on the zero value staying
// usable if state is added later.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Evaluate computes the scalar described by spec. Stack-count
// multiplication is the caller's
// responsibility — it depends on StackingData.MagnitudePolicy, which
// belongs to the effect configuration, not the magnitude spec.
func (e *Evaluator) Evaluate(spec Spec, in Input) float32 {
	switch v := spec.(type) {
	case ScalableFloat:
		return v.Eval(in.Level)
	case AttributeBased:
		return e.evalAttributeBased(v, in)
	case CustomCalculated:
		return e.evalCustomCalculated(v, in)
	case SetByCaller:
		return in.CallerMagnitudes[v.Tag]
	default:
		return 0
	}
}

func (e *Evaluator) evalAttributeBased(v AttributeBased, in Input) float32 {
	captured := e.capture(v.Capture, v.Calc, v.FinalChannel, in)
	coeff := v.Coefficient.Eval(in.Level)
	preAdd := v.PreAdd.Eval(in.Level)
	postAdd := v.PostAdd.Eval(in.Level)
	return coeff*(preAdd+captured) + postAdd
}

func (e *Evaluator) evalCustomCalculated(v CustomCalculated, in Input) float32 {
	var base float32
	if v.Calculator != nil {
		base = v.Calculator.CalculateBaseMagnitude(evalContext{in})
	}
	coeff := v.Coefficient.Eval(in.Level)
	preAdd := v.PreAdd.Eval(in.Level)
	postAdd := v.PostAdd.Eval(in.Level)
	result := coeff*(preAdd+base) + postAdd
	if v.LookupCurve != nil {
		result = v.LookupCurve.Eval(int32(result))
	}
	return result
}

// capture resolves an AttributeBased spec's captured scalar, honoring the
// Snapshot cache when requested.
func (e *Evaluator) capture(def AttributeCaptureDef, calc CalcType, finalChannel int, in Input) float32 {
	key := CacheKey{AttributeKey: def.AttributeKey, Source: def.Source, Calc: calc, FinalChannel: finalChannel}

	if def.Snapshot && in.Cache != nil {
		if cached, ok := in.Cache.Get(key); ok {
			return cached
		}
	}

	side := in.Target
	if def.Source == CaptureSource {
		side = in.Source
	}

	var value float32
	if side != nil {
		if attr, err := side.Resolve(def.AttributeKey); err == nil {
			value = readCalc(attr, calc, finalChannel)
		}
		// Missing attributes yield 0.
	}

	if def.Snapshot && in.Cache != nil {
		in.Cache.Set(key, value)
	}
	return value
}

func readCalc(attr *attribute.Attribute, calc CalcType, finalChannel int) float32 {
	switch calc {
	case CurrentValue:
		return float32(attr.Current())
	case BaseValue:
		return float32(attr.Base())
	case Modifier:
		return float32(attr.Modifier())
	case Overflow:
		return float32(attr.Overflow())
	case ValidModifier:
		return float32(attr.ValidModifier())
	case Min:
		return float32(attr.Min())
	case Max:
		return float32(attr.Max())
	case MagnitudeEvaluatedUpToChannel:
		return attr.CalculateMagnitudeUpToChannel(finalChannel)
	default:
		return 0
	}
}
