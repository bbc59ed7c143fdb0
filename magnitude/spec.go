// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package magnitude

// Spec is the MagnitudeSpec tagged variant: ScalableFloat,
// AttributeBased, CustomCalculated, or SetByCaller. Each variant type
// implements isSpec to close the set; the Evaluator type-switches over it
// exhaustively.
type Spec interface {
	isSpec()
}

func (ScalableFloat) isSpec()    {}
func (AttributeBased) isSpec()   {}
func (CustomCalculated) isSpec() {}
func (SetByCaller) isSpec()      {}

// CaptureSide selects which side of an effect application an
// AttributeCaptureDef reads from.
type CaptureSide int

const (
	// CaptureSource reads the attribute off the effect's source entity.
	CaptureSource CaptureSide = iota
	// CaptureTarget reads the attribute off the effect's target entity.
	CaptureTarget
)

// CalcType selects which derived scalar of a captured attribute is used.
type CalcType int

const (
	CurrentValue CalcType = iota
	BaseValue
	Modifier
	Overflow
	ValidModifier
	Min
	Max
	MagnitudeEvaluatedUpToChannel
)

// AttributeCaptureDef names the attribute to capture, which side to
// capture it from, and whether the capture is a one-time snapshot or a
// live read.
type AttributeCaptureDef struct {
	AttributeKey string
	Source       CaptureSide
	Snapshot     bool
}

// AttributeBased derives its scalar from a captured attribute, then
// applies the coeff*(preAdd+captured)+postAdd affine form it shares with
// CustomCalculated.
type AttributeBased struct {
	Capture      AttributeCaptureDef
	Calc         CalcType
	Coefficient  ScalableFloat
	PreAdd       ScalableFloat
	PostAdd      ScalableFloat
	FinalChannel int // only meaningful when Calc == MagnitudeEvaluatedUpToChannel
}

// CustomCalculator computes a base magnitude outside the built-in
// AttributeBased rules — a calculator handle.
type CustomCalculator interface {
	CalculateBaseMagnitude(ctx EvalContext) float32
}

// CustomCalculated invokes a CustomCalculator, applies the standard affine
// form to its result, then optionally passes the result through a lookup
// curve.
type CustomCalculated struct {
	Calculator  CustomCalculator
	Coefficient ScalableFloat
	PreAdd      ScalableFloat
	PostAdd     ScalableFloat
	LookupCurve *Curve
}

// SetByCaller looks up its scalar by tag in the runtime effect's caller
// magnitude map; a missing tag yields 0.
type SetByCaller struct {
	Tag string
}

// CacheKey identifies one memoized snapshot slot: the tuple
// (attributeKey, source, calcType, finalChannel), so the same capture
// definition always resolves to the same memoized scalar.
type CacheKey struct {
	AttributeKey string
	Source       CaptureSide
	Calc         CalcType
	FinalChannel int
}

// SnapshotCache is implemented by whatever owns an ActiveEffect's
// lifetime-scoped snapshot cache.
// The Evaluator consults it for Snapshot captures instead of maintaining
// its own state, since the cache must outlive any single Evaluate call.
type SnapshotCache interface {
	Get(key CacheKey) (float32, bool)
	Set(key CacheKey, value float32)
}
