// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package geffect

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/gamesmiths-guild/forge/magnitude"
)

// LoadError wraps a JSON loading failure with the offending raw data,
// so a caller batching many records can report each failure with its index.
type LoadError struct {
	Data json.RawMessage
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("geffect: %v", e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Record holds a single effect's name and raw JSON, deferring full parsing
// to Decode so the caller can route by name before committing to a parse.
type Record struct {
	name string
	data json.RawMessage
}

// Name returns the effect's name, extracted during Load.
func (r *Record) Name() string { return r.name }

// JSON returns the full raw JSON payload for Decode.
func (r *Record) JSON() json.RawMessage { return r.data }

// Load peeks at an effect's "name" field for routing and keeps the full
// JSON payload for a later Decode call.
func Load(data json.RawMessage) (*Record, error) {
	var peek struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return nil, &LoadError{Data: data, Err: fmt.Errorf("peek at effect name: %w", err)}
	}
	if peek.Name == "" {
		return nil, &LoadError{Data: data, Err: fmt.Errorf("effect record missing \"name\"")}
	}
	return &Record{name: peek.Name, data: data}, nil
}

// LoadAll extracts multiple effect records from a JSON array.
func LoadAll(data json.RawMessage) ([]*Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Data: data, Err: fmt.Errorf("unmarshal effect array: %w", err)}
	}
	records := make([]*Record, 0, len(raw))
	for i, item := range raw {
		rec, err := Load(item)
		if err != nil {
			return nil, &LoadError{Data: item, Err: fmt.Errorf("effect at index %d: %w", i, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

// wireEffectData is the plain-data subset of EffectData the JSON wire
// format can represent directly. Components, CustomExecutions, and
// magnitude.CustomCalculated handles are function/interface-valued and
// cannot round-trip through JSON; Decode resolves them from a Registry by
// name instead.
type wireEffectData struct {
	Name          string         `json:"name"`
	Duration      wireDuration   `json:"duration"`
	Modifiers     []wireModifier `json:"modifiers"`
	Stacking      *StackingData  `json:"stacking,omitempty"`
	Periodic      *PeriodicData  `json:"periodic,omitempty"`
	SnapshotLevel bool           `json:"snapshot_level"`

	RequireModifierSuccessToTriggerCue bool     `json:"require_modifier_success_to_trigger_cue"`
	SuppressStackingCues               bool     `json:"suppress_stacking_cues"`
	Components                         []string `json:"components"`
	CustomExecutions                   []string `json:"custom_executions"`
}

type wireDuration struct {
	Type     DurationType  `json:"type"`
	Duration *wireScalable `json:"duration,omitempty"`
}

type wireScalable struct {
	Base float32 `json:"base"`
}

type wireModifier struct {
	Attribute string        `json:"attribute"`
	Operation Operation     `json:"operation"`
	Channel   int           `json:"channel"`
	Magnitude wireMagnitude `json:"magnitude"`
}

// wireMagnitude only supports the two variants that are pure data:
// ScalableFloat and SetByCaller. AttributeBased and CustomCalculated
// require runtime-resolved handles and must be attached programmatically
// via Registry after Decode.
type wireMagnitude struct {
	Type string  `json:"type"` // "scalable_float" | "set_by_caller"
	Base float32 `json:"base"`
	Tag  string  `json:"tag"`
}

// Registry resolves the name-keyed handles a wire EffectData references:
// components and custom executions. Hosts register their implementations
// once at startup; Decode looks them up by name.
type Registry struct {
	components       map[string]Component
	customExecutions map[string]CustomExecution
}

// NewRegistry constructs an empty handle registry.
func NewRegistry() *Registry {
	return &Registry{
		components:       make(map[string]Component),
		customExecutions: make(map[string]CustomExecution),
	}
}

// RegisterComponent makes a component available to Decode under name.
func (r *Registry) RegisterComponent(name string, c Component) { r.components[name] = c }

// RegisterCustomExecution makes a custom execution available to Decode
// under name.
func (r *Registry) RegisterCustomExecution(name string, e CustomExecution) {
	r.customExecutions[name] = e
}

// Decode fully parses rec's JSON into an EffectData, resolving named
// components and custom executions against reg, and validates the result
// via NewEffectData.
func (rec *Record) Decode(reg *Registry) (*EffectData, error) {
	var w wireEffectData
	if err := json.Unmarshal(rec.data, &w); err != nil {
		return nil, &LoadError{Data: rec.data, Err: fmt.Errorf("decode effect %q: %w", rec.name, err)}
	}

	cfg := EffectData{
		Name: w.Name,
		// Ref gives a loaded EffectData an interning key independent of its
		// structural Equal/Hash walk. "effect" is the wire
		// loader's own namespace, not a claim about what other modules use.
		Ref:      &core.Ref{Module: "forge", Type: "effect", Value: w.Name},
		Duration: Duration{
			Type: w.Duration.Type,
		},
		Stacking:                           w.Stacking,
		Periodic:                           w.Periodic,
		SnapshotLevel:                      w.SnapshotLevel,
		RequireModifierSuccessToTriggerCue: w.RequireModifierSuccessToTriggerCue,
		SuppressStackingCues:               w.SuppressStackingCues,
	}
	if w.Duration.Duration != nil {
		sf := scalableFromWire(*w.Duration.Duration)
		cfg.Duration.Duration = &sf
	}

	for _, wm := range w.Modifiers {
		m, err := modifierFromWire(wm)
		if err != nil {
			return nil, &LoadError{Data: rec.data, Err: fmt.Errorf("effect %q: %w", w.Name, err)}
		}
		cfg.Modifiers = append(cfg.Modifiers, m)
	}

	for _, name := range w.Components {
		c, ok := reg.components[name]
		if !ok {
			return nil, &LoadError{Data: rec.data, Err: fmt.Errorf("effect %q: unknown component %q", w.Name, name)}
		}
		cfg.Components = append(cfg.Components, c)
	}
	for _, name := range w.CustomExecutions {
		e, ok := reg.customExecutions[name]
		if !ok {
			return nil, &LoadError{Data: rec.data, Err: fmt.Errorf("effect %q: unknown custom execution %q", w.Name, name)}
		}
		cfg.CustomExecutions = append(cfg.CustomExecutions, e)
	}

	return NewEffectData(cfg)
}

func scalableFromWire(w wireScalable) magnitude.ScalableFloat {
	return magnitude.ScalableFloat{Base: w.Base}
}

func modifierFromWire(w wireModifier) (Modifier, error) {
	var spec magnitude.Spec
	switch w.Magnitude.Type {
	case "scalable_float":
		spec = magnitude.ScalableFloat{Base: w.Magnitude.Base}
	case "set_by_caller":
		spec = magnitude.SetByCaller{Tag: w.Magnitude.Tag}
	default:
		return Modifier{}, fmt.Errorf(
			"modifier on %q: magnitude type %q is not wire-decodable (use AttributeBased/CustomCalculated via code)",
			w.Attribute, w.Magnitude.Type)
	}
	return Modifier{
		Attribute: w.Attribute,
		Operation: w.Operation,
		Magnitude: spec,
		Channel:   w.Channel,
	}, nil
}
