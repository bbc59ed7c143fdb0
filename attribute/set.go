// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package attribute

import "fmt"

// Set is a named collection of Attributes, keyed by field name within the
// set (e.g. a "Vitals" set holding "Health" and "Mana"). The Effects
// Manager resolves a Modifier's AttributeKey as "<SetName>.<FieldName>"
// against a Map of Sets.
type Set struct {
	name       string
	attributes map[string]*Attribute
}

// NewSet creates an empty, named attribute set.
func NewSet(name string) *Set {
	return &Set{name: name, attributes: make(map[string]*Attribute)}
}

// Name returns the set's name.
func (s *Set) Name() string { return s.name }

// Add registers an attribute under fieldName, constructing its fully
// qualified key as "<SetName>.<fieldName>".
func (s *Set) Add(fieldName string, cfg Config) *Attribute {
	cfg.Key = s.name + "." + fieldName
	a := New(cfg)
	s.attributes[fieldName] = a
	return a
}

// Get returns the attribute registered under fieldName, or nil.
func (s *Set) Get(fieldName string) *Attribute {
	return s.attributes[fieldName]
}

// All returns every attribute in the set, in no particular order.
func (s *Set) All() []*Attribute {
	out := make([]*Attribute, 0, len(s.attributes))
	for _, a := range s.attributes {
		out = append(out, a)
	}
	return out
}

// Map resolves dotted "<SetName>.<FieldName>" keys to Attributes across
// multiple Sets, as required to capture Modifiers and AttributeBased
// magnitude calculations against arbitrary targets.
type Map struct {
	sets map[string]*Set
}

// NewMap creates an empty attribute map.
func NewMap() *Map {
	return &Map{sets: make(map[string]*Set)}
}

// AddSet registers a Set under its own Name.
func (m *Map) AddSet(s *Set) {
	m.sets[s.name] = s
}

// Resolve looks up the attribute named by a "<SetName>.<FieldName>" key.
// It returns an error if the set or field is not found rather than
// panicking, because the key usually originates from effect configuration
// data.
func (m *Map) Resolve(key string) (*Attribute, error) {
	setName, fieldName, ok := splitKey(key)
	if !ok {
		return nil, fmt.Errorf("attribute: malformed key %q, expected \"<Set>.<Field>\"", key)
	}
	set, ok := m.sets[setName]
	if !ok {
		return nil, fmt.Errorf("attribute: no such set %q (key %q)", setName, key)
	}
	a := set.Get(fieldName)
	if a == nil {
		return nil, fmt.Errorf("attribute: set %q has no field %q (key %q)", setName, fieldName, key)
	}
	return a, nil
}

func splitKey(key string) (setName, fieldName string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:], i > 0 && i < len(key)-1
		}
	}
	return "", "", false
}
