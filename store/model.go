// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store implements the persistent-model interface (spec §6): a
// keyed entry dictionary loaded from JSON, a type registry dispatched
// by a string `type` field, and lazy references that let forward and
// cyclic links within a single load transaction resolve correctly.
package store

import (
	"encoding/json"

	"github.com/cpmech/gonurbs/kerr"
)

// Loader decodes one entry's raw JSON into a typed Go object, resolving
// any keyed references via m.Get. It must self-register the object
// with m.put(key, typeName, obj) before resolving references back to
// itself, so that cyclic graphs (brep Face <-> Loop <-> Trim) terminate.
type Loader func(m *Model, key string, raw json.RawMessage) (interface{}, error)

// Saver encodes a typed Go object back into a raw JSON entry, resolving
// nested object references to their keys via m.KeyOf.
type Saver func(m *Model, obj interface{}) (json.RawMessage, error)

type registration struct {
	loader Loader
	saver  Saver
}

var registry = map[string]registration{}

// Register populates the package-level type registry at init() time.
// Two type names may load into the same Go type (e.g. "surface" and
// "nurbs_surface_geometry" both yield *nurbs.NurbsSurface); the type
// name an object was loaded/put under, not its Go type, is what
// SaveModel uses to pick the matching Saver back.
func Register(typeName string, loader Loader, saver Saver) {
	registry[typeName] = registration{loader: loader, saver: saver}
}

type cacheEntry struct {
	typeName string
	obj      interface{}
}

// Model is a keyed dictionary of JSON entries, plus the cache of
// already-resolved Go objects and their reverse key lookup.
type Model struct {
	entries map[string]json.RawMessage
	cache   map[string]cacheEntry
	keyOf   map[interface{}]string
}

// NewModel builds an empty model, for programmatic construction ahead
// of a Save.
func NewModel() *Model {
	return &Model{
		entries: map[string]json.RawMessage{},
		cache:   map[string]cacheEntry{},
		keyOf:   map[interface{}]string{},
	}
}

// LoadModel parses a JSON object mapping key -> entry into a Model. No
// entry is decoded into a Go object until Get is called for its key.
func LoadModel(data []byte) (*Model, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "model: %v", err)
	}
	m := NewModel()
	m.entries = raw
	return m, nil
}

// Put registers an already-built object under key with the given
// registered type name, so it can be referenced by key (Get) or
// resolved back to a key (KeyOf) during Save. Loaders call this
// internally to self-register before resolving cyclic references;
// callers assembling a model programmatically call it directly.
func (m *Model) Put(key, typeName string, obj interface{}) { m.put(key, typeName, obj) }

func (m *Model) put(key, typeName string, obj interface{}) {
	m.cache[key] = cacheEntry{typeName: typeName, obj: obj}
	// the first key an object is put under stays its reverse key, so a
	// "surface" entry sharing its geometry's object still saves a
	// reference to the geometry key rather than to itself
	if _, ok := m.keyOf[obj]; !ok {
		m.keyOf[obj] = key
	}
}

type entryHead struct {
	Type string `json:"type"`
}

// Get resolves key to a Go object, decoding its entry on first access
// and caching the result (including recursively resolved objects).
func (m *Model) Get(key string) (interface{}, error) {
	if e, ok := m.cache[key]; ok {
		return e.obj, nil
	}
	raw, ok := m.entries[key]
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "no entry for key %q", key)
	}
	var head entryHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "entry %q: %v", key, err)
	}
	reg, ok := registry[head.Type]
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "no loader registered for type %q", head.Type)
	}
	obj, err := reg.loader(m, key, raw)
	if err != nil {
		return nil, err
	}
	if _, already := m.cache[key]; !already {
		m.put(key, head.Type, obj)
	}
	return obj, nil
}

// KeyOf returns the key obj was registered under, for Saver
// implementations resolving a nested reference.
func (m *Model) KeyOf(obj interface{}) (string, error) {
	key, ok := m.keyOf[obj]
	if !ok {
		return "", kerr.New(kerr.OutOfRange, "object %T not registered in model", obj)
	}
	return key, nil
}

// SaveModel encodes every object registered in the model (via Put or a
// prior Get/Load) back into a JSON object mapping key -> entry.
func SaveModel(m *Model) ([]byte, error) {
	out := map[string]json.RawMessage{}
	for key, e := range m.cache {
		reg, ok := registry[e.typeName]
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "no saver registered for type %q", e.typeName)
		}
		raw, err := reg.saver(m, e.obj)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	return json.MarshalIndent(out, "", "  ")
}

// Ref is a lazily-resolved reference to a model entry of type T. It
// resolves on first Get(), permitting forward and cyclic references
// within a single load transaction (spec §6 "Lazy references").
type Ref[T any] struct {
	model *Model
	key   string
}

// LoadLazy returns a handle to key that is only resolved (and
// type-checked against T) when Get() is called.
func LoadLazy[T any](m *Model, key string) *Ref[T] {
	return &Ref[T]{model: m, key: key}
}

// Key returns the referenced entry's key without resolving it.
func (r *Ref[T]) Key() string { return r.key }

// Get resolves the reference, returning an error if the key is unknown
// or resolves to a different Go type than T.
func (r *Ref[T]) Get() (T, error) {
	var zero T
	obj, err := r.model.Get(r.key)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, kerr.New(kerr.OutOfRange, "key %q: expected %T, got %T", r.key, zero, obj)
	}
	return t, nil
}
