package store

import (
	"github.com/Gobd/oasmodel/errors"
)

// Map is an insertion-ordered string-keyed map. Re-putting an existing key
// keeps its original position.
type Map struct {
	keys   []string
	values map[string]any
	frozen bool
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{values: map[string]any{}}
}

// MapOf builds a map from alternating key/value arguments.
func MapOf(kv ...any) *Map {
	m := NewMap()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. A nil v removes the key.
func (m *Map) Set(key string, v any) {
	if v == nil {
		m.Delete(key)
		return
	}
	m.guard()
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key. It reports whether the key was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.values[key]; !ok {
		return false
	}
	m.guard()
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls f for every entry in order until f returns false.
func (m *Map) Range(f func(key string, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.Keys() {
		if !f(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a copy of m with every value passed through cp.
// A nil cp copies values as they are.
func (m *Map) Clone(cp func(any) any) *Map {
	out := NewMap()
	m.Range(func(k string, v any) bool {
		if cp != nil {
			v = cp(v)
		}
		out.Set(k, v)
		return true
	})
	return out
}

// Freeze makes m and every map nested in it unmodifiable.
func (m *Map) Freeze() {
	if m == nil {
		return
	}
	m.frozen = true
	for _, v := range m.values {
		freezeValue(v)
	}
}

// Frozen reports whether m has been frozen.
func (m *Map) Frozen() bool {
	return m != nil && m.frozen
}

func (m *Map) guard() {
	if m.frozen {
		panic(errors.ReadOnly("map"))
	}
}

func freezeValue(v any) {
	switch t := v.(type) {
	case *Map:
		t.Freeze()
	case []any:
		for _, e := range t {
			freezeValue(e)
		}
	}
}
