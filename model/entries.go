package model

import (
	"iter"

	"github.com/Gobd/oasmodel/store"
)

// Entries is a typed, insertion-ordered view over one map property of an
// object. Map model types embed it so that the object itself behaves as the
// map; other types hand it out from accessors such as Components.Schemas.
type Entries[V any] struct {
	n   *node
	key string
}

func entries[V any](n *node, key string) Entries[V] {
	return Entries[V]{n: n, key: key}
}

func (e Entries[V]) backing() *store.Map {
	m, _ := store.MapValue(e.n.props, e.key)
	return m
}

// Get returns the value stored under key.
func (e Entries[V]) Get(key string) (V, bool) {
	v, ok := e.backing().Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return convert[V](v)
}

// GetValue returns the raw value stored under key.
func (e Entries[V]) GetValue(key string) (any, bool) {
	return e.backing().Get(key)
}

// Put stores v under key. A nil v removes the key.
func (e Entries[V]) Put(key string, v V) {
	e.PutValue(key, v)
}

// PutValue stores a raw value under key.
func (e Entries[V]) PutValue(key string, v any) {
	if isNil(v) {
		e.Remove(key)
		return
	}
	if ss, ok := v.([]string); ok {
		list := make([]any, len(ss))
		for i, s := range ss {
			list[i] = s
		}
		v = list
	}
	e.n.props.PutIntoMap(e.key, key, v)
}

// Remove deletes key.
func (e Entries[V]) Remove(key string) {
	e.n.props.RemoveFromMap(e.key, key)
}

// Has reports whether key is present.
func (e Entries[V]) Has(key string) bool {
	return e.backing().Has(key)
}

// Keys returns the keys in insertion order.
func (e Entries[V]) Keys() []string {
	return e.backing().Keys()
}

// Len returns the number of entries.
func (e Entries[V]) Len() int {
	return e.backing().Len()
}

// All iterates the entries in insertion order. Entries of the wrong type
// are skipped.
func (e Entries[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		e.backing().Range(func(k string, raw any) bool {
			v, ok := convert[V](raw)
			if !ok {
				return true
			}
			return yield(k, v)
		})
	}
}

// Clear removes every entry.
func (e Entries[V]) Clear() {
	e.n.props.Delete(e.key)
}

func convert[V any](raw any) (V, bool) {
	if v, ok := raw.(V); ok {
		return v, true
	}
	var zero V
	if _, wantStrings := any(zero).([]string); wantStrings {
		list, ok := raw.([]any)
		if !ok {
			return zero, false
		}
		out := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return zero, false
			}
			out = append(out, s)
		}
		return any(out).(V), true
	}
	return zero, false
}
