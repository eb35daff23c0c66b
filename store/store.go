package store

import (
	"slices"

	"github.com/Gobd/oasmodel/errors"
)

// Store is the ordered property bag of one document object.
type Store struct {
	name   string
	keys   []string
	values map[string]any
	ext    map[string]struct{}
	frozen bool
}

// New returns an empty store owned by an object of the named type.
func New(name string) *Store {
	return &Store{name: name, values: map[string]any{}}
}

// Name returns the owning type name.
func (s *Store) Name() string { return s.name }

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Set stores v as a declared property. A nil v removes the key.
// An extension stored under the same key is replaced.
func (s *Store) Set(key string, v any) {
	if Shape(v) == Absent {
		s.Delete(key)
		return
	}
	s.guard()
	s.put(key, v)
	delete(s.ext, key)
}

// Delete removes key, whether property or extension.
func (s *Store) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	s.guard()
	delete(s.values, key)
	delete(s.ext, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Keys returns every key in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of entries, extensions included.
func (s *Store) Len() int { return len(s.keys) }

// Range calls f for every entry in insertion order until f returns false.
func (s *Store) Range(f func(key string, v any) bool) {
	for _, k := range s.Keys() {
		if !f(k, s.values[k]) {
			return
		}
	}
}

// AddToList appends item to the list under key. A current value that is not
// a list is discarded and replaced by a one-element list.
func (s *Store) AddToList(key string, item any) {
	if item == nil {
		return
	}
	s.guard()
	list, _ := s.values[key].([]any)
	next := make([]any, len(list), len(list)+1)
	copy(next, list)
	s.Set(key, append(next, item))
}

// RemoveFromList removes the first element equal to item. Non-list values
// are left alone.
func (s *Store) RemoveFromList(key string, item any) {
	list, ok := s.values[key].([]any)
	if !ok {
		return
	}
	for i, e := range list {
		if Same(e, item) {
			s.guard()
			next := slices.Delete(slices.Clone(list), i, i+1)
			s.put(key, next)
			return
		}
	}
}

// PutIntoMap stores item under sub in the map held under key. An absent or
// non-map current value is replaced by a fresh map. A nil item removes sub.
func (s *Store) PutIntoMap(key, sub string, item any) {
	if item == nil {
		s.RemoveFromMap(key, sub)
		return
	}
	s.guard()
	m, ok := s.values[key].(*Map)
	if !ok || m == nil {
		m = NewMap()
		s.Set(key, m)
	}
	m.Set(sub, item)
}

// RemoveFromMap removes sub from the map held under key. Non-map values are
// left alone.
func (s *Store) RemoveFromMap(key, sub string) {
	m, ok := s.values[key].(*Map)
	if !ok {
		return
	}
	s.guard()
	m.Delete(sub)
}

// AddExtension stores v as an extension. A nil v removes it. A declared
// property stored under the same key is replaced.
func (s *Store) AddExtension(name string, v any) {
	if v == nil {
		s.RemoveExtension(name)
		return
	}
	s.guard()
	s.put(name, v)
	if s.ext == nil {
		s.ext = map[string]struct{}{}
	}
	s.ext[name] = struct{}{}
}

// Extension returns the extension stored under name.
func (s *Store) Extension(name string) (any, bool) {
	if !s.IsExtensionKey(name) {
		return nil, false
	}
	return s.values[name], true
}

// RemoveExtension removes the named extension.
func (s *Store) RemoveExtension(name string) {
	if s.IsExtensionKey(name) {
		s.Delete(name)
	}
}

// IsExtensionKey reports whether key currently holds an extension.
func (s *Store) IsExtensionKey(key string) bool {
	_, ok := s.ext[key]
	return ok
}

// HasExtensions reports whether any extension is present.
func (s *Store) HasExtensions(includePrivate bool) bool {
	for k := range s.ext {
		if includePrivate || !IsPrivate(k) {
			return true
		}
	}
	return false
}

// Extensions returns the extensions in insertion order. A nil result means
// there are none.
func (s *Store) Extensions(includePrivate bool) *Map {
	if len(s.ext) == 0 {
		return nil
	}
	var out *Map
	for _, k := range s.keys {
		if _, ok := s.ext[k]; !ok || (!includePrivate && IsPrivate(k)) {
			continue
		}
		if out == nil {
			out = NewMap()
		}
		out.Set(k, s.values[k])
	}
	return out
}

// SetExtensions replaces every public extension with the entries of m.
// Private extensions are kept.
func (s *Store) SetExtensions(m *Map) {
	s.guard()
	for _, k := range s.Keys() {
		if s.IsExtensionKey(k) && !IsPrivate(k) {
			s.Delete(k)
		}
	}
	m.Range(func(k string, v any) bool {
		s.AddExtension(k, v)
		return true
	})
}

// Clone returns a copy of s with every value passed through cp.
// The copy is never frozen.
func (s *Store) Clone(cp func(any) any) *Store {
	out := New(s.name)
	for _, k := range s.keys {
		v := s.values[k]
		if cp != nil {
			v = cp(v)
		}
		if v == nil {
			continue
		}
		out.put(k, v)
		if s.IsExtensionKey(k) {
			if out.ext == nil {
				out.ext = map[string]struct{}{}
			}
			out.ext[k] = struct{}{}
		}
	}
	return out
}

// Freeze makes s and the maps it holds unmodifiable. Later mutators panic
// with an [errors.ErrCodeReadOnly] error.
func (s *Store) Freeze() {
	s.frozen = true
	for _, v := range s.values {
		freezeValue(v)
	}
}

// Frozen reports whether s has been frozen.
func (s *Store) Frozen() bool { return s.frozen }

func (s *Store) put(key string, v any) {
	if s.values == nil {
		s.values = map[string]any{}
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

func (s *Store) guard() {
	if s.frozen {
		panic(errors.ReadOnly(s.name))
	}
}
