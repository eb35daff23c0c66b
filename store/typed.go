package store

// Typed returns the value under key when it has type T.
// A value of any other type reads as absent.
func Typed[T any](s *Store, key string) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// String returns the string under key.
func String(s *Store, key string) (string, bool) {
	return Typed[string](s, key)
}

// Bool returns the bool under key.
func Bool(s *Store, key string) (bool, bool) {
	return Typed[bool](s, key)
}

// Float returns the number under key as a float64.
func Float(s *Store, key string) (float64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// Int returns the integral number under key.
func Int(s *Store, key string) (int, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	return ToInt(v)
}

// List returns the list under key.
func List(s *Store, key string) ([]any, bool) {
	return Typed[[]any](s, key)
}

// Strings returns the list under key when every element is a string.
func Strings(s *Store, key string) ([]string, bool) {
	list, ok := List(s, key)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		str, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

// MapValue returns the ordered map under key.
func MapValue(s *Store, key string) (*Map, bool) {
	m, ok := Typed[*Map](s, key)
	return m, ok && m != nil
}

// ListOf converts a typed slice into a store list. A nil or empty slice
// yields nil so that setting it removes the property.
func ListOf[T any](items []T) []any {
	if len(items) == 0 {
		return nil
	}
	out := make([]any, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}
