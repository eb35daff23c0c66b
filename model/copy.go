package model

import (
	"github.com/Gobd/oasmodel/store"
)

// DeepCopy returns an independent, modifiable copy of obj and everything
// reachable from it. obj must not contain itself.
func DeepCopy[T Object](obj T) T {
	if isNil(obj) {
		return obj
	}
	out, _ := copyObject(obj).(T)
	return out
}

func copyObject(obj Object) Object {
	c, err := Create(obj.Descriptor().Name)
	if err != nil {
		// every object comes from the registry
		panic(err)
	}
	c.base().props = obj.Properties().Clone(copyValue)
	return c
}

func copyValue(v any) any {
	switch t := v.(type) {
	case Object:
		return copyObject(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case *store.Map:
		return t.Clone(copyValue)
	}
	return v
}

// Equal reports whether a and b are structurally equal: same type, same
// properties and extensions with equal values. Numbers compare by value and
// map entries regardless of order.
func Equal(a, b Object) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Descriptor() != b.Descriptor() {
		return false
	}
	sa, sb := a.Properties(), b.Properties()
	if sa.Len() != sb.Len() {
		return false
	}
	equal := true
	sa.Range(func(k string, va any) bool {
		vb, ok := sb.Get(k)
		if !ok || sa.IsExtensionKey(k) != sb.IsExtensionKey(k) || !equalValue(va, vb) {
			equal = false
		}
		return equal
	})
	return equal
}

func equalValue(a, b any) bool {
	switch ta := a.(type) {
	case Object:
		tb, ok := b.(Object)
		return ok && Equal(ta, tb)
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !equalValue(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case *store.Map:
		tb, ok := b.(*store.Map)
		if !ok || ta.Len() != tb.Len() {
			return false
		}
		equal := true
		ta.Range(func(k string, va any) bool {
			vb, ok := tb.Get(k)
			equal = ok && equalValue(va, vb)
			return equal
		})
		return equal
	}
	if fa, ok := store.ToFloat(a); ok {
		fb, ok := store.ToFloat(b)
		return ok && fa == fb
	}
	return store.Same(a, b)
}
