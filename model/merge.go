package model

import (
	"github.com/Gobd/oasmodel/store"
)

// Override copies every top-level property and extension of src into dst,
// replacing what dst holds under the same key. Values are deep copied.
func Override(dst, src Object) {
	if isNil(dst) || isNil(src) {
		return
	}
	ds := dst.Properties()
	s := src.Properties()
	s.Range(func(k string, v any) bool {
		if s.IsExtensionKey(k) {
			ds.AddExtension(k, copyValue(v))
		} else {
			ds.Set(k, copyValue(v))
		}
		return true
	})
}

// Merge folds src into dst. Objects of the same type merge recursively, maps
// merge key by key and lists append the elements dst does not already hold:
// tags match by name, servers by url, parameters by name and location and
// everything else by structural equality. Scalars from src win.
func Merge(dst, src Object) {
	if isNil(dst) || isNil(src) || dst.Descriptor() != src.Descriptor() {
		return
	}
	ds := dst.Properties()
	s := src.Properties()
	s.Range(func(k string, v any) bool {
		cur, ok := ds.Get(k)
		next := copyValue(v)
		if ok {
			next = mergeValue(cur, v)
		}
		if s.IsExtensionKey(k) {
			ds.AddExtension(k, next)
		} else {
			ds.Set(k, next)
		}
		return true
	})
}

func mergeValue(cur, v any) any {
	switch t := v.(type) {
	case Object:
		if c, ok := cur.(Object); ok && c.Descriptor() == t.Descriptor() {
			Merge(c, t)
			return c
		}
	case *store.Map:
		if c, ok := cur.(*store.Map); ok {
			t.Range(func(k string, e any) bool {
				if ce, ok := c.Get(k); ok {
					c.Set(k, mergeValue(ce, e))
				} else {
					c.Set(k, copyValue(e))
				}
				return true
			})
			return c
		}
	case []any:
		if c, ok := cur.([]any); ok {
			out := append([]any{}, c...)
			for _, e := range t {
				if i := indexOf(out, e); i >= 0 {
					out[i] = mergeValue(out[i], e)
					continue
				}
				out = append(out, copyValue(e))
			}
			return out
		}
	}
	return copyValue(v)
}

func indexOf(list []any, e any) int {
	for i, c := range list {
		if sameIdentity(c, e) {
			return i
		}
	}
	return -1
}

func sameIdentity(a, b any) bool {
	switch ta := a.(type) {
	case *Tag:
		tb, ok := b.(*Tag)
		return ok && ta.Name() != "" && ta.Name() == tb.Name()
	case *Server:
		tb, ok := b.(*Server)
		return ok && ta.URL() != "" && ta.URL() == tb.URL()
	case *Parameter:
		tb, ok := b.(*Parameter)
		if !ok {
			return false
		}
		if ta.Ref() != "" || tb.Ref() != "" {
			return ta.Ref() == tb.Ref()
		}
		return ta.Name() == tb.Name() && ta.In() == tb.In()
	}
	return equalValue(a, b)
}
