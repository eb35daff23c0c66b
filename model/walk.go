package model

import (
	"strconv"
	"strings"

	"github.com/Gobd/oasmodel/store"
)

// Pointer joins JSON pointer tokens under "#".
func Pointer(tokens ...string) string {
	var b strings.Builder
	b.WriteString("#")
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(t))
	}
	return b.String()
}

// Walk visits obj and every object reachable from it, parents first.
// visit receives the JSON pointer of each object; returning false skips the
// object's children. The graph must be acyclic.
func Walk(obj Object, visit func(pointer string, obj Object) bool) {
	walk(obj, nil, visit)
}

func walk(obj Object, path []string, visit func(string, Object) bool) {
	if isNil(obj) {
		return
	}
	if !visit(Pointer(path...), obj) {
		return
	}
	d := obj.Descriptor()
	obj.Properties().Range(func(key string, v any) bool {
		p := path
		if prop, ok := d.Property(key); !ok || !prop.Unwrapped {
			p = append(clip(path), key)
		}
		walkValue(v, p, visit)
		return true
	})
}

func walkValue(v any, path []string, visit func(string, Object) bool) {
	switch t := v.(type) {
	case Object:
		walk(t, path, visit)
	case []any:
		for i, e := range t {
			walkValue(e, append(clip(path), strconv.Itoa(i)), visit)
		}
	case *store.Map:
		t.Range(func(k string, e any) bool {
			walkValue(e, append(clip(path), k), visit)
			return true
		})
	}
}

// FilterFunc inspects one object and returns the object to keep in its
// place. Returning nil removes the object from its parent.
type FilterFunc func(obj Object) Object

// Filter applies f to every object below root, children before parents, and
// finally to root itself. The possibly replaced root is returned.
func Filter(root Object, f FilterFunc) Object {
	if isNil(root) {
		return nil
	}
	s := root.Properties()
	s.Range(func(key string, v any) bool {
		next, keep := filterValue(v, f)
		switch {
		case !keep:
			s.Delete(key)
		case s.IsExtensionKey(key):
			s.AddExtension(key, next)
		default:
			s.Set(key, next)
		}
		return true
	})
	out := f(root)
	if isNil(out) {
		return nil
	}
	return out
}

func filterValue(v any, f FilterFunc) (any, bool) {
	switch t := v.(type) {
	case Object:
		out := Filter(t, f)
		if out == nil {
			return nil, false
		}
		return out, true
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if next, keep := filterValue(e, f); keep {
				out = append(out, next)
			}
		}
		if len(out) == 0 && len(t) > 0 {
			return nil, false
		}
		return out, true
	case *store.Map:
		t.Range(func(k string, e any) bool {
			next, keep := filterValue(e, f)
			if !keep {
				t.Delete(k)
			} else {
				t.Set(k, next)
			}
			return true
		})
		return t, true
	}
	return v, true
}

func clip(path []string) []string {
	return path[:len(path):len(path)]
}
