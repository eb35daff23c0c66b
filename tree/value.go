package tree

import (
	"fmt"
	"sort"

	"github.com/Gobd/oasmodel/store"
)

// ToValue converts n into plain data: objects become ordered [*store.Map]
// values, arrays become []any and scalars their Go value. A null node yields
// nil; nulls nested in objects and arrays become [store.Null].
func ToValue(n *Node) any {
	switch n.Kind() {
	case Scalar:
		v, _ := n.Scalar()
		return v
	case Array:
		items := n.Items()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, nested(item))
		}
		return out
	case Object:
		m := store.NewMap()
		for _, f := range n.Fields() {
			m.Set(f.Key, nested(f.Value))
		}
		return m
	}
	return nil
}

func nested(n *Node) any {
	if n.IsNull() {
		return store.Null
	}
	return ToValue(n)
}

// FromValue converts plain data into a node. Plain Go maps are written with
// sorted keys; [*store.Map] keeps its order.
func FromValue(v any) (*Node, error) {
	switch t := v.(type) {
	case nil, store.NullValue:
		return NewNull(), nil
	case *Node:
		return t, nil
	case *store.Map:
		obj := NewObject()
		var err error
		t.Range(func(k string, e any) bool {
			var n *Node
			if n, err = FromValue(e); err != nil {
				return false
			}
			obj.Set(k, n)
			return true
		})
		return obj, err
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			n, err := FromValue(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, n)
		}
		return obj, nil
	case []any:
		arr := NewArray()
		for _, e := range t {
			n, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			arr.Append(n)
		}
		return arr, nil
	case []string:
		arr := NewArray()
		for _, e := range t {
			arr.Append(NewString(e))
		}
		return arr, nil
	}
	n, err := NewScalar(v)
	if err != nil {
		return nil, fmt.Errorf("convert value: %w", err)
	}
	return n, nil
}
