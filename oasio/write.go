package oasio

import (
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/store"
	"github.com/Gobd/oasmodel/tree"
)

// Write converts obj into an object node. It reports false for nil or
// structurally empty objects. A reference is written as "$ref" alone.
// Declared properties follow descriptor order, map entries insertion order,
// and public extensions come last. Cycles must go through "$ref".
func (rw *IO) Write(obj model.Object) (*tree.Node, bool) {
	if obj == nil || model.IsEmpty(obj) {
		return nil, false
	}
	d := obj.Descriptor()
	props := obj.Properties()

	if model.IsReference(obj) {
		r := obj.(model.Referable).Ref()
		return tree.NewObject().Set("$ref", tree.NewString(r)), true
	}

	out := tree.NewObject()
	for _, p := range d.Properties {
		v, ok := props.Get(p.Name)
		if !ok || props.IsExtensionKey(p.Name) {
			continue
		}
		if p.Unwrapped {
			m, ok := v.(*store.Map)
			if !ok {
				continue
			}
			m.Range(func(k string, e any) bool {
				if n, ok := rw.writeElem(p, e); ok {
					out.Set(k, n)
				}
				return true
			})
			continue
		}
		if n, ok := rw.writeValue(p, v); ok {
			out.Set(p.Name, n)
		} else {
			rw.log.Debug("skipping value of wrong shape", "type", d.Name, "property", p.Name)
		}
	}

	if d.Extensible {
		props.Extensions(false).Range(func(k string, v any) bool {
			if n, ok := rw.writeData(v); ok {
				out.Set(store.ExtensionName(k), n)
			}
			return true
		})
	}

	if out.Len() == 0 {
		return nil, false
	}
	return out, true
}

func (rw *IO) writeValue(p model.Property, v any) (*tree.Node, bool) {
	switch p.Shape {
	case model.ShapeScalar:
		if store.Shape(v) != store.Scalar {
			return nil, false
		}
		return rw.scalar(v)
	case model.ShapeAny:
		return rw.writeData(v)
	case model.ShapeObject:
		return rw.writeObject(p.Type, v, false)
	case model.ShapeList:
		list, ok := v.([]any)
		if !ok {
			return nil, false
		}
		arr := tree.NewArray()
		for _, e := range list {
			if n, ok := rw.writeElem(p, e); ok {
				arr.Append(n)
			}
		}
		return arr, true
	case model.ShapeMap:
		m, ok := v.(*store.Map)
		if !ok {
			return nil, false
		}
		obj := tree.NewObject()
		m.Range(func(k string, e any) bool {
			if n, ok := rw.writeElem(p, e); ok {
				obj.Set(k, n)
			}
			return true
		})
		return obj, true
	}
	return nil, false
}

func (rw *IO) writeElem(p model.Property, v any) (*tree.Node, bool) {
	switch p.Elem {
	case model.ShapeScalar:
		if store.Shape(v) != store.Scalar {
			return nil, false
		}
		return rw.scalar(v)
	case model.ShapeAny:
		return rw.writeData(v)
	case model.ShapeObject:
		return rw.writeObject(p.Type, v, true)
	case model.ShapeList:
		list, ok := v.([]any)
		if !ok {
			return nil, false
		}
		arr := tree.NewArray()
		for _, e := range list {
			if n, ok := rw.scalar(e); ok {
				arr.Append(n)
			}
		}
		return arr, true
	}
	return nil, false
}

// writeObject writes a nested object of the declared type. Inside lists and
// maps an empty object is kept as {} so that the entry survives.
func (rw *IO) writeObject(typ string, v any, keepEmpty bool) (*tree.Node, bool) {
	if b, ok := v.(bool); ok && typ == schemaTypeName {
		return rw.scalar(b)
	}
	obj, ok := v.(model.Object)
	if !ok || obj.Descriptor().Name != typ {
		return nil, false
	}
	n, ok := rw.Write(obj)
	if !ok && keepEmpty {
		return tree.NewObject(), true
	}
	return n, ok
}

// writeData writes arbitrary data such as examples and extension values.
func (rw *IO) writeData(v any) (*tree.Node, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case model.Object:
		if n, ok := rw.Write(t); ok {
			return n, true
		}
		return tree.NewObject(), true
	case []any:
		arr := tree.NewArray()
		for _, e := range t {
			if n, ok := rw.writeData(e); ok {
				arr.Append(n)
			}
		}
		return arr, true
	case *store.Map:
		obj := tree.NewObject()
		t.Range(func(k string, e any) bool {
			if n, ok := rw.writeData(e); ok {
				obj.Set(k, n)
			}
			return true
		})
		return obj, true
	}
	n, err := tree.FromValue(v)
	if err != nil {
		rw.log.Debug("skipping unwritable value", "err", err)
		return nil, false
	}
	return n, true
}

func (rw *IO) scalar(v any) (*tree.Node, bool) {
	n, err := tree.NewScalar(v)
	if err != nil {
		rw.log.Debug("skipping unwritable scalar", "err", err)
		return nil, false
	}
	return n, true
}
