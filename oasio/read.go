package oasio

import (
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
)

const schemaTypeName = "Schema"

// Read builds an object of the named type from any source.
func (rw *IO) Read(typ string, src Source) (model.Object, error) {
	obj, err := model.Create(typ)
	if err != nil {
		return nil, err
	}
	d := obj.Descriptor()
	props := obj.Properties()

	if d.Referable() {
		if r, ok := src.Reference(); ok {
			if _, fromMetadata := src.(metaSource); fromMetadata {
				r = ref.Canonicalize(d.Category, r)
			}
			rw.log.Debug("read reference", "type", typ, "ref", r)
			props.Set("$ref", r)
			return obj, nil
		}
	}

	for _, p := range d.Properties {
		if p.Unwrapped {
			m, err := rw.readEntries(p, src.MapEntries(p, d))
			if err != nil {
				return nil, err
			}
			if m.Len() > 0 {
				props.Set(p.Name, m)
			}
			continue
		}
		v, ok := src.Field(p)
		if !ok {
			continue
		}
		val, ok, err := rw.readValue(p, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			rw.log.Debug("skipping malformed value", "type", typ, "property", p.Name)
			continue
		}
		props.Set(p.Name, val)
	}

	if u, ok := src.(interface{ Unknown(*model.Descriptor) []string }); ok {
		for _, name := range u.Unknown(d) {
			rw.log.Debug("dropping unknown field", "type", typ, "field", name)
		}
	}

	if d.Extensible {
		for _, e := range src.Extensions() {
			if data := e.Value.Data(); data != nil {
				props.AddExtension(e.Key, data)
			}
		}
	}
	return obj, nil
}

func (rw *IO) readValue(p model.Property, v Value) (any, bool, error) {
	switch p.Shape {
	case model.ShapeScalar:
		s, ok := v.Scalar()
		return s, ok, nil
	case model.ShapeAny:
		d := v.Data()
		return d, d != nil, nil
	case model.ShapeObject:
		return rw.readObject(p.Type, p.BoolSchema, v)
	case model.ShapeList:
		items, ok := v.List()
		if !ok {
			return nil, false, nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			e, ok, err := rw.readElem(p, item)
			if err != nil {
				return nil, false, err
			}
			if ok {
				out = append(out, e)
			}
		}
		return out, true, nil
	case model.ShapeMap:
		entries, ok := v.Entries(p)
		if !ok {
			return nil, false, nil
		}
		m, err := rw.readEntries(p, entries)
		return m, err == nil, err
	}
	return nil, false, nil
}

func (rw *IO) readEntries(p model.Property, entries []Entry) (*store.Map, error) {
	m := store.NewMap()
	for _, e := range entries {
		v, ok, err := rw.readElem(p, e.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			m.Set(e.Key, v)
		}
	}
	return m, nil
}

func (rw *IO) readElem(p model.Property, v Value) (any, bool, error) {
	switch p.Elem {
	case model.ShapeScalar:
		s, ok := v.Scalar()
		return s, ok, nil
	case model.ShapeAny:
		d := v.Data()
		return d, d != nil, nil
	case model.ShapeObject:
		return rw.readObject(p.Type, p.Type == schemaTypeName, v)
	case model.ShapeList:
		items, ok := v.List()
		if !ok {
			return nil, false, nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			if s, ok := item.Scalar(); ok {
				out = append(out, s)
			}
		}
		return out, true, nil
	}
	return nil, false, nil
}

func (rw *IO) readObject(typ string, allowBool bool, v Value) (any, bool, error) {
	if src, ok := v.Object(); ok {
		obj, err := rw.Read(typ, src)
		if err != nil {
			return nil, false, err
		}
		return obj, true, nil
	}
	if allowBool {
		if s, ok := v.Scalar(); ok {
			if b, isBool := s.(bool); isBool {
				return b, true, nil
			}
		}
	}
	return nil, false, nil
}
