package oasio

import (
	"reflect"

	"github.com/Gobd/oasmodel/metadata"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/store"
	"github.com/Gobd/oasmodel/tree"
)

// Metadata attribute and instance type names understood by the reader.
const (
	MetaRef        = "ref"
	MetaExtensions = "extensions"
	ExtensionType  = "Extension"
)

type metaSource struct {
	inst metadata.Instance
}

// MetadataSource adapts a metadata instance.
func MetadataSource(inst metadata.Instance) Source {
	return metaSource{inst: inst}
}

func (s metaSource) Reference() (string, bool) {
	v, ok := s.inst.Value(MetaRef)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok && str != ""
}

func (s metaSource) Field(p model.Property) (Value, bool) {
	return metaField(s.inst, p.MetaName())
}

func metaField(inst metadata.Instance, name string) (Value, bool) {
	if nested, ok := inst.Nested(name); ok {
		return metaValue{insts: []metadata.Instance{nested}}, true
	}
	if arr, ok := inst.NestedArray(name); ok {
		return metaValue{insts: arr, array: true}, true
	}
	v, ok := inst.Value(name)
	if !ok || isUnset(v) {
		return nil, false
	}
	return metaValue{scalar: v}, true
}

// isUnset treats empty strings as not set, the way annotation defaults are.
func isUnset(v any) bool {
	s, ok := v.(string)
	return v == nil || (ok && s == "")
}

func (s metaSource) MapEntries(p model.Property, _ *model.Descriptor) []Entry {
	var out []Entry
	if p.ValueAttr != "" {
		if e, ok := metaEntry(s.inst, p); ok {
			out = append(out, e)
		}
	}
	if arr, ok := s.inst.NestedArray(p.MetaName()); ok {
		for _, inst := range arr {
			if e, ok := metaEntry(inst, p); ok {
				out = append(out, e)
			}
		}
	}
	return out
}

func metaEntry(inst metadata.Instance, p model.Property) (Entry, bool) {
	k, ok := inst.Value(p.MetaKey())
	key, isString := k.(string)
	if !ok || !isString || key == "" {
		return Entry{}, false
	}
	if p.ValueAttr == "" {
		return Entry{Key: key, Value: metaValue{insts: []metadata.Instance{inst}}}, true
	}
	v, ok := metaField(inst, p.ValueAttr)
	if !ok {
		// a scheme without scopes still counts
		v = metaValue{scalar: []any{}}
	}
	return Entry{Key: key, Value: v}, true
}

func (s metaSource) Extensions() []Entry {
	exts, ok := s.inst.NestedArray(MetaExtensions)
	if !ok || len(exts) == 0 {
		exts = s.inst.Repeatable(ExtensionType)
	}
	var out []Entry
	for _, e := range exts {
		nameValue, _ := e.Value("name")
		name, _ := nameValue.(string)
		if name == "" {
			continue
		}
		raw, ok := e.Value("value")
		if !ok {
			continue
		}
		parse, _ := e.Value("parseValue")
		if str, isString := raw.(string); isString && parse == true {
			raw = parseExtension(str)
		}
		out = append(out, Entry{Key: store.ExtensionName(name), Value: metaValue{scalar: raw}})
	}
	return out
}

// parseExtension reads a JSON or YAML extension value, keeping the text when
// it does not parse.
func parseExtension(s string) any {
	n, err := tree.Parse([]byte(s))
	if err != nil || n.IsNull() {
		return s
	}
	return tree.ToValue(n)
}

type metaValue struct {
	scalar any
	insts  []metadata.Instance
	array  bool
}

func (v metaValue) Scalar() (any, bool) {
	if v.insts != nil || v.scalar == nil {
		return nil, false
	}
	if _, ok := sliceOf(v.scalar); ok {
		return nil, false
	}
	return v.scalar, true
}

func (v metaValue) Object() (Source, bool) {
	if len(v.insts) == 0 || v.array {
		return nil, false
	}
	return metaSource{inst: v.insts[0]}, true
}

func (v metaValue) List() ([]Value, bool) {
	if v.insts != nil {
		out := make([]Value, 0, len(v.insts))
		for _, inst := range v.insts {
			out = append(out, metaValue{insts: []metadata.Instance{inst}})
		}
		return out, true
	}
	items, ok := sliceOf(v.scalar)
	if !ok {
		return nil, false
	}
	out := make([]Value, 0, len(items))
	for _, item := range items {
		out = append(out, metaValue{scalar: item})
	}
	return out, true
}

func (v metaValue) Entries(p model.Property) ([]Entry, bool) {
	if v.insts == nil {
		if m, ok := v.scalar.(*store.Map); ok {
			var out []Entry
			m.Range(func(k string, e any) bool {
				out = append(out, Entry{Key: k, Value: metaValue{scalar: e}})
				return true
			})
			return out, true
		}
		return nil, false
	}
	var out []Entry
	for _, inst := range v.insts {
		if e, ok := metaEntry(inst, p); ok {
			out = append(out, e)
		}
	}
	return out, true
}

func (v metaValue) Data() any {
	if v.insts != nil {
		if !v.array {
			return instanceData(v.insts[0])
		}
		out := make([]any, 0, len(v.insts))
		for _, inst := range v.insts {
			out = append(out, instanceData(inst))
		}
		return out
	}
	if items, ok := sliceOf(v.scalar); ok {
		return items
	}
	return v.scalar
}

func instanceData(inst metadata.Instance) *store.Map {
	m := store.NewMap()
	for _, name := range inst.Names() {
		if v, ok := metaField(inst, name); ok {
			m.Set(name, v.Data())
		}
	}
	return m
}

// sliceOf converts any non-byte slice into []any.
func sliceOf(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
