package oasio

import (
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/store"
	"github.com/Gobd/oasmodel/tree"
)

type treeSource struct {
	n *tree.Node
}

// TreeSource adapts an object node.
func TreeSource(n *tree.Node) Source {
	return treeSource{n: n}
}

func (s treeSource) Reference() (string, bool) {
	v, ok := s.n.Field("$ref")
	if !ok {
		return "", false
	}
	text, ok := v.Text()
	return text, ok && text != ""
}

func (s treeSource) Field(p model.Property) (Value, bool) {
	if v, ok := s.n.Field(p.Name); ok && !v.IsNull() {
		return treeValue{n: v}, true
	}
	for _, a := range p.Aliases {
		if v, ok := s.n.Field(a); ok && !v.IsNull() {
			return treeValue{n: v}, true
		}
	}
	return nil, false
}

func (s treeSource) MapEntries(_ model.Property, d *model.Descriptor) []Entry {
	var out []Entry
	for _, f := range s.n.Fields() {
		if f.Key == "$ref" || store.IsExtension(f.Key) || f.Value.IsNull() {
			continue
		}
		if _, declared := d.Property(f.Key); declared {
			continue
		}
		out = append(out, Entry{Key: f.Key, Value: treeValue{n: f.Value}})
	}
	return out
}

func (s treeSource) Extensions() []Entry {
	var out []Entry
	for _, f := range s.n.Fields() {
		if store.IsExtension(f.Key) && !f.Value.IsNull() {
			out = append(out, Entry{Key: f.Key, Value: treeValue{n: f.Value}})
		}
	}
	return out
}

type treeValue struct {
	n *tree.Node
}

func (v treeValue) Scalar() (any, bool) { return v.n.Scalar() }

func (v treeValue) Object() (Source, bool) {
	if !v.n.IsObject() {
		return nil, false
	}
	return treeSource{n: v.n}, true
}

func (v treeValue) List() ([]Value, bool) {
	if !v.n.IsArray() {
		return nil, false
	}
	items := v.n.Items()
	out := make([]Value, 0, len(items))
	for _, item := range items {
		out = append(out, treeValue{n: item})
	}
	return out, true
}

func (v treeValue) Entries(model.Property) ([]Entry, bool) {
	if !v.n.IsObject() {
		return nil, false
	}
	fields := v.n.Fields()
	out := make([]Entry, 0, len(fields))
	for _, f := range fields {
		if f.Value.IsNull() {
			continue
		}
		out = append(out, Entry{Key: f.Key, Value: treeValue{n: f.Value}})
	}
	return out, true
}

func (v treeValue) Data() any { return tree.ToValue(v.n) }

// Unknown lists the fields the reader drops for a type without an
// unwrapped map.
func (s treeSource) Unknown(d *model.Descriptor) []string {
	if _, ok := d.MapProperty(); ok {
		return nil
	}
	var out []string
	for _, f := range s.n.Fields() {
		if f.Key == "$ref" || store.IsExtension(f.Key) {
			continue
		}
		if _, declared := d.Property(f.Key); !declared {
			out = append(out, f.Key)
		}
	}
	return out
}
