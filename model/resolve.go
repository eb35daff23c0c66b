package model

import (
	"github.com/Gobd/oasmodel/ref"
)

// Resolution records one reference the resolver pass could not leave alone.
type Resolution struct {
	Pointer string
	Ref     string
	Result  ref.Result
}

// ComponentIndex indexes the component names of doc.
func ComponentIndex(doc *OpenAPI) ref.MapIndex {
	idx := ref.MapIndex{}
	if doc == nil {
		return idx
	}
	c := doc.Components()
	if c == nil {
		return idx
	}
	for _, cat := range ref.Categories() {
		for _, name := range c.Names(cat) {
			idx.Add(cat, name)
		}
	}
	return idx
}

// ResolveReferences expands every bare reference in doc against its
// components. It never fails; references that were expanded, unresolved or
// external are reported in graph order.
func ResolveReferences(doc *OpenAPI) []Resolution {
	if doc == nil {
		return nil
	}
	idx := ComponentIndex(doc)
	var out []Resolution
	Walk(doc, func(pointer string, obj Object) bool {
		r, ok := obj.(Referable)
		if !ok || !ref.IsReference(r) {
			return true
		}
		if res := ref.Expand(r, idx); res != ref.Unchanged {
			out = append(out, Resolution{Pointer: pointer, Ref: r.Ref(), Result: res})
		}
		return true
	})
	return out
}

// Resolve returns the component a local pointer names.
func Resolve(doc *OpenAPI, pointer string) (Object, bool) {
	cat, name, ok := ref.Parse(pointer)
	if !ok || doc == nil || doc.Components() == nil {
		return nil, false
	}
	return doc.Components().Component(cat, name)
}
