package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/store"
)

type extensionRule struct {
	name  string
	value any
}

// Extension returns a rule that adds a specification extension to the
// property schema. The x- prefix is added when missing.
func Extension(name string, value any) Rule {
	return extensionRule{store.ExtensionName(name), value}
}

func (r extensionRule) Describe(_ string, _, prop *model.Schema) error {
	prop.AddExtension(r.name, r.value)
	return nil
}

type hiddenRule struct{}

// Hidden marks the property so that the assembler removes it.
var Hidden Rule = hiddenRule{}

func (hiddenRule) Describe(_ string, _, prop *model.Schema) error {
	model.SetHidden(prop, true)
	return nil
}

type refRule struct {
	ref string
}

// Ref returns a rule that replaces the property schema with a reference.
// A bare name refers to a component schema.
func Ref(ref string) Rule {
	return refRule{ref}
}

func (r refRule) Describe(name string, parent, prop *model.Schema) error {
	if parent != nil && parent.SchemaProperties().Has(name) {
		s := model.NewSchema()
		s.SetRef(r.ref)
		parent.SchemaProperties().Put(name, s)
		return nil
	}
	for _, k := range prop.Properties().Keys() {
		prop.Properties().Delete(k)
	}
	prop.SetRef(r.ref)
	return nil
}
