package oasmodel

import (
	"context"

	"github.com/Gobd/oasmodel/model"
)

type (
	// Rule describes one constraint of a field in its schema.
	//
	// parent is the object schema that owns the property and prop the
	// property schema itself. parent is nil for rules of a top-level value.
	Rule interface {
		Describe(name string, parent, prop *model.Schema) error
	}

	// RuleFunc adapts a function to [Rule].
	RuleFunc func(name string, parent, prop *model.Schema) error

	// FieldRules binds a struct field pointer to its rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by struct types that describe their fields.
	Ruler interface {
		Rules() []*FieldRules
	}

	// ContextRuler is like [Ruler] for rules that depend on a context.
	ContextRuler interface {
		Rules(ctx context.Context) []*FieldRules
	}

	// ValueRuler is implemented by non-struct types (e.g. type PaymentMethod string)
	// that carry their own rules. The returned rules are applied wherever the
	// type appears as a struct field.
	//
	//	type PaymentMethod string
	//
	//	const (
	//	    PaymentACH  PaymentMethod = "ach"
	//	    PaymentCC   PaymentMethod = "cc"
	//	)
	//
	//	func (p PaymentMethod) ValueRules() []Rule {
	//	    return []Rule{In(PaymentACH, PaymentCC)}
	//	}
	ValueRuler interface {
		ValueRules() []Rule
	}
)

// Describe implements [Rule].
func (f RuleFunc) Describe(name string, parent, prop *model.Schema) error {
	return f(name, parent, prop)
}
