// Package metadata describes the annotation-like input of the document model.
//
// An [Instance] is an ordered set of named attributes. Attribute values are
// scalars, lists of scalars, nested instances or arrays of nested instances.
// Instances attached to the same program [Element] can see each other as
// repeatable siblings, which is how stand-alone Extension instances reach the
// object they decorate.
package metadata

// Instance is one metadata record, such as an Info or Schema declaration.
type Instance interface {
	// Type names the kind of record, for example "Info" or "Extension".
	Type() string
	// Names lists the attributes that are set, in declaration order.
	Names() []string
	// Value returns a scalar or scalar-list attribute.
	Value(name string) (any, bool)
	// Nested returns a single nested instance.
	Nested(name string) (Instance, bool)
	// NestedArray returns an array of nested instances.
	NestedArray(name string) ([]Instance, bool)
	// Repeatable returns the instances of the given type attached to the same
	// program element.
	Repeatable(typ string) []Instance
}
