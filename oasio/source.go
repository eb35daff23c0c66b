package oasio

import (
	"github.com/Gobd/oasmodel/model"
)

// Source is one object-shaped input.
type Source interface {
	// Reference returns the reference when the source stands for a
	// reference only.
	Reference() (string, bool)
	// Field returns the value of a declared property.
	Field(p model.Property) (Value, bool)
	// MapEntries returns the entries of the unwrapped map property p.
	MapEntries(p model.Property, d *model.Descriptor) []Entry
	// Extensions returns the extension entries in order.
	Extensions() []Entry
}

// Value is one property value of a [Source].
type Value interface {
	Scalar() (any, bool)
	Object() (Source, bool)
	List() ([]Value, bool)
	// Entries returns the entries of a map-shaped value.
	Entries(p model.Property) ([]Entry, bool)
	// Data returns the value as plain data: scalars, []any and ordered maps.
	Data() any
}

// Entry is a keyed value.
type Entry struct {
	Key   string
	Value Value
}
