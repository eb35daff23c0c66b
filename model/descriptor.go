package model

import (
	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/ref"
)

// Shape is the declared shape of a property.
type Shape int

const (
	// ShapeScalar is a string, bool or number.
	ShapeScalar Shape = iota
	// ShapeAny is arbitrary data such as an example value or a default.
	ShapeAny
	// ShapeObject is a nested document object of Property.Type.
	ShapeObject
	// ShapeList is a list whose elements have shape Property.Elem.
	ShapeList
	// ShapeMap is a string-keyed map whose values have shape Property.Elem.
	ShapeMap
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeAny:
		return "any"
	case ShapeObject:
		return "object"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	}
	return "unknown"
}

// Property describes one declared property of a document object type.
type Property struct {
	// Name is the external (JSON/YAML) name and the key in the property store.
	Name string
	// Meta is the metadata attribute name when it differs from Name.
	Meta string
	// Aliases are extra external names accepted on read.
	Aliases []string
	Shape   Shape
	// Elem is the element shape of lists and maps.
	Elem Shape
	// Type names the document object type of objects, list elements or map values.
	Type string
	// Unwrapped map entries are written inline as siblings of the other
	// properties instead of under Name.
	Unwrapped bool
	// KeyAttr is the metadata attribute naming each nested instance of a map.
	KeyAttr string
	// ValueAttr is the metadata attribute holding the value of each nested
	// instance of a scalar map.
	ValueAttr string
	// BoolSchema accepts a boolean in place of the object.
	BoolSchema bool
}

// MetaName returns the metadata attribute name of p.
func (p Property) MetaName() string {
	if p.Meta != "" {
		return p.Meta
	}
	return p.Name
}

// MetaKey returns the attribute naming nested instances of a map property.
func (p Property) MetaKey() string {
	if p.KeyAttr != "" {
		return p.KeyAttr
	}
	return "name"
}

// Descriptor is the immutable type description shared by every object of a
// document object type.
type Descriptor struct {
	Name       string
	Properties []Property
	Extensible bool
	// Category is the reference category; ref.None marks non-referable types.
	Category ref.Category

	byName map[string]int
	mapIdx int
}

func newDescriptor(name string, extensible bool, c ref.Category, props ...Property) *Descriptor {
	d := &Descriptor{Name: name, Properties: props, Extensible: extensible, Category: c, byName: map[string]int{}, mapIdx: -1}
	for i, p := range props {
		d.byName[p.Name] = i
		for _, a := range p.Aliases {
			d.byName[a] = i
		}
		if p.Unwrapped {
			d.mapIdx = i
		}
	}
	return d
}

// Referable reports whether objects of this type may hold a "$ref".
func (d *Descriptor) Referable() bool { return d.Category != ref.None }

// Property returns the declared property with the given external name or alias.
func (d *Descriptor) Property(name string) (Property, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Property{}, false
	}
	return d.Properties[i], true
}

// MapProperty returns the unwrapped map property of a map model type.
func (d *Descriptor) MapProperty() (Property, bool) {
	if d.mapIdx < 0 {
		return Property{}, false
	}
	return d.Properties[d.mapIdx], true
}

type entry struct {
	desc *Descriptor
	ctor func() Object
}

var (
	registry = map[string]entry{}
	order    []string
)

func register(d *Descriptor, ctor func() Object) {
	registry[d.Name] = entry{desc: d, ctor: ctor}
	order = append(order, d.Name)
}

// Lookup returns the descriptor of the named type.
func Lookup(name string) (*Descriptor, error) {
	e, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedType, "unsupported document object type %q", name)
	}
	return e.desc, nil
}

// Create returns a new empty object of the named type.
func Create(name string) (Object, error) {
	e, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedType, "unsupported document object type %q", name)
	}
	return e.ctor(), nil
}

// Types lists every registered type name in registration order.
func Types() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

func scalarProp(name string) Property { return Property{Name: name, Shape: ShapeScalar} }

func anyProp(name string) Property { return Property{Name: name, Shape: ShapeAny} }

func objectProp(name, typ string) Property {
	return Property{Name: name, Shape: ShapeObject, Type: typ}
}

func listProp(name, typ string) Property {
	return Property{Name: name, Shape: ShapeList, Elem: ShapeObject, Type: typ}
}

func scalarListProp(name string) Property {
	return Property{Name: name, Shape: ShapeList, Elem: ShapeScalar}
}

func anyListProp(name string) Property {
	return Property{Name: name, Shape: ShapeList, Elem: ShapeAny}
}

func mapProp(name, typ string) Property {
	return Property{Name: name, Shape: ShapeMap, Elem: ShapeObject, Type: typ}
}

func scalarMapProp(name string) Property {
	return Property{Name: name, Shape: ShapeMap, Elem: ShapeScalar}
}

func anyMapProp(name string) Property {
	return Property{Name: name, Shape: ShapeMap, Elem: ShapeAny}
}

func (p Property) meta(name string) Property {
	p.Meta = name
	return p
}

func (p Property) alias(names ...string) Property {
	p.Aliases = append(p.Aliases, names...)
	return p
}

func (p Property) unwrapped(keyAttr string) Property {
	p.Unwrapped = true
	p.KeyAttr = keyAttr
	return p
}

func (p Property) key(attr string) Property {
	p.KeyAttr = attr
	return p
}

func (p Property) entry(keyAttr, valueAttr string) Property {
	p.KeyAttr = keyAttr
	p.ValueAttr = valueAttr
	return p
}

func (p Property) boolSchema() Property {
	p.BoolSchema = true
	return p
}
