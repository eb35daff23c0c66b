package model

import (
	"slices"

	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
)

// Schema types.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
	TypeNull    = "null"
)

var schemaType = newDescriptor("Schema", true, ref.Schema,
	anyProp("type"),
	scalarProp("format"),
	scalarProp("title"),
	scalarProp("description"),
	anyProp("default").meta("defaultValue"),
	anyListProp("enum").meta("enumeration"),
	anyProp("const").meta("constValue"),
	scalarProp("multipleOf"),
	scalarProp("maximum"),
	scalarProp("exclusiveMaximum"),
	scalarProp("minimum"),
	scalarProp("exclusiveMinimum"),
	scalarProp("maxLength"),
	scalarProp("minLength"),
	scalarProp("pattern"),
	scalarProp("maxItems"),
	scalarProp("minItems"),
	scalarProp("uniqueItems"),
	scalarProp("maxProperties"),
	scalarProp("minProperties"),
	scalarListProp("required"),
	mapProp("properties", "Schema"),
	objectProp("additionalProperties", "Schema").boolSchema(),
	mapProp("patternProperties", "Schema"),
	objectProp("items", "Schema").boolSchema(),
	listProp("prefixItems", "Schema"),
	listProp("allOf", "Schema"),
	listProp("anyOf", "Schema"),
	listProp("oneOf", "Schema"),
	objectProp("not", "Schema").boolSchema(),
	objectProp("discriminator", "Discriminator"),
	scalarProp("readOnly"),
	scalarProp("writeOnly"),
	scalarProp("nullable"),
	objectProp("xml", "XML"),
	objectProp("externalDocs", "ExternalDocumentation"),
	anyProp("example"),
	anyListProp("examples"),
	scalarProp("deprecated"),
	scalarProp("contentMediaType"),
	scalarProp("contentEncoding"),
)

// Schema is a JSON Schema object.
type Schema struct {
	referable
}

func NewSchema() *Schema {
	s := &Schema{}
	s.init(schemaType)
	return s
}

// Type returns the schema type. When several types are listed the first one
// is returned.
func (s *Schema) Type() string {
	switch t := s.value("type").(type) {
	case string:
		return t
	case []any:
		for _, e := range t {
			if str, ok := e.(string); ok {
				return str
			}
		}
	}
	return ""
}

// Types returns every listed type.
func (s *Schema) Types() []string {
	switch t := s.value("type").(type) {
	case string:
		return []string{t}
	case []any:
		return s.strs("type")
	}
	return nil
}

func (s *Schema) SetType(v string) *Schema {
	s.setStr("type", v)
	return s
}

// SetTypes stores a type list. A single type is stored as a plain string.
func (s *Schema) SetTypes(v []string) *Schema {
	if len(v) == 1 {
		return s.SetType(v[0])
	}
	s.setStrs("type", v)
	return s
}

func (s *Schema) Format() string { return s.str("format") }

func (s *Schema) SetFormat(v string) *Schema {
	s.setStr("format", v)
	return s
}

func (s *Schema) Title() string { return s.str("title") }

func (s *Schema) SetTitle(v string) *Schema {
	s.setStr("title", v)
	return s
}

func (s *Schema) Description() string { return s.str("description") }

func (s *Schema) SetDescription(v string) *Schema {
	s.setStr("description", v)
	return s
}

func (s *Schema) Default() any { return s.value("default") }

func (s *Schema) SetDefault(v any) *Schema {
	s.setValue("default", v)
	return s
}

func (s *Schema) Enum() []any {
	list, _ := store.List(s.props, "enum")
	return slices.Clone(list)
}

func (s *Schema) SetEnum(v []any) *Schema {
	s.props.Set("enum", anyList(v))
	return s
}

func (s *Schema) AddEnum(v any) *Schema {
	s.props.AddToList("enum", v)
	return s
}

func (s *Schema) Const() any { return s.value("const") }

func (s *Schema) SetConst(v any) *Schema {
	s.setValue("const", v)
	return s
}

func (s *Schema) MultipleOf() *float64 { return s.floatPtr("multipleOf") }

func (s *Schema) SetMultipleOf(v *float64) *Schema {
	s.setFloatPtr("multipleOf", v)
	return s
}

func (s *Schema) Maximum() *float64 { return s.floatPtr("maximum") }

func (s *Schema) SetMaximum(v *float64) *Schema {
	s.setFloatPtr("maximum", v)
	return s
}

// ExclusiveMaximum is a number in OpenAPI 3.1 and a boolean in 3.0.
func (s *Schema) ExclusiveMaximum() any { return s.value("exclusiveMaximum") }

func (s *Schema) SetExclusiveMaximum(v any) *Schema {
	s.setValue("exclusiveMaximum", v)
	return s
}

func (s *Schema) Minimum() *float64 { return s.floatPtr("minimum") }

func (s *Schema) SetMinimum(v *float64) *Schema {
	s.setFloatPtr("minimum", v)
	return s
}

// ExclusiveMinimum is a number in OpenAPI 3.1 and a boolean in 3.0.
func (s *Schema) ExclusiveMinimum() any { return s.value("exclusiveMinimum") }

func (s *Schema) SetExclusiveMinimum(v any) *Schema {
	s.setValue("exclusiveMinimum", v)
	return s
}

func (s *Schema) MaxLength() *int { return s.intPtr("maxLength") }

func (s *Schema) SetMaxLength(v *int) *Schema {
	s.setIntPtr("maxLength", v)
	return s
}

func (s *Schema) MinLength() *int { return s.intPtr("minLength") }

func (s *Schema) SetMinLength(v *int) *Schema {
	s.setIntPtr("minLength", v)
	return s
}

func (s *Schema) Pattern() string { return s.str("pattern") }

func (s *Schema) SetPattern(v string) *Schema {
	s.setStr("pattern", v)
	return s
}

func (s *Schema) MaxItems() *int { return s.intPtr("maxItems") }

func (s *Schema) SetMaxItems(v *int) *Schema {
	s.setIntPtr("maxItems", v)
	return s
}

func (s *Schema) MinItems() *int { return s.intPtr("minItems") }

func (s *Schema) SetMinItems(v *int) *Schema {
	s.setIntPtr("minItems", v)
	return s
}

func (s *Schema) UniqueItems() bool { return s.flag("uniqueItems") }

func (s *Schema) SetUniqueItems(v bool) *Schema {
	s.setFlag("uniqueItems", v)
	return s
}

func (s *Schema) MaxProperties() *int { return s.intPtr("maxProperties") }

func (s *Schema) SetMaxProperties(v *int) *Schema {
	s.setIntPtr("maxProperties", v)
	return s
}

func (s *Schema) MinProperties() *int { return s.intPtr("minProperties") }

func (s *Schema) SetMinProperties(v *int) *Schema {
	s.setIntPtr("minProperties", v)
	return s
}

func (s *Schema) Required() []string { return s.strs("required") }

func (s *Schema) SetRequired(v []string) *Schema {
	s.setStrs("required", v)
	return s
}

// AddRequired lists name as required once.
func (s *Schema) AddRequired(name string) *Schema {
	for _, r := range s.Required() {
		if r == name {
			return s
		}
	}
	s.props.AddToList("required", name)
	return s
}

func (s *Schema) RemoveRequired(name string) { s.props.RemoveFromList("required", name) }

// SchemaProperties returns the property schemas keyed by property name.
func (s *Schema) SchemaProperties() Entries[*Schema] { return entries[*Schema](&s.node, "properties") }

// AddProperty stores a property schema and returns s.
func (s *Schema) AddProperty(name string, v *Schema) *Schema {
	s.SchemaProperties().Put(name, v)
	return s
}

// AdditionalPropertiesSchema returns additionalProperties when it is a schema.
func (s *Schema) AdditionalPropertiesSchema() *Schema {
	return getObject[*Schema](&s.node, "additionalProperties")
}

// AdditionalPropertiesBoolean returns additionalProperties when it is a boolean.
func (s *Schema) AdditionalPropertiesBoolean() *bool { return s.boolPtr("additionalProperties") }

func (s *Schema) SetAdditionalPropertiesSchema(v *Schema) *Schema {
	setObject(&s.node, "additionalProperties", v)
	return s
}

func (s *Schema) SetAdditionalPropertiesBoolean(v *bool) *Schema {
	s.setBoolPtr("additionalProperties", v)
	return s
}

func (s *Schema) PatternProperties() Entries[*Schema] {
	return entries[*Schema](&s.node, "patternProperties")
}

func (s *Schema) Items() *Schema { return getObject[*Schema](&s.node, "items") }

func (s *Schema) SetItems(v *Schema) *Schema {
	setObject(&s.node, "items", v)
	return s
}

func (s *Schema) PrefixItems() []*Schema { return getList[*Schema](&s.node, "prefixItems") }

func (s *Schema) SetPrefixItems(v []*Schema) *Schema {
	setList(&s.node, "prefixItems", v)
	return s
}

func (s *Schema) AllOf() []*Schema { return getList[*Schema](&s.node, "allOf") }

func (s *Schema) SetAllOf(v []*Schema) *Schema {
	setList(&s.node, "allOf", v)
	return s
}

func (s *Schema) AddAllOf(v *Schema) *Schema {
	addToList(&s.node, "allOf", v)
	return s
}

func (s *Schema) AnyOf() []*Schema { return getList[*Schema](&s.node, "anyOf") }

func (s *Schema) SetAnyOf(v []*Schema) *Schema {
	setList(&s.node, "anyOf", v)
	return s
}

func (s *Schema) AddAnyOf(v *Schema) *Schema {
	addToList(&s.node, "anyOf", v)
	return s
}

func (s *Schema) OneOf() []*Schema { return getList[*Schema](&s.node, "oneOf") }

func (s *Schema) SetOneOf(v []*Schema) *Schema {
	setList(&s.node, "oneOf", v)
	return s
}

func (s *Schema) AddOneOf(v *Schema) *Schema {
	addToList(&s.node, "oneOf", v)
	return s
}

func (s *Schema) Not() *Schema { return getObject[*Schema](&s.node, "not") }

func (s *Schema) SetNot(v *Schema) *Schema {
	setObject(&s.node, "not", v)
	return s
}

func (s *Schema) Discriminator() *Discriminator {
	return getObject[*Discriminator](&s.node, "discriminator")
}

func (s *Schema) SetDiscriminator(v *Discriminator) *Schema {
	setObject(&s.node, "discriminator", v)
	return s
}

func (s *Schema) ReadOnly() bool { return s.flag("readOnly") }

func (s *Schema) SetReadOnly(v bool) *Schema {
	s.setFlag("readOnly", v)
	return s
}

func (s *Schema) WriteOnly() bool { return s.flag("writeOnly") }

func (s *Schema) SetWriteOnly(v bool) *Schema {
	s.setFlag("writeOnly", v)
	return s
}

func (s *Schema) Nullable() bool { return s.flag("nullable") }

func (s *Schema) SetNullable(v bool) *Schema {
	s.setFlag("nullable", v)
	return s
}

func (s *Schema) XML() *XML { return getObject[*XML](&s.node, "xml") }

func (s *Schema) SetXML(v *XML) *Schema {
	setObject(&s.node, "xml", v)
	return s
}

func (s *Schema) ExternalDocs() *ExternalDocumentation {
	return getObject[*ExternalDocumentation](&s.node, "externalDocs")
}

func (s *Schema) SetExternalDocs(v *ExternalDocumentation) *Schema {
	setObject(&s.node, "externalDocs", v)
	return s
}

func (s *Schema) Example() any { return s.value("example") }

func (s *Schema) SetExample(v any) *Schema {
	s.setValue("example", v)
	return s
}

func (s *Schema) Examples() []any {
	list, _ := store.List(s.props, "examples")
	return slices.Clone(list)
}

func (s *Schema) AddExample(v any) *Schema {
	s.props.AddToList("examples", v)
	return s
}

func (s *Schema) Deprecated() bool { return s.flag("deprecated") }

func (s *Schema) SetDeprecated(v bool) *Schema {
	s.setFlag("deprecated", v)
	return s
}

var discriminatorType = newDescriptor("Discriminator", true, ref.None,
	scalarProp("propertyName"),
	scalarMapProp("mapping").entry("value", "schema"),
)

type Discriminator struct {
	extensible
}

func NewDiscriminator() *Discriminator {
	d := &Discriminator{}
	d.init(discriminatorType)
	return d
}

func (d *Discriminator) PropertyName() string { return d.str("propertyName") }

func (d *Discriminator) SetPropertyName(v string) *Discriminator {
	d.setStr("propertyName", v)
	return d
}

// Mapping returns the discriminator values keyed to schema references.
func (d *Discriminator) Mapping() Entries[string] { return entries[string](&d.node, "mapping") }

var xmlType = newDescriptor("XML", true, ref.None,
	scalarProp("name"),
	scalarProp("namespace"),
	scalarProp("prefix"),
	scalarProp("attribute"),
	scalarProp("wrapped"),
)

type XML struct {
	extensible
}

func NewXML() *XML {
	x := &XML{}
	x.init(xmlType)
	return x
}

func (x *XML) Name() string { return x.str("name") }

func (x *XML) SetName(v string) *XML {
	x.setStr("name", v)
	return x
}

func (x *XML) Namespace() string { return x.str("namespace") }

func (x *XML) SetNamespace(v string) *XML {
	x.setStr("namespace", v)
	return x
}

func (x *XML) Prefix() string { return x.str("prefix") }

func (x *XML) SetPrefix(v string) *XML {
	x.setStr("prefix", v)
	return x
}

func (x *XML) Attribute() bool { return x.flag("attribute") }

func (x *XML) SetAttribute(v bool) *XML {
	x.setFlag("attribute", v)
	return x
}

func (x *XML) Wrapped() bool { return x.flag("wrapped") }

func (x *XML) SetWrapped(v bool) *XML {
	x.setFlag("wrapped", v)
	return x
}

// Ptr returns a pointer to v, for the optional numeric and boolean setters.
func Ptr[T any](v T) *T { return &v }
