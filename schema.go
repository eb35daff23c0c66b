package oasmodel

import (
	"context"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/kinopenapi"
	"github.com/Gobd/oasmodel/model"
)

// SchemaFor infers the schema of value's Go type and applies the rules of
// every [Ruler], [ContextRuler] and [ValueRuler] type found in it.
// Fields tagged docs:"skip" are removed.
func SchemaFor(value any, opts ...openapi3gen.Option) (*model.Schema, error) {
	return SchemaForCtx(context.Background(), value, opts...)
}

// SchemaForCtx is like SchemaFor but passes ctx to ContextRuler.Rules().
func SchemaForCtx(ctx context.Context, value any, opts ...openapi3gen.Option) (*model.Schema, error) {
	s, err := kinopenapi.SchemaForValue(value, opts...)
	if err != nil {
		return nil, err
	}
	d := describer{ctx: ctx}
	if err := d.describeType(reflect.TypeOf(value), "", nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

type describer struct {
	ctx context.Context
}

func (d describer) describeType(t reflect.Type, name string, parent, s *model.Schema) error {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if s == nil || model.IsReference(s) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if err := d.describeStruct(t, s); err != nil {
			return err
		}
	case reflect.Slice, reflect.Array:
		if err := d.describeType(t.Elem(), name, s, s.Items()); err != nil {
			return err
		}
	case reflect.Map:
		if err := d.describeType(t.Elem(), name, s, s.AdditionalPropertiesSchema()); err != nil {
			return err
		}
	}
	return applyValueRules(t, name, parent, s)
}

func (d describer) describeStruct(t reflect.Type, s *model.Schema) error {
	if err := d.describeFields(t, s); err != nil {
		return err
	}
	removeSkippedFields(t, s)

	ptr, fields := d.rulesFor(t)
	if ptr == nil {
		return nil
	}
	fields = ExpandFields(d.ctx, ptr, fields)
	if err := mapFieldsToTags(fields, reflect.Indirect(reflect.ValueOf(ptr))); err != nil {
		return err
	}
	return applyRulesToSchema(fields, s)
}

// describeFields describes the schemas of nested field types. Embedded
// structs are flattened into s.
func (d describer) describeFields(t reflect.Type, s *model.Schema) error {
	props := s.SchemaProperties()
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous && sf.Tag.Get("json") == "" {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if err := d.describeFields(inner, s); err != nil {
					return err
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		key := fieldKey(sf)
		prop, ok := props.Get(key)
		if !ok {
			continue
		}
		if err := d.describeType(sf.Type, key, s, prop); err != nil {
			return err
		}
	}
	return nil
}

// rulesFor returns a new *t and its rules if t implements Ruler or ContextRuler.
func (d describer) rulesFor(t reflect.Type) (any, []*FieldRules) {
	inst := reflect.New(t)
	if r, ok := inst.Interface().(Ruler); ok {
		return inst.Interface(), r.Rules()
	}
	if r, ok := inst.Interface().(ContextRuler); ok {
		return inst.Interface(), r.Rules(d.ctx)
	}
	return nil, nil
}

// removeSkippedFields deletes schema properties for fields tagged with docs:"skip".
// Recurses into embedded (anonymous) struct fields.
func removeSkippedFields(t reflect.Type, s *model.Schema) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				removeSkippedFields(inner, s)
			}
			continue
		}
		if !skipped(sf) {
			continue
		}
		key := fieldKey(sf)
		s.SchemaProperties().Remove(key)
		s.RemoveRequired(key)
	}
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its property name
// using struct field address comparison.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return errors.New(errors.ErrCodeInvalidInput, "rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := FindStructField(structVal, fv)
		if sf == nil {
			return errors.New(errors.ErrCodeInvalidInput, "rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		if sf.Anonymous {
			fields[i].tag = ""
			continue
		}
		fields[i].tag = fieldKey(*sf)
	}
	return nil
}

// applyRulesToSchema calls Describe on each rule for matching schema properties.
// The property is looked up again for every rule since a rule may replace it.
func applyRulesToSchema(fields []*FieldRules, s *model.Schema) error {
	props := s.SchemaProperties()
	for _, k := range props.Keys() {
		for _, f := range fields {
			if f.tag != k {
				continue
			}
			for _, rule := range f.rules {
				prop, ok := props.Get(k)
				if !ok {
					break
				}
				if err := rule.Describe(k, s, prop); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// applyValueRules applies the rules of a ValueRuler type to its schema.
func applyValueRules(t reflect.Type, name string, parent, s *model.Schema) error {
	inst := reflect.New(t)
	vr, ok := inst.Interface().(ValueRuler)
	if !ok {
		if vr, ok = inst.Elem().Interface().(ValueRuler); !ok {
			return nil
		}
	}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, parent, s); err != nil {
			return err
		}
	}
	return nil
}
