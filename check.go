package oasmodel

import (
	"context"
	"reflect"
	"strings"
)

// MissingRules returns the names of exported struct fields that have no
// corresponding rule in the Ruler's Rules(). Embedded Ruler fields are
// expanded and their inner fields checked recursively.
//
// Automatically excluded:
//   - json:"-"
//   - docs:"skip"
//   - rules:"-"  (field intentionally has no rules)
//
// Use in tests to catch undocumented fields:
//
//	assert.Empty(t, oasmodel.MissingRules(&MyStruct{}))
//	assert.Empty(t, oasmodel.MissingRules(&MyStruct{}, "OptionalField"))
func MissingRules(structPtr any, exclude ...string) []string {
	var fields []*FieldRules
	switch r := structPtr.(type) {
	case Ruler:
		fields = r.Rules()
	case ContextRuler:
		fields = r.Rules(context.Background())
	default:
		return nil
	}

	fields = ExpandFields(context.Background(), structPtr, fields)

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := map[string]bool{}
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		if sf := FindStructField(structVal, fv); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	// Accepts both Go field names and json tag names.
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(structVal.Type(), excl, covered, &missing)
	return missing
}

func collectUncovered(t reflect.Type, excl, covered map[string]bool, missing *[]string) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectUncovered(inner, excl, covered, missing)
			}
			continue
		}
		if !sf.IsExported() || strings.Split(sf.Tag.Get("json"), ",")[0] == "-" || skipped(sf) || sf.Tag.Get("rules") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] {
			continue
		}
		if !covered[key] {
			*missing = append(*missing, key)
		}
	}
}
