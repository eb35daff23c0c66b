package oasmodel

import (
	"reflect"

	"github.com/Gobd/oasmodel/model"
)

type example struct {
	ex any
}

// Example returns a rule that adds a schema example.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(_ string, _, prop *model.Schema) error {
	prop.AddExample(plain(r.ex))
	return nil
}

// plain converts named scalar types such as type Status string to their
// underlying kind so that they can be written.
func plain(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}
