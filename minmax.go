package oasmodel

import (
	"fmt"
	"reflect"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
)

type thresholdRule struct {
	threshold any
	min       bool
}

// Min returns a rule that sets the inclusive minimum of a number.
// On a string schema the threshold type is recorded as its format, since
// the number travels as text.
func Min(threshold any) Rule {
	return thresholdRule{threshold, true}
}

// Max returns a rule that sets the inclusive maximum of a number.
func Max(threshold any) Rule {
	return thresholdRule{threshold, false}
}

func (r thresholdRule) Describe(_ string, _, prop *model.Schema) error {
	if prop.Type() == model.TypeString {
		prop.SetFormat(fmt.Sprintf("%T", r.threshold))
	}
	f, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.min {
		prop.SetMinimum(&f)
	} else {
		prop.SetMaximum(&f)
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) {
		return 0, errors.New(errors.ErrCodeInvalidInput, "cannot convert %T to float64", unk)
	}
	return v.Convert(floatType).Float(), nil
}
