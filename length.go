package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type lengthRule struct {
	min, max int
}

// Length returns a rule that bounds the length of a string or array.
// A bound of zero or less is left open.
func Length(lo, hi int) Rule {
	return &lengthRule{lo, hi}
}

func (r *lengthRule) Describe(_ string, _, prop *model.Schema) error {
	lo, hi := bound(r.min), bound(r.max)
	if prop.Type() == model.TypeArray {
		prop.SetMinItems(lo).SetMaxItems(hi)
		return nil
	}
	prop.SetMinLength(lo).SetMaxLength(hi)
	return nil
}

func bound(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
