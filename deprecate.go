package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type deprecate struct{}

// Deprecate returns a rule that marks the field as deprecated.
func Deprecate() Rule {
	return &deprecate{}
}

func (r *deprecate) Describe(_ string, _, prop *model.Schema) error {
	prop.SetDeprecated(true)
	return nil
}
