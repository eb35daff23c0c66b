package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type requiredRule struct{}

// Required marks the field as required in its parent schema.
var Required Rule = requiredRule{}

func (requiredRule) Describe(name string, parent, _ *model.Schema) error {
	if parent != nil && name != "" {
		parent.AddRequired(name)
	}
	return nil
}
