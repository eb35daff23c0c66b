package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

// NotNil documents that a value must not be null.
var NotNil Rule = notNilRule{}

type notNilRule struct{}

func (r notNilRule) Describe(_ string, _, prop *model.Schema) error {
	prop.SetNullable(false)
	return nil
}
