package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

// Nil documents that a value must be null.
var Nil Rule = absentRule{}

// Empty documents that a value present must be empty.
var Empty Rule = absentRule{skipNil: true}

type absentRule struct {
	skipNil bool
}

func (r absentRule) Describe(name string, parent, prop *model.Schema) error {
	if r.skipNil {
		return Describe("empty").Describe(name, parent, prop)
	}
	prop.SetNullable(true)
	return Describe("null").Describe(name, parent, prop)
}
