package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type defaulter struct {
	a any
}

// Default returns a rule that sets the schema default value.
func Default(a any) Rule {
	return defaulter{
		a: a,
	}
}

func (r defaulter) Describe(_ string, _, prop *model.Schema) error {
	prop.SetDefault(plain(r.a))
	return nil
}
