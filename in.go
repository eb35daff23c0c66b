package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

// In returns a rule that restricts a value to the given values.
func In(values ...any) Rule {
	return &inRule{values}
}

type inRule struct {
	values []any
}

func (r *inRule) Describe(_ string, _, prop *model.Schema) error {
	enum := make([]any, len(r.values))
	for i, v := range r.values {
		enum[i] = plain(v)
	}
	prop.SetEnum(enum)
	return nil
}
