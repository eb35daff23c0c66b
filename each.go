package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

// Each returns a rule that applies the given rules to the elements of a
// slice, array or map. Element schemas have no parent, so Required has no
// effect inside Each.
func Each(rules ...Rule) Rule {
	return &eachRule{rules}
}

type eachRule struct {
	rules []Rule
}

func (r *eachRule) Describe(name string, _, prop *model.Schema) error {
	elem := prop.Items()
	if elem == nil {
		elem = prop.AdditionalPropertiesSchema()
	}
	if elem == nil || model.IsReference(elem) {
		elem = prop
	}
	for i := range r.rules {
		if err := r.rules[i].Describe(name, nil, elem); err != nil {
			return err
		}
	}
	return nil
}
