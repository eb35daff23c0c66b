package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type uniqueRule struct {
	desc string
}

// Unique returns a rule that marks array items as unique. A non-empty desc
// says what makes two items equal and is appended to the description.
func Unique(desc string) Rule {
	return uniqueRule{desc: desc}
}

func (r uniqueRule) Describe(name string, parent, prop *model.Schema) error {
	prop.SetUniqueItems(true)
	if r.desc == "" {
		return nil
	}
	return Describe("Unique by "+r.desc+".").Describe(name, parent, prop)
}
