package oasmodel

import (
	"fmt"
	"strings"

	"github.com/Gobd/oasmodel/model"
)

// KeyIn documents the keys a map may hold.
func KeyIn(values ...string) Rule {
	return &keyInRule{values}
}

type keyInRule struct {
	values []string
}

func (r *keyInRule) Describe(name string, parent, prop *model.Schema) error {
	desc := fmt.Sprintf("keys must be in (%s)", strings.Join(r.values, ","))
	return Describe(desc).Describe(name, parent, prop)
}
