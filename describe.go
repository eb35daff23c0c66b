package oasmodel

import (
	"strings"

	"github.com/Gobd/oasmodel/model"
)

type describe struct {
	desc string
}

// Describe returns a rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(_ string, _, prop *model.Schema) error {
	d := prop.Description()
	if d != "" && !strings.HasSuffix(d, " ") {
		d += " "
	}
	prop.SetDescription(d + r.desc)
	return nil
}
