package oasmodel

import (
	"fmt"
	"strings"

	"github.com/Gobd/oasmodel/model"
)

// WhenRule documents rules that apply conditionally. A schema cannot express
// the condition, so both branches are summarized in the description. Use
// [When] to create one.
type WhenRule struct {
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a rule documenting that rules apply when desc holds.
func When(desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies the rules that apply otherwise.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.elseRules = rules
	return r
}

// describeRules runs rules against scratch schemas and summarizes what they
// set.
func describeRules(name string, typ string, rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	parent := model.NewSchema()
	prop := model.NewSchema().SetType(typ)
	for _, r := range rules {
		if err := r.Describe(name, parent, prop); err != nil {
			return "", err
		}
	}

	var parts []string
	if d := prop.Description(); d != "" {
		parts = append(parts, d)
	}
	if len(parent.Required()) > 0 {
		parts = append(parts, "required")
	}
	if v := prop.Minimum(); v != nil {
		parts = append(parts, fmt.Sprintf("min %g", *v))
	}
	if v := prop.Maximum(); v != nil {
		parts = append(parts, fmt.Sprintf("max %g", *v))
	}
	if v := prop.MinLength(); v != nil {
		parts = append(parts, fmt.Sprintf("min length %d", *v))
	}
	if v := prop.MaxLength(); v != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *v))
	}
	if enum := prop.Enum(); len(enum) > 0 {
		vals := make([]string, len(enum))
		for i, v := range enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if prop.UniqueItems() {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

// Describe implements [Rule] by appending a summary of both branches to the
// schema description.
func (r *WhenRule) Describe(name string, parent, prop *model.Schema) error {
	desc, err := describeRules(name, prop.Type(), r.whenRules)
	if err != nil {
		return err
	}
	if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		if err := Describe(desc).Describe(name, parent, prop); err != nil {
			return err
		}
	}

	desc, err = describeRules(name, prop.Type(), r.elseRules)
	if err != nil {
		return err
	}
	if desc != "" {
		return Describe("else: "+desc).Describe(name, parent, prop)
	}
	return nil
}
