package oasmodel

import (
	"fmt"
	"regexp"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
)

type patternRule struct {
	pattern string
	desc    string
}

// Pattern returns a rule that sets the schema pattern. A non-empty desc is
// appended to the description. The pattern must compile.
func Pattern(pattern, desc string) Rule {
	return patternRule{pattern, desc}
}

// DecimalMax returns a rule documenting that a numeric string has no more
// than i decimal places.
func DecimalMax(i uint) Rule {
	return patternRule{
		pattern: fmt.Sprintf(`^-?\d*(\.\d{0,%d})?$`, i),
		desc:    fmt.Sprintf("no more than %d decimals", i),
	}
}

func (r patternRule) Describe(name string, parent, prop *model.Schema) error {
	if _, err := regexp.Compile(r.pattern); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid pattern for %s", name)
	}
	prop.SetPattern(r.pattern)
	if r.desc == "" {
		return nil
	}
	return Describe(r.desc).Describe(name, parent, prop)
}
