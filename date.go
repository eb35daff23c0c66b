package oasmodel

import (
	"time"

	"github.com/Gobd/oasmodel/model"
)

// DateRule documents a string holding a date in a given layout. Use [Date]
// to create one, then chain [DateRule.Min] and [DateRule.Max] to document
// the allowed range.
type DateRule struct {
	layout   string
	min, max time.Time
}

// Date creates a date rule with the given layout format. The date-only and
// RFC 3339 layouts map to the "date" and "date-time" formats; any other
// layout is recorded as the format itself.
func Date(layout string) *DateRule {
	return &DateRule{layout: layout}
}

// Min sets the earliest allowed date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	return r
}

// Max sets the latest allowed date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	return r
}

// Describe implements [Rule] by setting the format and date range on the schema.
func (r *DateRule) Describe(name string, parent, prop *model.Schema) error {
	switch r.layout {
	case time.DateOnly:
		prop.SetFormat("date")
	case time.RFC3339, time.RFC3339Nano:
		prop.SetFormat("date-time")
	default:
		prop.SetFormat(r.layout)
	}
	if !r.min.IsZero() {
		if err := Describe("> "+r.min.Format(r.layout)).Describe(name, parent, prop); err != nil {
			return err
		}
	}
	if !r.max.IsZero() {
		return Describe("< "+r.max.Format(r.layout)).Describe(name, parent, prop)
	}
	return nil
}
