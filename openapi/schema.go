package openapi

import (
	av "github.com/Gobd/oasmodel"
	"github.com/Gobd/oasmodel/model"
)

// NewSchemaForValue generates a schema for the given value, applying the
// rules of types that implement [oasmodel.Ruler], [oasmodel.ContextRuler],
// or [oasmodel.ValueRuler].
func NewSchemaForValue(value any) (*model.Schema, error) {
	return av.SchemaFor(value)
}
