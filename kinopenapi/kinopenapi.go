// Package kinopenapi bridges document graphs to github.com/getkin/kin-openapi.
//
// Conversions go through the JSON form, so everything kin-openapi does not
// model (private extensions, unknown fields) is lost on the way over.
package kinopenapi

import (
	"context"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
)

// ToOpenAPI3 converts doc into a kin-openapi document with local references
// resolved.
func ToOpenAPI3(ctx context.Context, doc *model.OpenAPI) (*openapi3.T, error) {
	data, err := oasio.Marshal(doc, tree.JSON)
	if err != nil {
		return nil, err
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	t, err := loader.LoadFromData(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to load document into kin-openapi")
	}
	return t, nil
}

// FromOpenAPI3 reads a kin-openapi document back into a document graph.
func FromOpenAPI3(t *openapi3.T) (*model.OpenAPI, error) {
	if t == nil {
		return model.NewOpenAPI(), nil
	}
	data, err := t.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to encode kin-openapi document")
	}
	return oasio.Unmarshal(data)
}

// Validate checks doc with the kin-openapi validator.
func Validate(ctx context.Context, doc *model.OpenAPI, opts ...openapi3.ValidationOption) error {
	t, err := ToOpenAPI3(ctx, doc)
	if err != nil {
		return err
	}
	if err := t.Validate(ctx, opts...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "document is invalid")
	}
	return nil
}

// SchemaFromOpenAPI3 converts a kin-openapi schema.
func SchemaFromOpenAPI3(ref *openapi3.SchemaRef) (*model.Schema, error) {
	if ref == nil {
		return model.NewSchema(), nil
	}
	data, err := json.Marshal(ref)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to encode kin-openapi schema")
	}
	n, err := tree.Parse(data)
	if err != nil {
		return nil, err
	}
	obj, err := oasio.New().ReadTree("Schema", n)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return model.NewSchema(), nil
	}
	return obj.(*model.Schema), nil
}

// SchemaForValue infers a schema for the Go type of value with openapi3gen.
func SchemaForValue(value any, opts ...openapi3gen.Option) (*model.Schema, error) {
	if value == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot infer a schema for nil")
	}
	ref, err := openapi3gen.NewSchemaRefForValue(value, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupportedType, err, "failed to infer schema for %T", value)
	}
	return SchemaFromOpenAPI3(ref)
}
