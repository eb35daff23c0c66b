package openapi

import (
	"net/http"
	"slices"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
)

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Tags        []string
	Request     any                 // single request body type (convenience)
	Requests    []any               // multiple request body types (oneOf)
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
	Profiles    []string            // profile names used by oasmodel profile filtering
}

const jsonMediaType = "application/json"

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(vs ...any) *model.RequestBody {
	o, err := NewRequest(vs...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates a JSON request body from the given value types.
// Several values are wrapped in a oneOf schema.
func NewRequest(vs ...any) (*model.RequestBody, error) {
	if len(vs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no values given")
	}
	content, err := jsonContent(vs)
	if err != nil {
		return nil, err
	}
	return model.NewRequestBody().SetContent(content), nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *model.APIResponses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates a responses object. Status codes are added in sorted
// order. Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*model.APIResponses, error) {
	if len(vs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no values given")
	}

	codes := make([]string, 0, len(vs))
	for code := range vs {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	responses := model.NewAPIResponses()
	for _, code := range codes {
		resp := model.NewAPIResponse().SetDescription(vs[code].Desc)
		if len(vs[code].Bodies) > 0 {
			content, err := jsonContent(vs[code].Bodies)
			if err != nil {
				return nil, err
			}
			resp.SetContent(content)
		}
		responses.AddAPIResponse(code, resp)
	}
	return responses, nil
}

func jsonContent(vs []any) (*model.Content, error) {
	wrapper := model.NewSchema()
	for _, v := range vs {
		schema, err := NewSchemaForValue(v)
		if err != nil {
			return nil, err
		}
		wrapper.AddOneOf(schema)
	}
	if one := wrapper.OneOf(); len(one) == 1 {
		wrapper = one[0]
	}
	return model.NewContent().AddMediaType(jsonMediaType, model.NewMediaType().SetSchema(wrapper)), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *model.OpenAPI {
	return model.NewOpenAPI().
		SetOpenAPI("3.0.3").
		SetInfo(model.NewInfo().
			SetTitle(serviceName).
			SetDescription(description).
			SetVersion(version)).
		SetPaths(model.NewPaths())
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(path, method string, doc *model.OpenAPI, op *model.Operation) {
	paths := doc.Paths()
	if paths == nil {
		paths = model.NewPaths()
		doc.SetPaths(paths)
	}

	p := paths.PathItem(path)
	if p == nil {
		p = model.NewPathItem()
	}
	p.SetOperation(method, op)
	paths.AddPathItem(path, p)
}

// addEndpoint builds a [model.Operation] from ep and registers it at path+method.
func addEndpoint(doc *model.OpenAPI, path, method, operationID string, ep Endpoint) {
	op := model.NewOperation().
		SetOperationID(operationID).
		SetSummary(ep.Summary).
		SetDescription(ep.Description)
	for _, tag := range ep.Tags {
		op.AddTag(tag)
	}
	for _, profile := range ep.Profiles {
		model.AddProfile(op, profile)
	}

	// Request body
	switch {
	case len(ep.Requests) > 0:
		op.SetRequestBody(NewRequestMust(ep.Requests...))
	case ep.Request != nil:
		op.SetRequestBody(NewRequestMust(ep.Request))
	}

	// Responses
	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.SetResponses(NewResponseMust(responses))
	} else {
		op.SetResponses(model.NewAPIResponses())
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *model.OpenAPI, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *model.OpenAPI, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *model.OpenAPI, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *model.OpenAPI, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *model.OpenAPI, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
