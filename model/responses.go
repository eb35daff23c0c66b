package model

import (
	"github.com/Gobd/oasmodel/ref"
)

// DefaultResponse is the reserved response key for the default response.
const DefaultResponse = "default"

var apiResponsesType = newDescriptor("APIResponses", true, ref.None,
	mapProp("responses", "APIResponse").unwrapped("responseCode"),
)

// APIResponses maps status codes to responses. The "default" entry is also
// reachable through Default and SetDefault.
type APIResponses struct {
	extensible
	Entries[*APIResponse]
}

func NewAPIResponses() *APIResponses {
	r := &APIResponses{}
	r.init(apiResponsesType)
	r.Entries = entries[*APIResponse](&r.node, "responses")
	return r
}

// AddAPIResponse stores resp under code and returns r.
func (r *APIResponses) AddAPIResponse(code string, resp *APIResponse) *APIResponses {
	r.Put(code, resp)
	return r
}

// APIResponse returns the response stored under code.
func (r *APIResponses) APIResponse(code string) *APIResponse {
	v, _ := r.Get(code)
	return v
}

// RemoveAPIResponse deletes the response stored under code.
func (r *APIResponses) RemoveAPIResponse(code string) { r.Remove(code) }

// Default returns the default response.
func (r *APIResponses) Default() *APIResponse { return r.APIResponse(DefaultResponse) }

// SetDefault stores the default response. A nil value removes it.
func (r *APIResponses) SetDefault(v *APIResponse) *APIResponses {
	r.Put(DefaultResponse, v)
	return r
}

var apiResponseType = newDescriptor("APIResponse", true, ref.Response,
	scalarProp("description"),
	mapProp("headers", "Header"),
	objectProp("content", "Content"),
	mapProp("links", "Link"),
)

type APIResponse struct {
	referable
}

func NewAPIResponse() *APIResponse {
	r := &APIResponse{}
	r.init(apiResponseType)
	return r
}

func (r *APIResponse) Description() string { return r.str("description") }

func (r *APIResponse) SetDescription(v string) *APIResponse {
	r.setStr("description", v)
	return r
}

func (r *APIResponse) Headers() Entries[*Header] { return entries[*Header](&r.node, "headers") }

func (r *APIResponse) Content() *Content { return getObject[*Content](&r.node, "content") }

func (r *APIResponse) SetContent(v *Content) *APIResponse {
	setObject(&r.node, "content", v)
	return r
}

func (r *APIResponse) Links() Entries[*Link] { return entries[*Link](&r.node, "links") }
