// Package ref canonicalizes and expands OpenAPI "$ref" values.
//
// Every referable object belongs to a [Category] that owns one container under
// "#/components". A bare component name (no "/") is shorthand for an entry of
// that container:
//
//	ref.Canonicalize(ref.Schema, "Pet")            // "#/components/schemas/Pet"
//	ref.Canonicalize(ref.Schema, "other.yaml#/Pet") // unchanged
package ref

import (
	"strings"
)

// Category identifies the component container a reference points into.
type Category int

const (
	None Category = iota
	Schema
	Response
	Parameter
	Example
	Header
	Link
	Callback
	SecurityScheme
	RequestBody
	PathItem
)

// ComponentsPrefix is the JSON pointer of the components object.
const ComponentsPrefix = "#/components/"

var containers = map[Category]string{
	Schema:         "schemas",
	Response:       "responses",
	Parameter:      "parameters",
	Example:        "examples",
	Header:         "headers",
	Link:           "links",
	Callback:       "callbacks",
	SecurityScheme: "securitySchemes",
	RequestBody:    "requestBodies",
	PathItem:       "pathItems",
}

var names = map[Category]string{
	Schema:         "schema",
	Response:       "response",
	Parameter:      "parameter",
	Example:        "example",
	Header:         "header",
	Link:           "link",
	Callback:       "callback",
	SecurityScheme: "security-scheme",
	RequestBody:    "request-body",
	PathItem:       "path-item",
}

// Categories lists every category in components write order.
func Categories() []Category {
	return []Category{Schema, Response, Parameter, Example, RequestBody, Header, SecurityScheme, Link, Callback, PathItem}
}

func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "none"
}

// Container returns the components property holding this category.
func (c Category) Container() string {
	return containers[c]
}

// Prefix returns the JSON pointer prefix of this category, without the
// trailing slash.
func (c Category) Prefix() string {
	if c == None {
		return ""
	}
	return ComponentsPrefix + c.Container()
}

// CategoryOf returns the category owning the named components property.
func CategoryOf(container string) (Category, bool) {
	for c, name := range containers {
		if name == container {
			return c, true
		}
	}
	return None, false
}

// Canonicalize rewrites a bare component name into a full pointer for c.
// Values that already contain a path separator are returned unchanged.
func Canonicalize(c Category, raw string) string {
	if raw == "" || c == None || strings.Contains(raw, "/") {
		return raw
	}
	return c.Prefix() + "/" + raw
}

// IsBare reports whether raw is a bare component name.
func IsBare(raw string) bool {
	return raw != "" && !strings.Contains(raw, "/")
}

// Parse splits a local components pointer into its category and name.
func Parse(pointer string) (Category, string, bool) {
	rest, ok := strings.CutPrefix(pointer, ComponentsPrefix)
	if !ok {
		return None, "", false
	}
	container, name, ok := strings.Cut(rest, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return None, "", false
	}
	c, ok := CategoryOf(container)
	if !ok {
		return None, "", false
	}
	return c, unescape(name), true
}

// unescape decodes JSON pointer escapes in a single token.
func unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(token)
}
