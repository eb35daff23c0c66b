package model

import (
	"github.com/Gobd/oasmodel/ref"
)

// Parameter locations.
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
	InCookie = "cookie"
)

var parameterType = newDescriptor("Parameter", true, ref.Parameter,
	scalarProp("name"),
	scalarProp("in"),
	scalarProp("description"),
	scalarProp("required"),
	scalarProp("deprecated"),
	scalarProp("allowEmptyValue"),
	scalarProp("style"),
	scalarProp("explode"),
	scalarProp("allowReserved"),
	objectProp("schema", "Schema").boolSchema(),
	anyProp("example"),
	mapProp("examples", "Example"),
	objectProp("content", "Content"),
)

type Parameter struct {
	referable
}

func NewParameter() *Parameter {
	p := &Parameter{}
	p.init(parameterType)
	return p
}

func (p *Parameter) Name() string { return p.str("name") }

func (p *Parameter) SetName(v string) *Parameter {
	p.setStr("name", v)
	return p
}

func (p *Parameter) In() string { return p.str("in") }

func (p *Parameter) SetIn(v string) *Parameter {
	p.setStr("in", v)
	return p
}

func (p *Parameter) Description() string { return p.str("description") }

func (p *Parameter) SetDescription(v string) *Parameter {
	p.setStr("description", v)
	return p
}

func (p *Parameter) Required() *bool { return p.boolPtr("required") }

func (p *Parameter) SetRequired(v bool) *Parameter {
	p.setFlag("required", v)
	return p
}

func (p *Parameter) Deprecated() bool { return p.flag("deprecated") }

func (p *Parameter) SetDeprecated(v bool) *Parameter {
	p.setFlag("deprecated", v)
	return p
}

func (p *Parameter) AllowEmptyValue() bool { return p.flag("allowEmptyValue") }

func (p *Parameter) SetAllowEmptyValue(v bool) *Parameter {
	p.setFlag("allowEmptyValue", v)
	return p
}

func (p *Parameter) Style() string { return p.str("style") }

func (p *Parameter) SetStyle(v string) *Parameter {
	p.setStr("style", v)
	return p
}

func (p *Parameter) Explode() *bool { return p.boolPtr("explode") }

func (p *Parameter) SetExplode(v *bool) *Parameter {
	p.setBoolPtr("explode", v)
	return p
}

func (p *Parameter) AllowReserved() bool { return p.flag("allowReserved") }

func (p *Parameter) SetAllowReserved(v bool) *Parameter {
	p.setFlag("allowReserved", v)
	return p
}

func (p *Parameter) Schema() *Schema { return getObject[*Schema](&p.node, "schema") }

func (p *Parameter) SetSchema(v *Schema) *Parameter {
	setObject(&p.node, "schema", v)
	return p
}

func (p *Parameter) Example() any { return p.value("example") }

func (p *Parameter) SetExample(v any) *Parameter {
	p.setValue("example", v)
	return p
}

func (p *Parameter) Examples() Entries[*Example] { return entries[*Example](&p.node, "examples") }

func (p *Parameter) Content() *Content { return getObject[*Content](&p.node, "content") }

func (p *Parameter) SetContent(v *Content) *Parameter {
	setObject(&p.node, "content", v)
	return p
}

var requestBodyType = newDescriptor("RequestBody", true, ref.RequestBody,
	scalarProp("description"),
	objectProp("content", "Content"),
	scalarProp("required"),
)

type RequestBody struct {
	referable
}

func NewRequestBody() *RequestBody {
	r := &RequestBody{}
	r.init(requestBodyType)
	return r
}

func (r *RequestBody) Description() string { return r.str("description") }

func (r *RequestBody) SetDescription(v string) *RequestBody {
	r.setStr("description", v)
	return r
}

func (r *RequestBody) Content() *Content { return getObject[*Content](&r.node, "content") }

func (r *RequestBody) SetContent(v *Content) *RequestBody {
	setObject(&r.node, "content", v)
	return r
}

func (r *RequestBody) Required() *bool { return r.boolPtr("required") }

func (r *RequestBody) SetRequired(v bool) *RequestBody {
	r.setFlag("required", v)
	return r
}

var contentType = newDescriptor("Content", false, ref.None,
	mapProp("mediaTypes", "MediaType").unwrapped("mediaType"),
)

// Content maps media type names to media type objects.
type Content struct {
	node
	Entries[*MediaType]
}

func NewContent() *Content {
	c := &Content{}
	c.init(contentType)
	c.Entries = entries[*MediaType](&c.node, "mediaTypes")
	return c
}

// AddMediaType stores m under name and returns c.
func (c *Content) AddMediaType(name string, m *MediaType) *Content {
	c.Put(name, m)
	return c
}

// MediaType returns the media type stored under name.
func (c *Content) MediaType(name string) *MediaType {
	v, _ := c.Get(name)
	return v
}

var mediaTypeType = newDescriptor("MediaType", true, ref.None,
	objectProp("schema", "Schema").boolSchema(),
	anyProp("example"),
	mapProp("examples", "Example"),
	mapProp("encoding", "Encoding").key("propertyName"),
)

type MediaType struct {
	extensible
}

func NewMediaType() *MediaType {
	m := &MediaType{}
	m.init(mediaTypeType)
	return m
}

func (m *MediaType) Schema() *Schema { return getObject[*Schema](&m.node, "schema") }

func (m *MediaType) SetSchema(v *Schema) *MediaType {
	setObject(&m.node, "schema", v)
	return m
}

func (m *MediaType) Example() any { return m.value("example") }

func (m *MediaType) SetExample(v any) *MediaType {
	m.setValue("example", v)
	return m
}

func (m *MediaType) Examples() Entries[*Example] { return entries[*Example](&m.node, "examples") }

func (m *MediaType) Encoding() Entries[*Encoding] { return entries[*Encoding](&m.node, "encoding") }

var encodingType = newDescriptor("Encoding", true, ref.None,
	scalarProp("contentType"),
	mapProp("headers", "Header"),
	scalarProp("style"),
	scalarProp("explode"),
	scalarProp("allowReserved"),
)

type Encoding struct {
	extensible
}

func NewEncoding() *Encoding {
	e := &Encoding{}
	e.init(encodingType)
	return e
}

func (e *Encoding) ContentType() string { return e.str("contentType") }

func (e *Encoding) SetContentType(v string) *Encoding {
	e.setStr("contentType", v)
	return e
}

func (e *Encoding) Headers() Entries[*Header] { return entries[*Header](&e.node, "headers") }

func (e *Encoding) Style() string { return e.str("style") }

func (e *Encoding) SetStyle(v string) *Encoding {
	e.setStr("style", v)
	return e
}

func (e *Encoding) Explode() *bool { return e.boolPtr("explode") }

func (e *Encoding) SetExplode(v *bool) *Encoding {
	e.setBoolPtr("explode", v)
	return e
}

func (e *Encoding) AllowReserved() bool { return e.flag("allowReserved") }

func (e *Encoding) SetAllowReserved(v bool) *Encoding {
	e.setFlag("allowReserved", v)
	return e
}

var headerType = newDescriptor("Header", true, ref.Header,
	scalarProp("description"),
	scalarProp("required"),
	scalarProp("deprecated"),
	scalarProp("allowEmptyValue"),
	scalarProp("style"),
	scalarProp("explode"),
	objectProp("schema", "Schema").boolSchema(),
	anyProp("example"),
	mapProp("examples", "Example"),
	objectProp("content", "Content"),
)

type Header struct {
	referable
}

func NewHeader() *Header {
	h := &Header{}
	h.init(headerType)
	return h
}

func (h *Header) Description() string { return h.str("description") }

func (h *Header) SetDescription(v string) *Header {
	h.setStr("description", v)
	return h
}

func (h *Header) Required() *bool { return h.boolPtr("required") }

func (h *Header) SetRequired(v bool) *Header {
	h.setFlag("required", v)
	return h
}

func (h *Header) Deprecated() bool { return h.flag("deprecated") }

func (h *Header) SetDeprecated(v bool) *Header {
	h.setFlag("deprecated", v)
	return h
}

func (h *Header) Style() string { return h.str("style") }

func (h *Header) SetStyle(v string) *Header {
	h.setStr("style", v)
	return h
}

func (h *Header) Explode() *bool { return h.boolPtr("explode") }

func (h *Header) SetExplode(v *bool) *Header {
	h.setBoolPtr("explode", v)
	return h
}

func (h *Header) Schema() *Schema { return getObject[*Schema](&h.node, "schema") }

func (h *Header) SetSchema(v *Schema) *Header {
	setObject(&h.node, "schema", v)
	return h
}

func (h *Header) Example() any { return h.value("example") }

func (h *Header) SetExample(v any) *Header {
	h.setValue("example", v)
	return h
}

func (h *Header) Examples() Entries[*Example] { return entries[*Example](&h.node, "examples") }

func (h *Header) Content() *Content { return getObject[*Content](&h.node, "content") }

func (h *Header) SetContent(v *Content) *Header {
	setObject(&h.node, "content", v)
	return h
}

var exampleType = newDescriptor("Example", true, ref.Example,
	scalarProp("summary"),
	scalarProp("description"),
	anyProp("value"),
	scalarProp("externalValue"),
)

type Example struct {
	referable
}

func NewExample() *Example {
	e := &Example{}
	e.init(exampleType)
	return e
}

func (e *Example) Summary() string { return e.str("summary") }

func (e *Example) SetSummary(v string) *Example {
	e.setStr("summary", v)
	return e
}

func (e *Example) Description() string { return e.str("description") }

func (e *Example) SetDescription(v string) *Example {
	e.setStr("description", v)
	return e
}

func (e *Example) Value() any { return e.value("value") }

func (e *Example) SetValue(v any) *Example {
	e.setValue("value", v)
	return e
}

func (e *Example) ExternalValue() string { return e.str("externalValue") }

func (e *Example) SetExternalValue(v string) *Example {
	e.setStr("externalValue", v)
	return e
}

var linkType = newDescriptor("Link", true, ref.Link,
	scalarProp("operationRef"),
	scalarProp("operationId"),
	anyMapProp("parameters").entry("name", "expression"),
	anyProp("requestBody"),
	scalarProp("description"),
	objectProp("server", "Server"),
)

type Link struct {
	referable
}

func NewLink() *Link {
	l := &Link{}
	l.init(linkType)
	return l
}

func (l *Link) OperationRef() string { return l.str("operationRef") }

func (l *Link) SetOperationRef(v string) *Link {
	l.setStr("operationRef", v)
	return l
}

func (l *Link) OperationID() string { return l.str("operationId") }

func (l *Link) SetOperationID(v string) *Link {
	l.setStr("operationId", v)
	return l
}

// Parameters returns the link parameters keyed by name.
func (l *Link) Parameters() Entries[any] { return entries[any](&l.node, "parameters") }

func (l *Link) RequestBody() any { return l.value("requestBody") }

func (l *Link) SetRequestBody(v any) *Link {
	l.setValue("requestBody", v)
	return l
}

func (l *Link) Description() string { return l.str("description") }

func (l *Link) SetDescription(v string) *Link {
	l.setStr("description", v)
	return l
}

func (l *Link) Server() *Server { return getObject[*Server](&l.node, "server") }

func (l *Link) SetServer(v *Server) *Link {
	setObject(&l.node, "server", v)
	return l
}
