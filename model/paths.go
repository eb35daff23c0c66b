package model

import (
	"strings"

	"github.com/Gobd/oasmodel/ref"
)

var pathsType = newDescriptor("Paths", true, ref.None,
	mapProp("pathItems", "PathItem").unwrapped("name"),
)

// Paths maps URL templates to path items.
type Paths struct {
	extensible
	Entries[*PathItem]
}

func NewPaths() *Paths {
	p := &Paths{}
	p.init(pathsType)
	p.Entries = entries[*PathItem](&p.node, "pathItems")
	return p
}

// AddPathItem stores item under path and returns p.
func (p *Paths) AddPathItem(path string, item *PathItem) *Paths {
	p.Put(path, item)
	return p
}

// PathItem returns the item stored under path.
func (p *Paths) PathItem(path string) *PathItem {
	v, _ := p.Get(path)
	return v
}

var pathItemType = newDescriptor("PathItem", true, ref.PathItem,
	scalarProp("summary"),
	scalarProp("description"),
	objectProp("get", "Operation"),
	objectProp("put", "Operation"),
	objectProp("post", "Operation"),
	objectProp("delete", "Operation"),
	objectProp("options", "Operation"),
	objectProp("head", "Operation"),
	objectProp("patch", "Operation"),
	objectProp("trace", "Operation"),
	listProp("servers", "Server"),
	listProp("parameters", "Parameter"),
)

// Methods lists the HTTP methods a path item holds operations for, in
// write order.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

type PathItem struct {
	referable
}

func NewPathItem() *PathItem {
	p := &PathItem{}
	p.init(pathItemType)
	return p
}

func (p *PathItem) Summary() string { return p.str("summary") }

func (p *PathItem) SetSummary(v string) *PathItem {
	p.setStr("summary", v)
	return p
}

func (p *PathItem) Description() string { return p.str("description") }

func (p *PathItem) SetDescription(v string) *PathItem {
	p.setStr("description", v)
	return p
}

// Operation returns the operation for an HTTP method, in any case.
func (p *PathItem) Operation(method string) *Operation {
	return getObject[*Operation](&p.node, strings.ToLower(method))
}

// SetOperation stores op for an HTTP method. Unknown methods are ignored.
func (p *PathItem) SetOperation(method string, op *Operation) *PathItem {
	m := strings.ToLower(method)
	if _, ok := p.desc.Property(m); ok {
		setObject(&p.node, m, op)
	}
	return p
}

// Operations returns the operations present, keyed by lower-case method,
// together with the methods in write order.
func (p *PathItem) Operations() ([]string, map[string]*Operation) {
	var methods []string
	ops := map[string]*Operation{}
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			methods = append(methods, m)
			ops[m] = op
		}
	}
	return methods, ops
}

func (p *PathItem) Get() *Operation     { return p.Operation("get") }
func (p *PathItem) Put() *Operation     { return p.Operation("put") }
func (p *PathItem) Post() *Operation    { return p.Operation("post") }
func (p *PathItem) Delete() *Operation  { return p.Operation("delete") }
func (p *PathItem) Options() *Operation { return p.Operation("options") }
func (p *PathItem) Head() *Operation    { return p.Operation("head") }
func (p *PathItem) Patch() *Operation   { return p.Operation("patch") }
func (p *PathItem) Trace() *Operation   { return p.Operation("trace") }

func (p *PathItem) Servers() []*Server { return getList[*Server](&p.node, "servers") }

func (p *PathItem) SetServers(v []*Server) *PathItem {
	setList(&p.node, "servers", v)
	return p
}

func (p *PathItem) AddServer(v *Server) *PathItem {
	addToList(&p.node, "servers", v)
	return p
}

func (p *PathItem) Parameters() []*Parameter { return getList[*Parameter](&p.node, "parameters") }

func (p *PathItem) SetParameters(v []*Parameter) *PathItem {
	setList(&p.node, "parameters", v)
	return p
}

func (p *PathItem) AddParameter(v *Parameter) *PathItem {
	addToList(&p.node, "parameters", v)
	return p
}

func (p *PathItem) RemoveParameter(v *Parameter) { removeFromList(&p.node, "parameters", v) }

var operationType = newDescriptor("Operation", true, ref.None,
	scalarListProp("tags"),
	scalarProp("summary"),
	scalarProp("description"),
	objectProp("externalDocs", "ExternalDocumentation"),
	scalarProp("operationId"),
	listProp("parameters", "Parameter"),
	objectProp("requestBody", "RequestBody"),
	objectProp("responses", "APIResponses"),
	mapProp("callbacks", "Callback"),
	scalarProp("deprecated"),
	listProp("security", "SecurityRequirement"),
	listProp("servers", "Server"),
)

type Operation struct {
	extensible
}

func NewOperation() *Operation {
	o := &Operation{}
	o.init(operationType)
	return o
}

func (o *Operation) Tags() []string { return o.strs("tags") }

func (o *Operation) SetTags(v []string) *Operation {
	o.setStrs("tags", v)
	return o
}

func (o *Operation) AddTag(v string) *Operation {
	if v != "" {
		o.props.AddToList("tags", v)
	}
	return o
}

func (o *Operation) RemoveTag(v string) { o.props.RemoveFromList("tags", v) }

func (o *Operation) Summary() string { return o.str("summary") }

func (o *Operation) SetSummary(v string) *Operation {
	o.setStr("summary", v)
	return o
}

func (o *Operation) Description() string { return o.str("description") }

func (o *Operation) SetDescription(v string) *Operation {
	o.setStr("description", v)
	return o
}

func (o *Operation) ExternalDocs() *ExternalDocumentation {
	return getObject[*ExternalDocumentation](&o.node, "externalDocs")
}

func (o *Operation) SetExternalDocs(v *ExternalDocumentation) *Operation {
	setObject(&o.node, "externalDocs", v)
	return o
}

func (o *Operation) OperationID() string { return o.str("operationId") }

func (o *Operation) SetOperationID(v string) *Operation {
	o.setStr("operationId", v)
	return o
}

func (o *Operation) Parameters() []*Parameter { return getList[*Parameter](&o.node, "parameters") }

func (o *Operation) SetParameters(v []*Parameter) *Operation {
	setList(&o.node, "parameters", v)
	return o
}

func (o *Operation) AddParameter(v *Parameter) *Operation {
	addToList(&o.node, "parameters", v)
	return o
}

func (o *Operation) RemoveParameter(v *Parameter) { removeFromList(&o.node, "parameters", v) }

func (o *Operation) RequestBody() *RequestBody { return getObject[*RequestBody](&o.node, "requestBody") }

func (o *Operation) SetRequestBody(v *RequestBody) *Operation {
	setObject(&o.node, "requestBody", v)
	return o
}

func (o *Operation) Responses() *APIResponses { return getObject[*APIResponses](&o.node, "responses") }

func (o *Operation) SetResponses(v *APIResponses) *Operation {
	setObject(&o.node, "responses", v)
	return o
}

// Callbacks returns the operation callbacks keyed by name.
func (o *Operation) Callbacks() Entries[*Callback] { return entries[*Callback](&o.node, "callbacks") }

func (o *Operation) Deprecated() bool { return o.flag("deprecated") }

func (o *Operation) SetDeprecated(v bool) *Operation {
	o.setFlag("deprecated", v)
	return o
}

func (o *Operation) Security() []*SecurityRequirement {
	return getList[*SecurityRequirement](&o.node, "security")
}

func (o *Operation) SetSecurity(v []*SecurityRequirement) *Operation {
	setList(&o.node, "security", v)
	return o
}

func (o *Operation) AddSecurityRequirement(v *SecurityRequirement) *Operation {
	addToList(&o.node, "security", v)
	return o
}

func (o *Operation) Servers() []*Server { return getList[*Server](&o.node, "servers") }

func (o *Operation) SetServers(v []*Server) *Operation {
	setList(&o.node, "servers", v)
	return o
}

func (o *Operation) AddServer(v *Server) *Operation {
	addToList(&o.node, "servers", v)
	return o
}

var callbackType = newDescriptor("Callback", true, ref.Callback,
	mapProp("pathItems", "PathItem").unwrapped("name"),
)

// Callback maps runtime expressions to path items.
type Callback struct {
	referable
	Entries[*PathItem]
}

func NewCallback() *Callback {
	c := &Callback{}
	c.init(callbackType)
	c.Entries = entries[*PathItem](&c.node, "pathItems")
	return c
}

// AddPathItem stores item under expression and returns c.
func (c *Callback) AddPathItem(expression string, item *PathItem) *Callback {
	c.Put(expression, item)
	return c
}

// PathItem returns the item stored under expression.
func (c *Callback) PathItem(expression string) *PathItem {
	v, _ := c.Get(expression)
	return v
}
