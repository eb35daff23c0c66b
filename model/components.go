package model

import (
	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
)

var componentsType = newDescriptor("Components", true, ref.None,
	mapProp("schemas", "Schema"),
	mapProp("responses", "APIResponse"),
	mapProp("parameters", "Parameter"),
	mapProp("examples", "Example"),
	mapProp("requestBodies", "RequestBody"),
	mapProp("headers", "Header"),
	mapProp("securitySchemes", "SecurityScheme").key("securitySchemeName"),
	mapProp("links", "Link"),
	mapProp("callbacks", "Callback"),
	mapProp("pathItems", "PathItem"),
)

// Components holds the reusable objects of a document.
type Components struct {
	extensible
}

func NewComponents() *Components {
	c := &Components{}
	c.init(componentsType)
	return c
}

func (c *Components) Schemas() Entries[*Schema] { return entries[*Schema](&c.node, "schemas") }

func (c *Components) Responses() Entries[*APIResponse] {
	return entries[*APIResponse](&c.node, "responses")
}

func (c *Components) Parameters() Entries[*Parameter] {
	return entries[*Parameter](&c.node, "parameters")
}

func (c *Components) Examples() Entries[*Example] { return entries[*Example](&c.node, "examples") }

func (c *Components) RequestBodies() Entries[*RequestBody] {
	return entries[*RequestBody](&c.node, "requestBodies")
}

func (c *Components) Headers() Entries[*Header] { return entries[*Header](&c.node, "headers") }

func (c *Components) SecuritySchemes() Entries[*SecurityScheme] {
	return entries[*SecurityScheme](&c.node, "securitySchemes")
}

func (c *Components) Links() Entries[*Link] { return entries[*Link](&c.node, "links") }

func (c *Components) Callbacks() Entries[*Callback] { return entries[*Callback](&c.node, "callbacks") }

func (c *Components) PathItems() Entries[*PathItem] { return entries[*PathItem](&c.node, "pathItems") }

// Names returns the component names of one category in insertion order.
func (c *Components) Names(cat ref.Category) []string {
	m, ok := c.container(cat)
	if !ok {
		return nil
	}
	return m.Keys()
}

// Component returns the named component of one category.
func (c *Components) Component(cat ref.Category, name string) (Object, bool) {
	m, ok := c.container(cat)
	if !ok {
		return nil, false
	}
	v, ok := m.Get(name)
	if !ok {
		return nil, false
	}
	obj, ok := v.(Object)
	return obj, ok
}

func (c *Components) container(cat ref.Category) (*store.Map, bool) {
	if cat == ref.None {
		return nil, false
	}
	return store.MapValue(c.props, cat.Container())
}
