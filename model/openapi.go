package model

import (
	"github.com/Gobd/oasmodel/ref"
)

// DefaultVersion is the OpenAPI version written when none is set.
const DefaultVersion = "3.1.0"

var openAPIType = newDescriptor("OpenAPI", true, ref.None,
	scalarProp("openapi"),
	objectProp("info", "Info"),
	scalarProp("jsonSchemaDialect"),
	listProp("servers", "Server"),
	objectProp("paths", "Paths"),
	mapProp("webhooks", "PathItem"),
	objectProp("components", "Components"),
	listProp("security", "SecurityRequirement"),
	listProp("tags", "Tag"),
	objectProp("externalDocs", "ExternalDocumentation"),
)

// OpenAPI is the root document object.
type OpenAPI struct {
	extensible
}

// NewOpenAPI returns an empty document.
func NewOpenAPI() *OpenAPI {
	o := &OpenAPI{}
	o.init(openAPIType)
	return o
}

func (o *OpenAPI) OpenAPI() string { return o.str("openapi") }

func (o *OpenAPI) SetOpenAPI(v string) *OpenAPI {
	o.setStr("openapi", v)
	return o
}

func (o *OpenAPI) Info() *Info { return getObject[*Info](&o.node, "info") }

func (o *OpenAPI) SetInfo(v *Info) *OpenAPI {
	setObject(&o.node, "info", v)
	return o
}

func (o *OpenAPI) JSONSchemaDialect() string { return o.str("jsonSchemaDialect") }

func (o *OpenAPI) SetJSONSchemaDialect(v string) *OpenAPI {
	o.setStr("jsonSchemaDialect", v)
	return o
}

func (o *OpenAPI) Servers() []*Server { return getList[*Server](&o.node, "servers") }

func (o *OpenAPI) SetServers(v []*Server) *OpenAPI {
	setList(&o.node, "servers", v)
	return o
}

func (o *OpenAPI) AddServer(v *Server) *OpenAPI {
	addToList(&o.node, "servers", v)
	return o
}

func (o *OpenAPI) RemoveServer(v *Server) { removeFromList(&o.node, "servers", v) }

func (o *OpenAPI) Paths() *Paths { return getObject[*Paths](&o.node, "paths") }

func (o *OpenAPI) SetPaths(v *Paths) *OpenAPI {
	setObject(&o.node, "paths", v)
	return o
}

// Webhooks returns the webhook path items keyed by name.
func (o *OpenAPI) Webhooks() Entries[*PathItem] { return entries[*PathItem](&o.node, "webhooks") }

func (o *OpenAPI) Components() *Components { return getObject[*Components](&o.node, "components") }

func (o *OpenAPI) SetComponents(v *Components) *OpenAPI {
	setObject(&o.node, "components", v)
	return o
}

func (o *OpenAPI) Security() []*SecurityRequirement {
	return getList[*SecurityRequirement](&o.node, "security")
}

func (o *OpenAPI) SetSecurity(v []*SecurityRequirement) *OpenAPI {
	setList(&o.node, "security", v)
	return o
}

func (o *OpenAPI) AddSecurityRequirement(v *SecurityRequirement) *OpenAPI {
	addToList(&o.node, "security", v)
	return o
}

func (o *OpenAPI) RemoveSecurityRequirement(v *SecurityRequirement) {
	removeFromList(&o.node, "security", v)
}

func (o *OpenAPI) Tags() []*Tag { return getList[*Tag](&o.node, "tags") }

func (o *OpenAPI) SetTags(v []*Tag) *OpenAPI {
	setList(&o.node, "tags", v)
	return o
}

func (o *OpenAPI) AddTag(v *Tag) *OpenAPI {
	addToList(&o.node, "tags", v)
	return o
}

func (o *OpenAPI) RemoveTag(v *Tag) { removeFromList(&o.node, "tags", v) }

func (o *OpenAPI) ExternalDocs() *ExternalDocumentation {
	return getObject[*ExternalDocumentation](&o.node, "externalDocs")
}

func (o *OpenAPI) SetExternalDocs(v *ExternalDocumentation) *OpenAPI {
	setObject(&o.node, "externalDocs", v)
	return o
}

// EnsurePaths returns the paths object, creating it when absent.
func (o *OpenAPI) EnsurePaths() *Paths {
	if p := o.Paths(); p != nil {
		return p
	}
	p := NewPaths()
	o.SetPaths(p)
	return p
}

// EnsureComponents returns the components object, creating it when absent.
func (o *OpenAPI) EnsureComponents() *Components {
	if c := o.Components(); c != nil {
		return c
	}
	c := NewComponents()
	o.SetComponents(c)
	return c
}

var infoType = newDescriptor("Info", true, ref.None,
	scalarProp("title"),
	scalarProp("summary"),
	scalarProp("description"),
	scalarProp("termsOfService"),
	objectProp("contact", "Contact"),
	objectProp("license", "License"),
	scalarProp("version"),
)

// Info is the API metadata object.
type Info struct {
	extensible
}

func NewInfo() *Info {
	i := &Info{}
	i.init(infoType)
	return i
}

func (i *Info) Title() string { return i.str("title") }

func (i *Info) SetTitle(v string) *Info {
	i.setStr("title", v)
	return i
}

func (i *Info) Summary() string { return i.str("summary") }

func (i *Info) SetSummary(v string) *Info {
	i.setStr("summary", v)
	return i
}

func (i *Info) Description() string { return i.str("description") }

func (i *Info) SetDescription(v string) *Info {
	i.setStr("description", v)
	return i
}

func (i *Info) TermsOfService() string { return i.str("termsOfService") }

func (i *Info) SetTermsOfService(v string) *Info {
	i.setStr("termsOfService", v)
	return i
}

func (i *Info) Contact() *Contact { return getObject[*Contact](&i.node, "contact") }

func (i *Info) SetContact(v *Contact) *Info {
	setObject(&i.node, "contact", v)
	return i
}

func (i *Info) License() *License { return getObject[*License](&i.node, "license") }

func (i *Info) SetLicense(v *License) *Info {
	setObject(&i.node, "license", v)
	return i
}

func (i *Info) Version() string { return i.str("version") }

func (i *Info) SetVersion(v string) *Info {
	i.setStr("version", v)
	return i
}

var contactType = newDescriptor("Contact", true, ref.None,
	scalarProp("name"),
	scalarProp("url"),
	scalarProp("email"),
)

type Contact struct {
	extensible
}

func NewContact() *Contact {
	c := &Contact{}
	c.init(contactType)
	return c
}

func (c *Contact) Name() string { return c.str("name") }

func (c *Contact) SetName(v string) *Contact {
	c.setStr("name", v)
	return c
}

func (c *Contact) URL() string { return c.str("url") }

func (c *Contact) SetURL(v string) *Contact {
	c.setStr("url", v)
	return c
}

func (c *Contact) Email() string { return c.str("email") }

func (c *Contact) SetEmail(v string) *Contact {
	c.setStr("email", v)
	return c
}

var licenseType = newDescriptor("License", true, ref.None,
	scalarProp("name"),
	scalarProp("identifier"),
	scalarProp("url"),
)

type License struct {
	extensible
}

func NewLicense() *License {
	l := &License{}
	l.init(licenseType)
	return l
}

func (l *License) Name() string { return l.str("name") }

func (l *License) SetName(v string) *License {
	l.setStr("name", v)
	return l
}

func (l *License) Identifier() string { return l.str("identifier") }

func (l *License) SetIdentifier(v string) *License {
	l.setStr("identifier", v)
	return l
}

func (l *License) URL() string { return l.str("url") }

func (l *License) SetURL(v string) *License {
	l.setStr("url", v)
	return l
}

var externalDocsType = newDescriptor("ExternalDocumentation", true, ref.None,
	scalarProp("description"),
	scalarProp("url"),
)

type ExternalDocumentation struct {
	extensible
}

func NewExternalDocumentation() *ExternalDocumentation {
	e := &ExternalDocumentation{}
	e.init(externalDocsType)
	return e
}

func (e *ExternalDocumentation) Description() string { return e.str("description") }

func (e *ExternalDocumentation) SetDescription(v string) *ExternalDocumentation {
	e.setStr("description", v)
	return e
}

func (e *ExternalDocumentation) URL() string { return e.str("url") }

func (e *ExternalDocumentation) SetURL(v string) *ExternalDocumentation {
	e.setStr("url", v)
	return e
}

var tagType = newDescriptor("Tag", true, ref.None,
	scalarProp("name"),
	scalarProp("description"),
	objectProp("externalDocs", "ExternalDocumentation"),
)

type Tag struct {
	extensible
}

func NewTag() *Tag {
	t := &Tag{}
	t.init(tagType)
	return t
}

func (t *Tag) Name() string { return t.str("name") }

func (t *Tag) SetName(v string) *Tag {
	t.setStr("name", v)
	return t
}

func (t *Tag) Description() string { return t.str("description") }

func (t *Tag) SetDescription(v string) *Tag {
	t.setStr("description", v)
	return t
}

func (t *Tag) ExternalDocs() *ExternalDocumentation {
	return getObject[*ExternalDocumentation](&t.node, "externalDocs")
}

func (t *Tag) SetExternalDocs(v *ExternalDocumentation) *Tag {
	setObject(&t.node, "externalDocs", v)
	return t
}
