package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
)

func TestRegistry(t *testing.T) {
	names := Types()
	require.Len(t, names, 30)
	assert.Equal(t, "OpenAPI", names[0])

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			obj, err := Create(name)
			require.NoError(t, err)
			assert.Equal(t, name, obj.Descriptor().Name)
			assert.True(t, IsEmpty(obj))

			d, err := Lookup(name)
			require.NoError(t, err)
			assert.Same(t, d, obj.Descriptor())
		})
	}
}

func TestRegistryUnknownType(t *testing.T) {
	_, err := Create("Widget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedType))

	_, err = Lookup("Widget")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedType))
}

func TestDescriptorLookup(t *testing.T) {
	d, err := Lookup("SecurityScheme")
	require.NoError(t, err)

	p, ok := d.Property("openIdConnectURL")
	require.True(t, ok)
	assert.Equal(t, "openIdConnectUrl", p.Name)

	d, _ = Lookup("Schema")
	p, ok = d.Property("default")
	require.True(t, ok)
	assert.Equal(t, "defaultValue", p.MetaName())
	p, _ = d.Property("enum")
	assert.Equal(t, "enumeration", p.MetaName())
	assert.True(t, d.Referable())

	d, _ = Lookup("Paths")
	mp, ok := d.MapProperty()
	require.True(t, ok)
	assert.True(t, mp.Unwrapped)
	_, ok = d.Property("nope")
	assert.False(t, ok)
}

func TestSetRefCanonicalizes(t *testing.T) {
	s := NewSchema().SetDescription("kept")
	s.SetRef("Pet")
	assert.Equal(t, "#/components/schemas/Pet", s.Ref())
	assert.Equal(t, "kept", s.Description())
	assert.True(t, IsReference(s))

	s.SetRef("other.yaml#/Pet")
	assert.Equal(t, "other.yaml#/Pet", s.Ref())

	r := NewAPIResponse()
	r.SetRef("NotFound")
	assert.Equal(t, "#/components/responses/NotFound", r.Ref())

	s.SetRef("")
	assert.False(t, IsReference(s))
	assert.False(t, IsReference(NewInfo()))
}

func TestAPIResponsesMapDuality(t *testing.T) {
	ok200 := NewAPIResponse().SetDescription("ok")
	fallback := NewAPIResponse().SetDescription("error")

	r := NewAPIResponses()
	r.AddAPIResponse("200", ok200)
	r.SetDefault(fallback)
	r.Put("404", NewAPIResponse().SetDescription("missing"))

	assert.Equal(t, []string{"200", "default", "404"}, r.Keys())
	assert.Same(t, fallback, r.Default())

	got, ok := r.Get("default")
	require.True(t, ok)
	assert.Same(t, fallback, got)
	assert.Same(t, ok200, r.APIResponse("200"))

	r.Remove("default")
	assert.Nil(t, r.Default())
	assert.Equal(t, 2, r.Len())

	var seen []string
	for code := range r.All() {
		seen = append(seen, code)
	}
	assert.Equal(t, []string{"200", "404"}, seen)

	var mm MapModel = r
	assert.True(t, mm.Has("404"))
}

func TestPathsOrder(t *testing.T) {
	p := NewPaths()
	p.AddPathItem("/b", NewPathItem())
	p.AddPathItem("/a", NewPathItem())
	p.AddPathItem("/b", NewPathItem().SetSummary("replaced"))

	assert.Equal(t, []string{"/b", "/a"}, p.Keys())
	assert.Equal(t, "replaced", p.PathItem("/b").Summary())

	p.Put("/a", nil)
	assert.Equal(t, []string{"/b"}, p.Keys())
}

func TestOperationAccessors(t *testing.T) {
	item := NewPathItem()
	item.SetOperation("GET", NewOperation().SetOperationID("listPets").AddTag("pets").AddTag(""))
	item.SetOperation("BREW", NewOperation())

	require.NotNil(t, item.Get())
	assert.Equal(t, "listPets", item.Get().OperationID())
	assert.Equal(t, []string{"pets"}, item.Get().Tags())
	assert.Nil(t, item.Post())

	methods, ops := item.Operations()
	assert.Equal(t, []string{"get"}, methods)
	assert.Len(t, ops, 1)
}

func TestTypedAccessorsIgnoreWrongShapes(t *testing.T) {
	s := NewSchema()
	s.Properties().Set("minimum", "five")
	s.Properties().Set("required", "name")
	s.Properties().Set("items", "not a schema")

	assert.Nil(t, s.Minimum())
	assert.Nil(t, s.Required())
	assert.Nil(t, s.Items())

	s.AddRequired("name").AddRequired("name")
	assert.Equal(t, []string{"name"}, s.Required())
}

func TestSchemaTypes(t *testing.T) {
	s := NewSchema().SetTypes([]string{"string", "null"})
	assert.Equal(t, "string", s.Type())
	assert.Equal(t, []string{"string", "null"}, s.Types())

	s.SetTypes([]string{"integer"})
	v, _ := s.Properties().Get("type")
	assert.Equal(t, "integer", v)

	s.SetMinimum(Ptr(1.5)).SetMaxLength(Ptr(10))
	assert.Equal(t, 1.5, *s.Minimum())
	assert.Equal(t, 10, *s.MaxLength())
}

func TestExtensionsAndProperties(t *testing.T) {
	info := NewInfo()
	info.AddExtension("x-logo", "logo.png")
	info.Properties().Set("x-logo", "raw")
	_, ok := info.Extension("x-logo")
	assert.False(t, ok)

	info.AddExtension("x-audience", "public")
	SetHidden(info, true)
	assert.True(t, Hidden(info))
	assert.Equal(t, []string{"x-audience"}, info.Extensions().Keys())

	info.SetExtensions(store.MapOf("x-other", 1))
	assert.Equal(t, []string{"x-other"}, info.Extensions().Keys())
	assert.True(t, Hidden(info))
}

func TestPrivateExtension(t *testing.T) {
	op := NewOperation()
	SetPrivateExtension(op, "name", "listPets")
	v, ok := PrivateExtension(op, "name")
	require.True(t, ok)
	assert.Equal(t, "listPets", v)
	assert.Nil(t, op.Extensions())
	assert.True(t, IsEmpty(op))
}

func TestSecurityRequirement(t *testing.T) {
	req := NewSecurityRequirement().AddScheme("api_key").AddScheme("oauth", "read", "write")

	scopes, ok := req.Scheme("api_key")
	require.True(t, ok)
	assert.Equal(t, []string{}, scopes)

	scopes, _ = req.Scheme("oauth")
	assert.Equal(t, []string{"read", "write"}, scopes)
	assert.Equal(t, []string{"api_key", "oauth"}, req.Keys())
}

func TestDeepCopyAndEqual(t *testing.T) {
	doc := sampleDoc()
	cp := DeepCopy(doc)
	require.NotSame(t, doc, cp)
	assert.True(t, Equal(doc, cp))

	cp.Info().SetTitle("changed")
	assert.Equal(t, "Pets", doc.Info().Title())
	assert.False(t, Equal(doc, cp))

	cp = DeepCopy(doc)
	cp.Components().Schemas().Put("Extra", NewSchema().SetType("string"))
	assert.False(t, Equal(doc, cp))
	assert.Equal(t, 1, doc.Components().Schemas().Len())
}

func TestEqualNumbers(t *testing.T) {
	a := NewSchema()
	a.Properties().Set("minimum", 1)
	b := NewSchema()
	b.Properties().Set("minimum", 1.0)
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, NewSchema()))
	assert.False(t, Equal(NewInfo(), NewContact()))
}

func TestUnmodifiable(t *testing.T) {
	doc := sampleDoc()
	doc.AddServer(NewServer().SetURL("/v1"))
	doc.AddExtension("x-owner", "pets-team")
	frozen := Unmodifiable(doc)
	require.True(t, IsUnmodifiable(frozen))
	require.True(t, IsUnmodifiable(frozen.Info()))
	assert.False(t, IsUnmodifiable(doc))

	assert.PanicsWithError(t, "READ_ONLY: Info is unmodifiable", func() { frozen.Info().SetTitle("x") })
	assert.Panics(t, func() { frozen.Components().Schemas().Put("Other", NewSchema()) })
	assert.Panics(t, func() { frozen.AddTag(NewTag()) })
	assert.Panics(t, func() { frozen.EnsurePaths().Put("/new", NewPathItem()) })

	assert.Panics(t, func() { frozen.AddExtension("x-a", 1) })
	assert.Panics(t, func() { frozen.AddServer(NewServer().SetURL("/v2")) })

	assert.Equal(t, "Pets", frozen.Info().Title())
	assert.Equal(t, 1, frozen.Components().Schemas().Len())
	assert.Len(t, frozen.Servers(), 1)
	assert.Equal(t, 1, frozen.Extensions().Len())
	_, ok := frozen.Extension("x-a")
	assert.False(t, ok)

	doc.Info().SetTitle("still writable")
	assert.Equal(t, "Pets", frozen.Info().Title())
}

func TestUnmodifiableLists(t *testing.T) {
	frozen := Unmodifiable(NewSchema().SetEnum([]any{"a", "b"}).AddExample("x"))

	frozen.Enum()[0] = "changed"
	frozen.Examples()[0] = "changed"
	assert.Equal(t, []any{"a", "b"}, frozen.Enum())
	assert.Equal(t, []any{"x"}, frozen.Examples())
	assert.Panics(t, func() { frozen.AddEnum("c") })

	in := []any{"a"}
	s := NewSchema().SetEnum(in)
	in[0] = "changed"
	assert.Equal(t, []any{"a"}, s.Enum())
}

func TestOverride(t *testing.T) {
	dst := sampleDoc()
	src := NewOpenAPI().SetInfo(NewInfo().SetTitle("Other"))
	src.AddExtension("x-a", 1)

	Override(dst, src)
	assert.Equal(t, "Other", dst.Info().Title())
	assert.Empty(t, dst.Info().Version())
	assert.NotNil(t, dst.Components())
	_, ok := dst.Extension("x-a")
	assert.True(t, ok)
}

func TestMerge(t *testing.T) {
	dst := NewOpenAPI().
		AddTag(NewTag().SetName("pets")).
		AddServer(NewServer().SetURL("/v1")).
		SetInfo(NewInfo().SetTitle("A").SetVersion("1"))
	src := NewOpenAPI().
		AddTag(NewTag().SetName("pets").SetDescription("Pets")).
		AddTag(NewTag().SetName("stores")).
		AddServer(NewServer().SetURL("/v1")).
		SetInfo(NewInfo().SetTitle("B"))

	Merge(dst, src)

	tags := dst.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, "Pets", tags[0].Description())
	assert.Len(t, dst.Servers(), 1)
	assert.Equal(t, "B", dst.Info().Title())
	assert.Equal(t, "1", dst.Info().Version())
}

func TestResolveReferences(t *testing.T) {
	doc := NewOpenAPI()
	s1 := NewSchema()
	s1.Properties().Set("$ref", "s2")
	s3 := NewSchema()
	s3.Properties().Set("$ref", "missing")
	doc.EnsureComponents().Schemas().Put("s1", s1)
	doc.Components().Schemas().Put("s2", NewSchema().SetType("string"))
	doc.Components().Schemas().Put("s3", s3)

	res := ResolveReferences(doc)
	assert.Equal(t, "#/components/schemas/s2", s1.Ref())
	assert.Equal(t, "#/components/schemas/missing", s3.Ref())
	require.Len(t, res, 2)
	assert.Equal(t, ref.Expanded, res[0].Result)
	assert.Equal(t, "#/components/schemas/s1", res[0].Pointer)
	assert.Equal(t, ref.Unresolved, res[1].Result)

	target, ok := Resolve(doc, s1.Ref())
	require.True(t, ok)
	assert.Equal(t, "string", target.(*Schema).Type())
}

func TestWalkPointers(t *testing.T) {
	doc := sampleDoc()
	var pointers []string
	Walk(doc, func(p string, _ Object) bool {
		pointers = append(pointers, p)
		return true
	})
	assert.Contains(t, pointers, "#/paths/~1pets/get")
	assert.Contains(t, pointers, "#/paths/~1pets/get/responses/200")
	assert.Contains(t, pointers, "#/components/schemas/Pet")
	assert.Contains(t, pointers, "#/tags/0")
}

func TestRecursiveSchemaByRef(t *testing.T) {
	child := NewSchema()
	child.SetRef("Node")
	node := NewSchema().SetType(TypeObject).
		AddProperty("children", NewSchema().SetType(TypeArray).SetItems(child))

	var pointers []string
	Walk(node, func(p string, _ Object) bool {
		pointers = append(pointers, p)
		return true
	})
	assert.Equal(t, []string{"#", "#/properties/children", "#/properties/children/items"}, pointers)

	c := DeepCopy(node)
	assert.True(t, Equal(node, c))
	children, ok := c.SchemaProperties().Get("children")
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Node", children.Items().Ref())
	assert.NotSame(t, child, children.Items())
}

func TestRemoveHidden(t *testing.T) {
	doc := sampleDoc()
	get := doc.Paths().PathItem("/pets").Get()
	SetHidden(get, true)
	doc.Paths().AddPathItem("/stores", NewPathItem().SetOperation("get", NewOperation().SetOperationID("stores")))

	RemoveHidden(doc)
	assert.False(t, doc.Paths().Has("/pets"))
	assert.True(t, doc.Paths().Has("/stores"))
}

func TestFilterProfiles(t *testing.T) {
	doc := NewOpenAPI()
	item := NewPathItem()
	admin := NewOperation().SetOperationID("admin")
	AddProfile(admin, "admin")
	public := NewOperation().SetOperationID("public")
	AddProfile(public, "public")
	item.SetOperation("get", public).SetOperation("delete", admin)
	doc.EnsurePaths().AddPathItem("/x", item)

	FilterProfiles(doc, []string{"public"}, nil)
	assert.NotNil(t, item.Get())
	assert.Nil(t, item.Delete())
	assert.Empty(t, Profiles(item.Get()))

	doc2 := NewOpenAPI()
	op := NewOperation().SetOperationID("x")
	AddProfile(op, "internal")
	doc2.EnsurePaths().AddPathItem("/y", NewPathItem().SetOperation("post", op))
	FilterProfiles(doc2, nil, []string{"INTERNAL"})
	assert.Equal(t, 0, doc2.Paths().Len())
}

func sampleDoc() *OpenAPI {
	doc := NewOpenAPI().
		SetOpenAPI(DefaultVersion).
		SetInfo(NewInfo().SetTitle("Pets").SetVersion("1.0")).
		AddTag(NewTag().SetName("pets"))
	op := NewOperation().
		SetOperationID("listPets").
		SetResponses(NewAPIResponses().AddAPIResponse("200", NewAPIResponse().SetDescription("ok")))
	doc.EnsurePaths().AddPathItem("/pets", NewPathItem().SetOperation("get", op))
	doc.EnsureComponents().Schemas().Put("Pet", NewSchema().SetType(TypeObject))
	return doc
}
