package oasio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasmodel/metadata"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
	"github.com/Gobd/oasmodel/tree"
)

func TestReadMetadataInfo(t *testing.T) {
	inst := metadata.New("Info").
		With("title", "Pets").
		With("version", "1.0").
		With("description", "").
		With("contact", metadata.New("Contact").With("email", "ops@example.com"))

	obj, err := New().ReadMetadata("Info", inst)
	require.NoError(t, err)
	info := obj.(*model.Info)

	assert.Equal(t, "Pets", info.Title())
	assert.False(t, info.Properties().Has("description"), "empty attributes are unset")
	assert.Equal(t, "ops@example.com", info.Contact().Email())
}

func TestReadMetadataNameOverrides(t *testing.T) {
	inst := metadata.New("Server").
		With("url", "https://{env}.example.com").
		With("variables", []*metadata.Annotation{
			metadata.New("ServerVariable").
				With("name", "env").
				With("defaultValue", "api").
				With("enumeration", []string{"api", "staging"}),
		})

	obj, err := New().ReadMetadata("Server", inst)
	require.NoError(t, err)

	env, ok := obj.(*model.Server).Variables().Get("env")
	require.True(t, ok)
	assert.Equal(t, "api", env.Default())
	assert.Equal(t, []string{"api", "staging"}, env.Enum())

	scheme, err := New().ReadMetadata("SecurityScheme", metadata.New("SecurityScheme").
		With("type", "apiKey").
		With("apiKeyName", "X-API-Key").
		With("in", "header"))
	require.NoError(t, err)
	assert.Equal(t, "X-API-Key", scheme.(*model.SecurityScheme).Name())
}

func TestReadMetadataReference(t *testing.T) {
	obj, err := New().ReadMetadata("Schema", metadata.New("Schema").With("ref", "Pet").With("type", "object"))
	require.NoError(t, err)

	s := obj.(*model.Schema)
	assert.Equal(t, "#/components/schemas/Pet", s.Ref())
	assert.Empty(t, s.Type())
}

func TestReadMetadataExtensions(t *testing.T) {
	explicit := metadata.New("Schema").
		With("type", "object").
		With("extensions", []*metadata.Annotation{
			metadata.New("Extension").With("name", "x-explicit").With("value", "1"),
		})
	metadata.NewElement("Pet", explicit, metadata.New("Extension").With("name", "repeat").With("value", "2"))

	obj, err := New().ReadMetadata("Schema", explicit)
	require.NoError(t, err)
	assert.Equal(t, []string{"x-explicit"}, obj.(*model.Schema).Extensions().Keys())

	repeated := metadata.New("Schema").With("type", "object")
	metadata.NewElement("Pet", repeated,
		metadata.New("Extension").With("name", "repeat").With("value", "2"),
		metadata.New("Extension").With("name", "x-parsed").With("value", `{"a": [1, 2]}`).With("parseValue", true),
		metadata.New("Extension").With("value", "nameless"),
	)

	obj, err = New().ReadMetadata("Schema", repeated)
	require.NoError(t, err)
	exts := obj.(*model.Schema).Extensions()
	assert.Equal(t, []string{"x-repeat", "x-parsed"}, exts.Keys())

	parsed, _ := exts.Get("x-parsed")
	a, _ := parsed.(*store.Map).Get("a")
	assert.Equal(t, []any{1, 2}, a)
}

func TestReadMetadataSecurityRequirement(t *testing.T) {
	inst := metadata.New("SecurityRequirement").
		With("name", "oauth").
		With("scopes", []string{"read"}).
		With("schemes", []*metadata.Annotation{
			metadata.New("SecurityRequirement").With("name", "api_key"),
		})

	obj, err := New().ReadMetadata("SecurityRequirement", inst)
	require.NoError(t, err)
	req := obj.(*model.SecurityRequirement)

	assert.Equal(t, []string{"oauth", "api_key"}, req.Keys())
	scopes, _ := req.Scheme("oauth")
	assert.Equal(t, []string{"read"}, scopes)
	scopes, ok := req.Scheme("api_key")
	assert.True(t, ok)
	assert.Empty(t, scopes)

	assert.Equal(t, `{"oauth":["read"],"api_key":[]}`, compact(t, req))
}

func TestReadMetadataOAuthScopes(t *testing.T) {
	inst := metadata.New("OAuthFlow").
		With("authorizationUrl", "https://auth.example.com").
		With("scopes", []*metadata.Annotation{
			metadata.New("Scope").With("name", "read").With("description", "Read access"),
			metadata.New("Scope").With("description", "keyless"),
		})

	obj, err := New().ReadMetadata("OAuthFlow", inst)
	require.NoError(t, err)
	flow := obj.(*model.OAuthFlow)

	assert.Equal(t, []string{"read"}, flow.Scopes().Keys())
	desc, _ := flow.Scopes().Get("read")
	assert.Equal(t, "Read access", desc)
}

func TestReadDocumentMetadata(t *testing.T) {
	def := metadata.New("OpenAPIDefinition").
		With("openapi", "3.1.0").
		With("info", metadata.New("Info").With("title", "Pets").With("version", "1")).
		With("servers", metadata.New("Server").With("url", "/v1")).
		With("tags", []*metadata.Annotation{metadata.New("Tag").With("name", "pets")}).
		With("components", metadata.New("Components").With("schemas", []*metadata.Annotation{
			metadata.New("Schema").With("name", "Pet").With("type", "object"),
			metadata.New("Schema").With("name", "Pets").With("type", "array").
				With("items", metadata.New("Schema").With("ref", "Pet")),
		}))

	doc, err := New().ReadDocumentMetadata(def)
	require.NoError(t, err)

	assert.Equal(t, "Pets", doc.Info().Title())
	require.Len(t, doc.Servers(), 1)
	assert.Equal(t, "/v1", doc.Servers()[0].URL())
	assert.Equal(t, "pets", doc.Tags()[0].Name())
	assert.Equal(t, []string{"Pet", "Pets"}, doc.Components().Schemas().Keys())
	pets, _ := doc.Components().Schemas().Get("Pets")
	assert.Equal(t, "#/components/schemas/Pet", pets.Items().Ref())

	empty, err := New().ReadDocumentMetadata(nil)
	require.NoError(t, err)
	assert.True(t, model.IsEmpty(empty))
}

func TestReadMetadataUnsupportedType(t *testing.T) {
	_, err := New().ReadMetadata("Widget", metadata.New("Widget"))
	assert.Error(t, err)
}

func TestResolveAfterRead(t *testing.T) {
	n, err := tree.Parse([]byte(`{
		"components": {
			"schemas": {
				"s1": {"$ref": "s2"},
				"s2": {"type": "string"},
				"s3": {"$ref": "missing"}
			}
		}
	}`))
	require.NoError(t, err)
	doc, err := New().ReadDocument(n)
	require.NoError(t, err)

	s1, _ := doc.Components().Schemas().Get("s1")
	assert.Equal(t, "s2", s1.Ref())

	res := model.ResolveReferences(doc)
	require.Len(t, res, 2)
	assert.Equal(t, ref.Expanded, res[0].Result)
	assert.Equal(t, ref.Unresolved, res[1].Result)

	assert.Equal(t, "#/components/schemas/s2", s1.Ref())
	s3, _ := doc.Components().Schemas().Get("s3")
	assert.Equal(t, "#/components/schemas/missing", s3.Ref())

	target, ok := model.Resolve(doc, s1.Ref())
	require.True(t, ok)
	assert.Equal(t, "string", target.(*model.Schema).Type())
}
