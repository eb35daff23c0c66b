package oasio

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/store"
	"github.com/Gobd/oasmodel/tree"
)

const petstore = `
openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
  x-logo: {url: logo.png}
servers:
  - url: https://{env}.example.com
    variables:
      env:
        default: api
        enum: [api, staging]
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      parameters:
        - name: limit
          in: query
          schema: {type: integer, maximum: 100}
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items: {$ref: Pet}
        default:
          $ref: '#/components/responses/Error'
    x-internal: true
components:
  schemas:
    Pet:
      type: object
      required: [id]
      properties:
        id: {type: integer, format: int64}
        tag: {type: [string, "null"]}
      additionalProperties: false
  responses:
    Error:
      description: unexpected error
  securitySchemes:
    api_key: {type: apiKey, name: X-API-Key, in: header}
security:
  - api_key: []
tags:
  - name: pets
`

func readDoc(t *testing.T, src string) *model.OpenAPI {
	t.Helper()
	n, err := tree.Parse([]byte(src))
	require.NoError(t, err)
	doc, err := New().ReadDocument(n)
	require.NoError(t, err)
	return doc
}

func writeJSON(t *testing.T, obj model.Object) string {
	t.Helper()
	out, err := New().Marshal(obj, tree.JSON)
	require.NoError(t, err)
	return string(out)
}

func TestReadTree(t *testing.T) {
	doc := readDoc(t, petstore)

	assert.Equal(t, "3.1.0", doc.OpenAPI())
	assert.Equal(t, "Petstore", doc.Info().Title())
	logo, ok := doc.Info().Extension("x-logo")
	require.True(t, ok)
	assert.Equal(t, []string{"url"}, logo.(*store.Map).Keys())

	env, ok := doc.Servers()[0].Variables().Get("env")
	require.True(t, ok)
	assert.Equal(t, "api", env.Default())
	assert.Equal(t, []string{"api", "staging"}, env.Enum())

	get := doc.Paths().PathItem("/pets").Get()
	require.NotNil(t, get)
	assert.Equal(t, "listPets", get.OperationID())
	assert.Equal(t, 100.0, *get.Parameters()[0].Schema().Maximum())

	responses := get.Responses()
	assert.Equal(t, []string{"200", "default"}, responses.Keys())
	assert.Equal(t, "#/components/responses/Error", responses.Default().Ref())

	items := responses.APIResponse("200").Content().MediaType("application/json").Schema().Items()
	assert.Equal(t, "Pet", items.Ref(), "bare references are kept until the resolver pass")

	pet, _ := doc.Components().Schemas().Get("Pet")
	assert.Equal(t, []string{"id"}, pet.Required())
	assert.Equal(t, []string{"id", "tag"}, pet.SchemaProperties().Keys())
	tag, _ := pet.SchemaProperties().Get("tag")
	assert.Equal(t, []string{"string", "null"}, tag.Types())
	require.NotNil(t, pet.AdditionalPropertiesBoolean())
	assert.False(t, *pet.AdditionalPropertiesBoolean())

	scopes, ok := doc.Security()[0].Scheme("api_key")
	require.True(t, ok)
	assert.Empty(t, scopes)
}

func TestReadReferenceOnly(t *testing.T) {
	n, err := tree.Parse([]byte(`{"$ref": "#/components/schemas/Pet", "description": "ignored", "x-a": 1}`))
	require.NoError(t, err)

	obj, err := New().ReadTree("Schema", n)
	require.NoError(t, err)
	s := obj.(*model.Schema)
	assert.Equal(t, "#/components/schemas/Pet", s.Ref())
	assert.Empty(t, s.Description())
	assert.Nil(t, s.Extensions())
	assert.Equal(t, `{"$ref":"#/components/schemas/Pet"}`, compact(t, s))
}

func TestReadDropsUnknownAndNull(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	n, err := tree.Parse([]byte(`{"title": null, "version": "1", "colour": "blue", "X-Logo": "a.png"}`))
	require.NoError(t, err)
	obj, err := New(WithLogger(logger)).ReadTree("Info", n)
	require.NoError(t, err)

	info := obj.(*model.Info)
	assert.False(t, info.Properties().Has("title"))
	assert.False(t, info.Properties().Has("colour"))
	_, ok := info.Extension("X-Logo")
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "colour")

	assert.Equal(t, `{"version":"1","X-Logo":"a.png"}`, compact(t, info))
}

func TestReadMalformedValues(t *testing.T) {
	n, err := tree.Parse([]byte(`{"name": ["x"], "in": "query", "schema": "string", "examples": [1]}`))
	require.NoError(t, err)
	obj, err := New().ReadTree("Parameter", n)
	require.NoError(t, err)

	assert.Equal(t, []string{"in"}, obj.Properties().Keys())
}

func TestReadUnsupportedType(t *testing.T) {
	_, err := New().ReadTree("Widget", tree.NewObject())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedType))
}

func TestReadNonObject(t *testing.T) {
	obj, err := New().ReadTree("Info", tree.NewString("x"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestWriteOrder(t *testing.T) {
	info := model.NewInfo()
	info.SetVersion("1")
	info.AddExtension("x-z", true)
	info.AddExtension("audience", "internal")
	info.SetTitle("T")
	info.SetContact(model.NewContact().SetEmail("a@b.c"))
	model.SetHidden(info, true)

	assert.Equal(t, `{"title":"T","contact":{"email":"a@b.c"},"version":"1","x-z":true,"x-audience":"internal"}`, compact(t, info))
}

func TestWriteEmptyObjects(t *testing.T) {
	for _, name := range model.Types() {
		obj, err := model.Create(name)
		require.NoError(t, err)
		_, ok := New().Write(obj)
		assert.False(t, ok, name)
	}

	op := model.NewOperation()
	model.SetPrivateExtension(op, "name", "x")
	_, ok := New().Write(op)
	assert.False(t, ok)

	info := model.NewInfo().SetContact(model.NewContact()).SetTitle("T")
	assert.Equal(t, `{"title":"T"}`, compact(t, info))
}

func TestWriteEmptyEntriesKept(t *testing.T) {
	s := model.NewSchema().AddProperty("anything", model.NewSchema())
	assert.Equal(t, `{"properties":{"anything":{}}}`, compact(t, s))

	doc := model.NewOpenAPI().AddSecurityRequirement(model.NewSecurityRequirement())
	assert.Equal(t, `{"security":[{}]}`, compact(t, doc))
}

func TestWriteMapModelOrder(t *testing.T) {
	r := model.NewAPIResponses()
	r.AddAPIResponse("404", model.NewAPIResponse().SetDescription("missing"))
	r.SetDefault(model.NewAPIResponse().SetDescription("error"))
	r.AddAPIResponse("200", model.NewAPIResponse().SetDescription("ok"))
	r.AddExtension("x-a", 1)

	assert.Equal(t, `{"404":{"description":"missing"},"default":{"description":"error"},"200":{"description":"ok"},"x-a":1}`, compact(t, r))
}

func TestWriteReferenceDropsSiblings(t *testing.T) {
	p := model.NewParameter().SetName("limit").SetIn(model.InQuery)
	p.SetRef("Limit")
	p.AddExtension("x-a", 1)
	assert.Equal(t, `{"$ref":"#/components/parameters/Limit"}`, compact(t, p))
}

func TestRoundTrip(t *testing.T) {
	first := readDoc(t, petstore)
	out := writeJSON(t, first)

	second := readDoc(t, out)
	assert.True(t, model.Equal(first, second))
	assert.Equal(t, out, writeJSON(t, second))
}

func TestRoundTripYAML(t *testing.T) {
	first := readDoc(t, petstore)
	out, err := New().Marshal(first, tree.YAML)
	require.NoError(t, err)

	second, err := Unmarshal(out)
	require.NoError(t, err)
	assert.True(t, model.Equal(first, second))
}

func TestMarshalEmptyDocument(t *testing.T) {
	out, err := Marshal(model.NewOpenAPI(), tree.JSON)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}

func compact(t *testing.T, obj model.Object) string {
	t.Helper()
	n, ok := New().Write(obj)
	require.True(t, ok)
	out, err := tree.MarshalJSON(n, "")
	require.NoError(t, err)
	return string(out)
}
