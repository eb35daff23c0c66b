package oasmodel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/oasmodel"
	"github.com/Gobd/oasmodel/errors"
	"github.com/Gobd/oasmodel/metadata"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
)

const staticDoc = `
openapi: 3.0.3
info:
  title: Static
  description: from the file
  version: "1"
tags:
  - name: pets
paths:
  /pets:
    get:
      operationId: listPets
      x-oasmodel-profile-public: true
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema: {$ref: Pet}
    delete:
      operationId: purgePets
      x-oasmodel-profile-admin: true
      responses:
        "204": {description: gone}
  /debug:
    get:
      operationId: debug
      x-oasmodel-private-hidden: true
      responses:
        "200": {description: ok}
components:
  schemas:
    Pet:
      type: object
`

func writeStatic(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(staticDoc), 0o644))
	return path
}

func TestAssemble_Empty(t *testing.T) {
	doc, err := v.New().Assemble()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultVersion, doc.OpenAPI())
	assert.Nil(t, doc.Info())
}

func TestAssemble_StaticFile(t *testing.T) {
	doc, err := v.New(v.WithStaticFile(writeStatic(t))).Assemble()
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI())
	assert.Equal(t, "Static", doc.Info().Title())

	schema := doc.Paths().PathItem("/pets").Get().Responses().APIResponse("200").
		Content().MediaType("application/json").Schema()
	assert.Equal(t, "#/components/schemas/Pet", schema.Ref(), "bare references are expanded")

	assert.Nil(t, doc.Paths().PathItem("/debug"), "hidden operations and their empty path items are removed")
}

func TestAssemble_Precedence(t *testing.T) {
	def := metadata.New("OpenAPIDefinition").
		With("info", metadata.New("Info").With("title", "Meta").With("version", "2")).
		With("servers", metadata.New("Server").With("url", "/meta"))

	override := model.NewOpenAPI().SetInfo(model.NewInfo().SetTitle("Override").SetVersion("3"))

	doc, err := v.New(
		v.WithStaticData([]byte(staticDoc)),
		v.WithMetadata(def),
		v.WithOverride(override),
	).Assemble()
	require.NoError(t, err)

	assert.Equal(t, "Override", doc.Info().Title())
	assert.Empty(t, doc.Info().Description(), "top-level properties are replaced as a whole")
	require.Len(t, doc.Servers(), 1)
	assert.Equal(t, "/meta", doc.Servers()[0].URL())
	assert.NotNil(t, doc.Paths().PathItem("/pets"))

	override.Info().SetTitle("changed later")
	assert.Equal(t, "Override", doc.Info().Title(), "the override is copied")
}

func TestAssemble_DeepMerge(t *testing.T) {
	override := model.NewOpenAPI().
		SetInfo(model.NewInfo().SetTitle("Override")).
		AddTag(model.NewTag().SetName("pets").SetDescription("Everything about pets")).
		AddTag(model.NewTag().SetName("store"))

	cfg := &v.Config{Document: v.DocumentConfig{Merge: v.MergeDeep}}
	doc, err := v.New(v.WithConfig(cfg), v.WithStaticData([]byte(staticDoc)), v.WithOverride(override)).Assemble()
	require.NoError(t, err)

	assert.Equal(t, "Override", doc.Info().Title())
	assert.Equal(t, "from the file", doc.Info().Description())

	tags := doc.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, "pets", tags[0].Name())
	assert.Equal(t, "Everything about pets", tags[0].Description())
	assert.Equal(t, "store", tags[1].Name())
}

func TestAssemble_ConfigOverrides(t *testing.T) {
	cfg := &v.Config{
		Document: v.DocumentConfig{Version: "3.1.0"},
		Info:     v.InfoConfig{Title: "Configured", ContactEmail: "ops@example.com", LicenseName: "MIT"},
		Servers:  []string{"https://api.example.com", "https://staging.example.com"},
	}
	doc, err := v.New(v.WithConfig(cfg), v.WithStaticData([]byte(staticDoc))).Assemble()
	require.NoError(t, err)

	assert.Equal(t, "3.1.0", doc.OpenAPI())
	assert.Equal(t, "Configured", doc.Info().Title())
	assert.Equal(t, "1", doc.Info().Version())
	assert.Equal(t, "ops@example.com", doc.Info().Contact().Email())
	assert.Equal(t, "MIT", doc.Info().License().Name())
	require.Len(t, doc.Servers(), 2)
	assert.Equal(t, "https://staging.example.com", doc.Servers()[1].URL())
}

func TestAssemble_Profiles(t *testing.T) {
	tests := []struct {
		name     string
		profiles v.ProfileConfig
		want     []string
	}{
		{name: "no filter", want: []string{"get", "delete"}},
		{name: "include", profiles: v.ProfileConfig{Include: []string{"PUBLIC"}}, want: []string{"get"}},
		{name: "exclude", profiles: v.ProfileConfig{Exclude: []string{"admin"}}, want: []string{"get"}},
		{name: "include and exclude", profiles: v.ProfileConfig{Include: []string{"public", "admin"}, Exclude: []string{"public"}}, want: []string{"delete"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &v.Config{Profiles: tt.profiles}
			doc, err := v.New(v.WithConfig(cfg), v.WithStaticData([]byte(staticDoc))).Assemble()
			require.NoError(t, err)

			methods, ops := doc.Paths().PathItem("/pets").Operations()
			assert.Equal(t, tt.want, methods)
			if len(tt.profiles.Include)+len(tt.profiles.Exclude) > 0 {
				for _, op := range ops {
					assert.Empty(t, model.Profiles(op))
				}
			}
		})
	}
}

func TestAssemble_ProfilesEmptyPath(t *testing.T) {
	cfg := &v.Config{Profiles: v.ProfileConfig{Include: []string{"nobody"}}}
	doc, err := v.New(v.WithConfig(cfg), v.WithStaticData([]byte(staticDoc))).Assemble()
	require.NoError(t, err)
	assert.Nil(t, doc.Paths().PathItem("/pets"))
}

func TestAssemble_Unmodifiable(t *testing.T) {
	doc, err := v.New(v.WithStaticData([]byte(staticDoc)), v.Unmodifiable()).Assemble()
	require.NoError(t, err)
	assert.True(t, model.IsUnmodifiable(doc))

	assert.Panics(t, func() { doc.Info().SetTitle("changed") })
	assert.Equal(t, "Static", doc.Info().Title())

	out, err := oasio.Marshal(doc, tree.JSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"title": "Static"`)
}

func TestAssemble_Errors(t *testing.T) {
	_, err := v.New(v.WithStaticFile(filepath.Join(t.TempDir(), "missing.yaml"))).Assemble()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = v.New(v.WithStaticData([]byte("openapi: [unclosed"))).Assemble()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}
