package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasmodel/errors"
)

const petstore = `openapi: 3.0.3
info:
  title: Pets
  version: "1"
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
  /internal:
    get:
      operationId: internal
      x-oasmodel-private-hidden: true
      responses:
        "200": {description: ok}
components:
  schemas:
    Pet:
      type: object
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestAssembleCmd(t *testing.T) {
	static := writeFile(t, "openapi.yaml", petstore)
	cfg := writeFile(t, "oasmodel.toml", `
servers = ["https://api.example.com"]

[info]
title = "Configured"
`)

	out, logs, err := run(t, "assemble", static, "--config", cfg, "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"title": "Configured"`)
	assert.Contains(t, out, `"url": "https://api.example.com"`)
	assert.Contains(t, out, `"$ref": "#/components/schemas/Pet"`)
	assert.NotContains(t, out, "/internal")
	assert.Contains(t, out, "x-oasmodel-profile-public", "profiles are kept without a filter")
	assert.Contains(t, logs, "Assembled document")
}

func TestAssembleCmdProfilesAndOutputFile(t *testing.T) {
	static := writeFile(t, "openapi.yaml", petstore)
	output := filepath.Join(t.TempDir(), "out.json")

	out, _, err := run(t, "assemble", static, "--exclude", "public", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.0.3"`, "format follows the output extension")
	assert.NotContains(t, string(data), "/pets")
}

func TestAssembleCmdErrors(t *testing.T) {
	_, _, err := run(t, "assemble", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, _, err = run(t, "assemble", "--merge", "append")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	_, _, err = run(t, "assemble", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestAssembleCmdEmpty(t *testing.T) {
	out, _, err := run(t, "assemble")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi: 3.1.0")
}

func TestConvertCmd(t *testing.T) {
	static := writeFile(t, "openapi.yaml", petstore)

	out, _, err := run(t, "convert", static)
	require.NoError(t, err)
	assert.Contains(t, out, `"operationId": "listPets"`)
	assert.Contains(t, out, `"$ref": "Pet"`, "convert does not expand references")

	jsonFile := writeFile(t, "openapi.json", out)
	out, _, err = run(t, "convert", jsonFile)
	require.NoError(t, err)
	assert.Contains(t, out, "operationId: listPets")
}

func TestValidateCmd(t *testing.T) {
	static := writeFile(t, "openapi.yaml", petstore)

	out, _, err := run(t, "validate", static, "--kin")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	broken := writeFile(t, "broken.yaml", `openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema: {$ref: Missing}
`)
	_, _, err = run(t, "validate", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "info: cannot be blank")
	assert.Contains(t, err.Error(), "unresolved reference #/components/schemas/Missing")
}
