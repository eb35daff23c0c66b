package tree

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Gobd/oasmodel/errors"
)

// Format is a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", s)
}

// FormatOf guesses the format of a file from its extension. Anything that is
// not .json is treated as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Parse reads a JSON or YAML document. Empty input yields a null node.
func Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewNull(), nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse document")
	}
	if doc.Kind == 0 {
		return NewNull(), nil
	}
	return Wrap(&doc), nil
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", path)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse %s", path)
	}
	return n, nil
}

// MarshalYAML prints n as YAML with two-space indentation.
func MarshalYAML(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	y := n.YAML()
	if y == nil {
		y = NewNull().y
	}
	if err := enc.Encode(y); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode yaml")
	}
	return buf.Bytes(), nil
}

// Marshal prints n in the requested format.
func Marshal(n *Node, f Format) ([]byte, error) {
	if f == JSON {
		return MarshalJSON(n, "  ")
	}
	return MarshalYAML(n)
}
