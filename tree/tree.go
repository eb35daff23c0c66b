// Package tree is the JSON/YAML side of the document model.
//
// A [Node] wraps a yaml.v3 node so that documents keep their field order
// through a read/write cycle. JSON input is parsed with the same YAML decoder;
// output is produced either by yaml.v3 or by the ordered JSON printer in this
// package.
package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind discriminates node shapes.
type Kind int

const (
	Null Kind = iota
	Scalar
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "null"
}

// Node is one value of a parsed or built document tree.
type Node struct {
	y *yaml.Node
}

// Field is one key/value pair of an object node.
type Field struct {
	Key   string
	Value *Node
}

// Wrap adopts an existing yaml.v3 node.
func Wrap(y *yaml.Node) *Node {
	if y == nil {
		return nil
	}
	for y.Kind == yaml.DocumentNode && len(y.Content) > 0 {
		y = y.Content[0]
	}
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}
	return &Node{y: y}
}

// YAML returns the underlying yaml.v3 node.
func (n *Node) YAML() *yaml.Node {
	if n == nil {
		return nil
	}
	return n.y
}

// Kind reports the node shape. A nil node is Null.
func (n *Node) Kind() Kind {
	if n == nil || n.y == nil {
		return Null
	}
	switch n.y.Kind {
	case yaml.MappingNode:
		return Object
	case yaml.SequenceNode:
		return Array
	case yaml.ScalarNode:
		if n.y.ShortTag() == "!!null" {
			return Null
		}
		return Scalar
	}
	return Null
}

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Kind() == Object }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Kind() == Array }

// IsNull reports whether n is absent or null.
func (n *Node) IsNull() bool { return n.Kind() == Null }

// Fields returns the fields of an object node in source order.
func (n *Node) Fields() []Field {
	if !n.IsObject() {
		return nil
	}
	out := make([]Field, 0, len(n.y.Content)/2)
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		out = append(out, Field{Key: n.y.Content[i].Value, Value: Wrap(n.y.Content[i+1])})
	}
	return out
}

// Field returns the value of the named field.
func (n *Node) Field(name string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		if n.y.Content[i].Value == name {
			return Wrap(n.y.Content[i+1]), true
		}
	}
	return nil, false
}

// Len returns the number of fields or items.
func (n *Node) Len() int {
	switch n.Kind() {
	case Object:
		return len(n.y.Content) / 2
	case Array:
		return len(n.y.Content)
	}
	return 0
}

// Items returns the elements of an array node.
func (n *Node) Items() []*Node {
	if !n.IsArray() {
		return nil
	}
	out := make([]*Node, len(n.y.Content))
	for i, c := range n.y.Content {
		out[i] = Wrap(c)
	}
	return out
}

// Scalar decodes a scalar node into a Go string, bool, int, float64 or nil.
func (n *Node) Scalar() (any, bool) {
	if n.Kind() != Scalar {
		return nil, false
	}
	var v any
	if err := n.y.Decode(&v); err != nil {
		return n.y.Value, true
	}
	return v, true
}

// Text returns the scalar text when n is a string scalar.
func (n *Node) Text() (string, bool) {
	if n.Kind() != Scalar || n.y.ShortTag() != "!!str" {
		return "", false
	}
	return n.y.Value, true
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{y: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// NewArray returns an empty array node.
func NewArray() *Node {
	return &Node{y: &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}}
}

// NewNull returns a null node.
func NewNull() *Node {
	return &Node{y: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}}
}

// NewString returns a string node.
func NewString(s string) *Node {
	return &Node{y: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}}
}

// NewScalar builds a scalar node from a Go string, bool or number.
func NewScalar(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case string:
		return NewString(t), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(t)), nil
	case int:
		return scalar("!!int", strconv.FormatInt(int64(t), 10)), nil
	case int8, int16, int32, int64:
		return scalar("!!int", fmt.Sprintf("%d", t)), nil
	case uint, uint8, uint16, uint32, uint64:
		return scalar("!!int", fmt.Sprintf("%d", t)), nil
	case float32:
		return scalar("!!float", floatText(float64(t), 32)), nil
	case float64:
		return scalar("!!float", floatText(t, 64)), nil
	case fmt.Stringer:
		return NewString(t.String()), nil
	}
	return nil, fmt.Errorf("unsupported scalar type %T", v)
}

// floatText formats f so that it still resolves to a float when read back,
// keeping yaml.v3 from printing an explicit !!float tag.
func floatText(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	text := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return text
}

func scalar(tag, value string) *Node {
	return &Node{y: &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}}
}

// Set stores value under key, replacing an existing field in place.
// It is a no-op on non-object nodes.
func (n *Node) Set(key string, value *Node) *Node {
	if !n.IsObject() || value == nil {
		return n
	}
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		if n.y.Content[i].Value == key {
			n.y.Content[i+1] = value.y
			return n
		}
	}
	n.y.Content = append(n.y.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value.y)
	return n
}

// Append adds value to an array node.
func (n *Node) Append(value *Node) *Node {
	if !n.IsArray() || value == nil {
		return n
	}
	n.y.Content = append(n.y.Content, value.y)
	return n
}
