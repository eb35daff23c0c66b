package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/oasmodel/errors"
)

type object struct{ props *Store }

func (o *object) Properties() *Store { return o.props }

func TestShape(t *testing.T) {
	var nilObj *object
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{"nil", nil, Absent},
		{"string", "a", Scalar},
		{"number", 1.5, Scalar},
		{"bool", false, Scalar},
		{"list", []any{"a"}, ListKind},
		{"map", NewMap(), MapKind},
		{"object", &object{props: New("x")}, ObjectKind},
		{"nil object", nilObj, Absent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shape(tt.v))
		})
	}
}

func TestStoreOrder(t *testing.T) {
	s := New("Info")
	s.Set("title", "Pets")
	s.Set("version", "1.0")
	s.Set("description", "d")
	s.Set("title", "Pets 2")

	assert.Equal(t, []string{"title", "version", "description"}, s.Keys())

	s.Set("version", nil)
	assert.Equal(t, []string{"title", "description"}, s.Keys())
	assert.Equal(t, 2, s.Len())
}

func TestTypedMismatch(t *testing.T) {
	s := New("Schema")
	s.Set("minimum", "not a number")
	s.Set("maximum", 10)
	s.Set("tags", []any{"a", 1})

	_, ok := Float(s, "minimum")
	assert.False(t, ok)

	max, ok := Float(s, "maximum")
	require.True(t, ok)
	assert.Equal(t, 10.0, max)

	_, ok = String(s, "maximum")
	assert.False(t, ok)

	_, ok = Strings(s, "tags")
	assert.False(t, ok)
}

func TestAddToListCoercesScalar(t *testing.T) {
	s := New("Operation")
	s.Set("tags", "pets")
	s.AddToList("tags", "dogs")

	list, ok := List(s, "tags")
	require.True(t, ok)
	assert.Equal(t, []any{"dogs"}, list)

	s.AddToList("tags", "cats")
	s.AddToList("tags", nil)
	list, _ = List(s, "tags")
	assert.Equal(t, []any{"dogs", "cats"}, list)
}

func TestRemoveFromList(t *testing.T) {
	s := New("Operation")
	s.Set("summary", "x")
	s.RemoveFromList("summary", "x")
	v, _ := s.Get("summary")
	assert.Equal(t, "x", v)

	s.Set("tags", []any{"a", "b", "a"})
	s.RemoveFromList("tags", "a")
	list, _ := List(s, "tags")
	assert.Equal(t, []any{"b", "a"}, list)

	s.RemoveFromList("tags", []any{"unhashable"})
	list, _ = List(s, "tags")
	assert.Len(t, list, 2)
}

func TestMapHelpers(t *testing.T) {
	s := New("Components")
	s.Set("schemas", "garbage")
	s.PutIntoMap("schemas", "Pet", "p")
	s.PutIntoMap("schemas", "Error", "e")
	s.PutIntoMap("schemas", "Pet", "p2")

	m, ok := MapValue(s, "schemas")
	require.True(t, ok)
	assert.Equal(t, []string{"Pet", "Error"}, m.Keys())
	v, _ := m.Get("Pet")
	assert.Equal(t, "p2", v)

	s.RemoveFromMap("schemas", "Pet")
	assert.Equal(t, []string{"Error"}, m.Keys())

	s.Set("title", "t")
	s.RemoveFromMap("title", "Pet")
	title, _ := String(s, "title")
	assert.Equal(t, "t", title)
}

func TestExtensionsReplaceProperties(t *testing.T) {
	s := New("Info")
	s.Set("x-logo", "prop")
	s.AddExtension("x-logo", "ext")
	assert.True(t, s.IsExtensionKey("x-logo"))

	s.Set("x-logo", "prop again")
	assert.False(t, s.IsExtensionKey("x-logo"))
	assert.Nil(t, s.Extensions(true))
}

func TestExtensionsPrivatePartition(t *testing.T) {
	s := New("Operation")
	s.AddExtension("x-a", 1)
	s.AddExtension(PrivatePrefix+"hidden", true)
	s.AddExtension("X-B", 2)

	assert.Equal(t, []string{"x-a", "X-B"}, s.Extensions(false).Keys())
	assert.Equal(t, 3, s.Extensions(true).Len())
	assert.True(t, s.HasExtensions(false))

	s.SetExtensions(MapOf("x-c", 3))
	assert.Equal(t, []string{PrivatePrefix + "hidden", "x-c"}, s.Extensions(true).Keys())
}

func TestIsExtension(t *testing.T) {
	assert.True(t, IsExtension("x-foo"))
	assert.True(t, IsExtension("X-Foo"))
	assert.False(t, IsExtension("foo"))
	assert.False(t, IsExtension("x"))
	assert.Equal(t, "x-foo", ExtensionName("foo"))
	assert.Equal(t, "X-foo", ExtensionName("X-foo"))
}

func TestFreeze(t *testing.T) {
	s := New("Info")
	s.Set("title", "Pets")
	s.PutIntoMap("m", "a", 1)
	s.Freeze()

	assert.PanicsWithError(t, "READ_ONLY: Info is unmodifiable", func() { s.Set("title", "other") })
	assert.Panics(t, func() { s.AddToList("tags", "x") })
	assert.Panics(t, func() { s.AddExtension("x-a", 1) })

	m, _ := MapValue(s, "m")
	assert.Panics(t, func() { m.Set("b", 2) })

	title, _ := String(s, "title")
	assert.Equal(t, "Pets", title)
	assert.Equal(t, 1, m.Len())

	var err error
	func() {
		defer errors.Recover(&err)
		s.Delete("title")
	}()
	assert.True(t, errors.Is(err, errors.ErrCodeReadOnly))
}

func TestClone(t *testing.T) {
	s := New("Info")
	s.Set("title", "Pets")
	s.AddExtension("x-a", 1)
	s.Freeze()

	c := s.Clone(nil)
	assert.False(t, c.Frozen())
	assert.True(t, c.IsExtensionKey("x-a"))
	c.Set("title", "changed")

	title, _ := String(s, "title")
	assert.Equal(t, "Pets", title)
}
