package model

import (
	"reflect"

	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/store"
)

// Object is a document object: a typed view over an ordered property store.
type Object interface {
	store.Object
	Descriptor() *Descriptor
	base() *node
}

// Extensible is implemented by objects that accept "x-" extensions.
type Extensible interface {
	Object
	Extension(name string) (any, bool)
	AddExtension(name string, v any)
	RemoveExtension(name string)
	Extensions() *store.Map
	SetExtensions(m *store.Map)
}

// Referable is implemented by objects that may stand in for a component.
type Referable interface {
	Object
	ref.Referable
}

// MapModel is implemented by objects whose single map property is exposed as
// the object itself.
type MapModel interface {
	Object
	Keys() []string
	Len() int
	Has(key string) bool
	Remove(key string)
	GetValue(key string) (any, bool)
	PutValue(key string, v any)
}

type node struct {
	desc  *Descriptor
	props *store.Store
}

func (n *node) init(d *Descriptor) {
	n.desc = d
	n.props = store.New(d.Name)
}

func (n *node) base() *node { return n }

// Descriptor returns the type descriptor.
func (n *node) Descriptor() *Descriptor { return n.desc }

// Properties returns the raw property store.
func (n *node) Properties() *store.Store { return n.props }

func (n *node) str(key string) string {
	s, _ := store.String(n.props, key)
	return s
}

func (n *node) setStr(key, v string) {
	if v == "" {
		n.props.Delete(key)
		return
	}
	n.props.Set(key, v)
}

func (n *node) boolPtr(key string) *bool {
	b, ok := store.Bool(n.props, key)
	if !ok {
		return nil
	}
	return &b
}

func (n *node) flag(key string) bool {
	b, _ := store.Bool(n.props, key)
	return b
}

func (n *node) setBoolPtr(key string, v *bool) {
	if v == nil {
		n.props.Delete(key)
		return
	}
	n.props.Set(key, *v)
}

func (n *node) setFlag(key string, v bool) {
	n.props.Set(key, v)
}

func (n *node) floatPtr(key string) *float64 {
	f, ok := store.Float(n.props, key)
	if !ok {
		return nil
	}
	return &f
}

func (n *node) setFloatPtr(key string, v *float64) {
	if v == nil {
		n.props.Delete(key)
		return
	}
	n.props.Set(key, *v)
}

func (n *node) intPtr(key string) *int {
	i, ok := store.Int(n.props, key)
	if !ok {
		return nil
	}
	return &i
}

func (n *node) setIntPtr(key string, v *int) {
	if v == nil {
		n.props.Delete(key)
		return
	}
	n.props.Set(key, *v)
}

func (n *node) strs(key string) []string {
	s, _ := store.Strings(n.props, key)
	return s
}

func (n *node) setStrs(key string, v []string) {
	n.props.Set(key, anyList(v))
}

func (n *node) value(key string) any {
	v, _ := n.props.Get(key)
	return v
}

func (n *node) setValue(key string, v any) {
	n.props.Set(key, v)
}

func getObject[T Object](n *node, key string) T {
	v, _ := n.props.Get(key)
	t, _ := v.(T)
	return t
}

func setObject[T Object](n *node, key string, v T) {
	if isNil(v) {
		n.props.Delete(key)
		return
	}
	n.props.Set(key, v)
}

func getList[T any](n *node, key string) []T {
	list, ok := store.List(n.props, key)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, e := range list {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func setList[T any](n *node, key string, items []T) {
	n.props.Set(key, anyList(items))
}

func addToList[T any](n *node, key string, item T) {
	if isNil(item) {
		return
	}
	n.props.AddToList(key, item)
}

func removeFromList[T any](n *node, key string, item T) {
	n.props.RemoveFromList(key, item)
}

// anyList converts a typed slice into a store list. nil stays nil so that
// setting it removes the property; an empty slice stays an empty list.
func anyList[T any](items []T) []any {
	if items == nil {
		return nil
	}
	out := make([]any, 0, len(items))
	for _, v := range items {
		if !isNil(v) {
			out = append(out, v)
		}
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

type extensible struct {
	node
}

// Extension returns the named extension.
func (e *extensible) Extension(name string) (any, bool) {
	return e.props.Extension(name)
}

// AddExtension stores an extension under name as given. A nil value removes it.
func (e *extensible) AddExtension(name string, v any) {
	e.props.AddExtension(name, v)
}

// RemoveExtension removes the named extension.
func (e *extensible) RemoveExtension(name string) {
	e.props.RemoveExtension(name)
}

// Extensions returns the public extensions in insertion order, or nil.
func (e *extensible) Extensions() *store.Map {
	return e.props.Extensions(false)
}

// SetExtensions replaces the public extensions.
func (e *extensible) SetExtensions(m *store.Map) {
	e.props.SetExtensions(m)
}

// refKey is the store key of a reference.
const refKey = "$ref"

type referable struct {
	extensible
}

// Ref returns the reference, or "" when the object is not a reference.
func (r *referable) Ref() string {
	return r.str(refKey)
}

// SetRef stores a reference. Bare component names are expanded to a full
// pointer of the object's category. Other properties are kept.
func (r *referable) SetRef(v string) {
	r.setStr(refKey, ref.Canonicalize(r.desc.Category, v))
}

// RefCategory returns the component category of the object.
func (r *referable) RefCategory() ref.Category {
	return r.desc.Category
}

// IsReference reports whether obj holds a "$ref".
func IsReference(obj Object) bool {
	r, ok := obj.(Referable)
	return ok && !isNil(r) && ref.IsReference(r)
}

// IsEmpty reports whether obj has no properties and no public extensions.
func IsEmpty(obj Object) bool {
	if isNil(obj) {
		return true
	}
	s := obj.Properties()
	for _, k := range s.Keys() {
		if s.IsExtensionKey(k) && store.IsPrivate(k) {
			continue
		}
		return false
	}
	return true
}
