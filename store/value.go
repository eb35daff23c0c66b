package store

import (
	"math"
	"reflect"
	"strings"
)

// Kind classifies a stored value.
type Kind int

const (
	Absent Kind = iota
	Scalar
	ObjectKind
	ListKind
	MapKind
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Scalar:
		return "scalar"
	case ObjectKind:
		return "object"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	}
	return "unknown"
}

// Object is implemented by nested document objects.
type Object interface {
	Properties() *Store
}

const (
	// ExtensionPrefix marks extension keys. It is matched case-insensitively.
	ExtensionPrefix = "x-"
	// PrivatePrefix marks extensions that live in the model but are never written.
	PrivatePrefix = "x-oasmodel-private-"
)

// NullValue is an explicit null inside generic data such as an example.
// Property values are never null: setting nil removes them.
type NullValue struct{}

// Null is the explicit null value.
var Null = NullValue{}

// Shape reports the shape of v.
func Shape(v any) Kind {
	switch t := v.(type) {
	case nil:
		return Absent
	case []any:
		if t == nil {
			return Absent
		}
		return ListKind
	case *Map:
		if t == nil {
			return Absent
		}
		return MapKind
	case Object:
		if isNilPointer(t) {
			return Absent
		}
		return ObjectKind
	}
	return Scalar
}

// IsExtension reports whether name carries the extension prefix.
func IsExtension(name string) bool {
	return len(name) >= len(ExtensionPrefix) && strings.EqualFold(name[:len(ExtensionPrefix)], ExtensionPrefix)
}

// IsPrivate reports whether name is in the private extension partition.
func IsPrivate(name string) bool {
	return len(name) >= len(PrivatePrefix) && strings.EqualFold(name[:len(PrivatePrefix)], PrivatePrefix)
}

// ExtensionName prefixes name with [ExtensionPrefix] unless it already has it.
func ExtensionName(name string) string {
	if IsExtension(name) {
		return name
	}
	return ExtensionPrefix + name
}

// ToFloat converts any Go numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// ToInt converts integral numeric values to int. Floats with a fractional
// part are rejected.
func ToInt(v any) (int, bool) {
	f, ok := ToFloat(v)
	if !ok || f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

// Same reports whether a and b hold the same comparable value.
// Values of non-comparable types are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
