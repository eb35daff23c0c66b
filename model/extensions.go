package model

import (
	"strings"

	"github.com/Gobd/oasmodel/store"
)

// Private extension names. They are kept on live objects and never written.
const (
	ExtensionName   = store.PrivatePrefix + "name"
	ExtensionHidden = store.PrivatePrefix + "hidden"
)

// ProfilePrefix marks profile extensions, for example "x-oasmodel-profile-admin".
const ProfilePrefix = "x-oasmodel-profile-"

// IsPrivateExtension reports whether name is a private extension name.
func IsPrivateExtension(name string) bool { return store.IsPrivate(name) }

// SetPrivateExtension stores a private extension on obj. The private prefix
// is added when missing.
func SetPrivateExtension(obj Object, name string, v any) {
	if !store.IsPrivate(name) {
		name = store.PrivatePrefix + name
	}
	obj.Properties().AddExtension(name, v)
}

// PrivateExtension returns a private extension of obj.
func PrivateExtension(obj Object, name string) (any, bool) {
	if !store.IsPrivate(name) {
		name = store.PrivatePrefix + name
	}
	return obj.Properties().Extension(name)
}

// Hidden reports whether obj has been marked hidden.
func Hidden(obj Object) bool {
	v, _ := obj.Properties().Extension(ExtensionHidden)
	b, _ := v.(bool)
	return b
}

// SetHidden marks obj hidden. Hidden operations, path items, parameters and
// component schemas are removed by [RemoveHidden].
func SetHidden(obj Object, hidden bool) {
	if hidden {
		obj.Properties().AddExtension(ExtensionHidden, true)
		return
	}
	obj.Properties().RemoveExtension(ExtensionHidden)
}

// Profiles returns the profile names attached to obj in insertion order.
func Profiles(obj Object) []string {
	var out []string
	exts := obj.Properties().Extensions(false)
	exts.Range(func(k string, _ any) bool {
		if len(k) > len(ProfilePrefix) && strings.EqualFold(k[:len(ProfilePrefix)], ProfilePrefix) {
			out = append(out, k[len(ProfilePrefix):])
		}
		return true
	})
	return out
}

// AddProfile attaches a profile to obj.
func AddProfile(obj Object, profile string) {
	obj.Properties().AddExtension(ProfilePrefix+profile, true)
}

// RemoveProfiles strips every profile extension from obj.
func RemoveProfiles(obj Object) {
	s := obj.Properties()
	for _, k := range s.Keys() {
		if s.IsExtensionKey(k) && len(k) > len(ProfilePrefix) && strings.EqualFold(k[:len(ProfilePrefix)], ProfilePrefix) {
			s.RemoveExtension(k)
		}
	}
}
