package model

import (
	"slices"
	"strings"
)

// RemoveHidden drops every object marked with [SetHidden] from the graph
// below root. Path items left without content are dropped as well.
func RemoveHidden(root Object) {
	if isNil(root) {
		return
	}
	Filter(root, func(obj Object) Object {
		if obj == root {
			return obj
		}
		if Hidden(obj) {
			return nil
		}
		if _, ok := obj.(*PathItem); ok && IsEmpty(obj) {
			return nil
		}
		return obj
	})
}

// FilterProfiles keeps the operations selected by profile extensions.
// With a non-empty include list only operations carrying an included profile
// survive; operations carrying an excluded profile are always dropped.
// Profile extensions are stripped from the survivors.
func FilterProfiles(root Object, include, exclude []string) {
	if isNil(root) {
		return
	}
	Filter(root, func(obj Object) Object {
		if obj == root {
			return obj
		}
		switch o := obj.(type) {
		case *Operation:
			profiles := Profiles(o)
			if len(include) > 0 && !anyProfile(profiles, include) {
				return nil
			}
			if anyProfile(profiles, exclude) {
				return nil
			}
			RemoveProfiles(o)
		case *PathItem:
			if IsEmpty(o) {
				return nil
			}
		}
		return obj
	})
}

func anyProfile(have, want []string) bool {
	return slices.ContainsFunc(have, func(p string) bool {
		return slices.ContainsFunc(want, func(w string) bool { return strings.EqualFold(p, w) })
	})
}
