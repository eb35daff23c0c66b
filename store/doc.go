// Package store holds the ordered property bag behind every document object.
//
// A [Store] keeps declared properties and extensions in one insertion-ordered
// map. Extensions are the keys added through [Store.AddExtension]; setting a
// declared property under the same key replaces the extension and vice versa.
//
// Values take one of the shapes reported by [Shape]: scalars, nested objects
// (anything implementing [Object]), lists ([]any) and ordered maps ([*Map]).
// The list and map helpers never coerce a value of the wrong shape in place:
//
//	s := store.New("Operation")
//	s.Set("tags", "pets")      // a scalar
//	s.AddToList("tags", "dogs") // replaced by []any{"dogs"}
package store
