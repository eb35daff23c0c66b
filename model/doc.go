// Package model holds the OpenAPI document object types.
//
// Every type is a thin typed view over a [store.Store] described by a
// [Descriptor] from the registry; [Create] builds any registered type by
// name. Objects with a single map property, such as [Paths] and
// [APIResponses], also expose that map directly through [Entries].
//
// A document graph is a tree: an object is held by at most one parent and
// never contains itself. Recursive schemas are expressed with "$ref". The
// graph operations ([Walk], [Filter], [DeepCopy], [Equal], [Merge]) rely on
// that and do not track visited objects.
package model
