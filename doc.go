// Package oasmodel assembles OpenAPI documents from several sources into one
// in-memory graph.
//
// An [Assembler] reads a static JSON or YAML document, metadata instances
// handed over by a scanning front end and a programmatically built override,
// merges them in that order and returns a single [model.OpenAPI]:
//
//	doc, err := oasmodel.New(
//	    oasmodel.WithStaticFile("openapi.yaml"),
//	    oasmodel.WithMetadata(definition),
//	    oasmodel.WithOverride(override),
//	).Assemble()
//
// Schemas for Go types are inferred with [SchemaFor]. Types describe their
// fields by implementing [Ruler]:
//
//	func (o *Order) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&o.ID, Required),
//	        Field(&o.Amount, Min(0.01)),
//	    }
//	}
//
// [MissingRules] reports exported fields that have no rule yet.
//
// Sub-packages:
//   - model – the document object types, walking, merging and filtering
//   - oasio – reading from tree and metadata sources, writing trees
//   - openapi – helpers for registering endpoints on a document
//   - kinopenapi – conversion to and from kin-openapi
//   - validate – structural checks of an assembled document
package oasmodel
