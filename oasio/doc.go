// Package oasio reads document objects from trees and metadata and writes
// them back to trees.
//
// Both inputs implement the narrow [Source] interface, so one generic reader
// driven by the type descriptors in package model serves every type:
//
//	rw := oasio.New(oasio.WithLogger(logger))
//	doc, err := rw.ReadDocument(node)
//	out, ok := rw.Write(doc)
//
// Reading never fails on bad input: unknown fields are dropped, values of the
// wrong shape are skipped and a node carrying "$ref" is read as a reference
// only. The one error is a request for an unregistered type.
package oasio
