// Package openapi builds [model.OpenAPI] documents from struct types that
// implement [oasmodel.Ruler]. It also provides helpers for registering
// endpoints and serving the finished document over HTTP.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve it with [HandlerMust]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  Order{},
//	    Response: Order{},
//	})
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
//
// A document built here can be passed to [oasmodel.WithOverride] to be
// combined with a static file and metadata.
package openapi
