package openapi

import (
	"net/http"
	"strings"

	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
	"github.com/Gobd/oasmodel/validate"
)

// Handler returns an http.Handler that serves doc as JSON and YAML. The
// prefix is stripped automatically, so just mount it:
//
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
//
// The document is validated and written once; later changes to doc are
// not served.
func Handler(prefix string, doc *model.OpenAPI) (http.Handler, error) {
	if err := validate.Document(doc); err != nil {
		return nil, err
	}

	specJSON, err := oasio.Marshal(doc, tree.JSON)
	if err != nil {
		return nil, err
	}
	specYAML, err := oasio.Marshal(doc, tree.YAML)
	if err != nil {
		return nil, err
	}

	return http.StripPrefix(strings.TrimSuffix(prefix, "/"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/", "/openapi.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		case "/openapi.yaml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(specYAML)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// HandlerMust is like Handler but panics on error.
func HandlerMust(prefix string, doc *model.OpenAPI) http.Handler {
	h, err := Handler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}
