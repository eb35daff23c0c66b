// Package validate checks an assembled document for the structural mistakes
// that make it unusable by OpenAPI tooling: missing required fields,
// malformed URLs and e-mail addresses, duplicate operation ids and references
// to components that do not exist.
//
// Errors are reported as [validation.Errors] keyed by JSON property name, so
// they nest the same way the document does:
//
//	if err := validate.Document(doc); err != nil {
//	    fmt.Println(err) // info: (title: cannot be blank.).
//	}
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/ref"
)

var componentNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

// Document validates doc. It does not modify doc; references are checked
// against a copy.
func Document(doc *model.OpenAPI) error {
	if doc == nil {
		return validation.Errors{"openapi": validation.ErrRequired}
	}
	errs := validation.Errors{
		"openapi":      validation.Validate(doc.OpenAPI(), validation.Required, validation.By(semver)),
		"info":         info(doc.Info()),
		"servers":      servers(doc.Servers()),
		"paths":        paths(doc.Paths(), strings.HasPrefix(doc.OpenAPI(), "3.0")),
		"components":   components(doc.Components()),
		"tags":         tags(doc.Tags()),
		"externalDocs": externalDocs(doc.ExternalDocs()),
		"$ref":         references(doc),
	}
	if doc.Paths() == nil && doc.Components() == nil && doc.Webhooks().Len() == 0 {
		errs["paths"] = validation.NewError("validation_oas_empty", "a document needs paths, components or webhooks")
	}
	return errs.Filter()
}

func semver(value any) error {
	s, _ := value.(string)
	if s != "" && !govalidator.IsSemver(s) {
		return validation.NewError("validation_oas_version", "must be a version like 3.1.0")
	}
	return nil
}

func info(i *model.Info) error {
	if i == nil {
		return validation.ErrRequired
	}
	errs := validation.Errors{
		"title":          validation.Validate(i.Title(), validation.Required),
		"version":        validation.Validate(i.Version(), validation.Required),
		"termsOfService": validation.Validate(i.TermsOfService(), is.URL),
	}
	if c := i.Contact(); c != nil {
		errs["contact"] = validation.Errors{
			"url":   validation.Validate(c.URL(), is.URL),
			"email": validation.Validate(c.Email(), is.EmailFormat),
		}.Filter()
	}
	if l := i.License(); l != nil {
		errs["license"] = validation.Errors{
			"name": validation.Validate(l.Name(), validation.Required),
			"url":  validation.Validate(l.URL(), is.URL),
		}.Filter()
	}
	return errs.Filter()
}

func servers(list []*model.Server) error {
	errs := validation.Errors{}
	for i, s := range list {
		errs[strconv.Itoa(i)] = server(s)
	}
	return errs.Filter()
}

func server(s *model.Server) error {
	errs := validation.Errors{
		"url": validation.Validate(s.URL(), validation.Required, validation.By(serverURL)),
	}
	vars := validation.Errors{}
	for name, v := range s.Variables().All() {
		rules := []validation.Rule{validation.Required}
		if values := enum(v); len(values) > 0 {
			rules = append(rules, validation.In(values...))
		}
		vars[name] = validation.Errors{
			"default": validation.Validate(v.Default(), rules...),
		}.Filter()
	}
	errs["variables"] = vars.Filter()
	return errs.Filter()
}

// serverURL accepts relative URLs and URLs with {variables}; only absolute
// URLs without variables are checked for form.
func serverURL(value any) error {
	s, _ := value.(string)
	if !strings.Contains(s, "://") || strings.Contains(s, "{") {
		return nil
	}
	if !govalidator.IsURL(s) {
		return is.ErrURL
	}
	return nil
}

func enum(v *model.ServerVariable) []any {
	values := v.Enum()
	out := make([]any, len(values))
	for i, e := range values {
		out[i] = e
	}
	return out
}

func paths(p *model.Paths, responsesRequired bool) error {
	if p == nil {
		return nil
	}
	errs := validation.Errors{}
	ids := map[string]string{}
	for path, item := range p.All() {
		if !strings.HasPrefix(path, "/") {
			errs[path] = validation.NewError("validation_oas_path", "must begin with /")
			continue
		}
		if item == nil || model.IsReference(item) {
			continue
		}
		methods, ops := item.Operations()
		opErrs := validation.Errors{}
		for _, m := range methods {
			opErrs[m] = operation(ops[m], path+" "+m, ids, responsesRequired)
		}
		errs[path] = opErrs.Filter()
	}
	return errs.Filter()
}

func operation(op *model.Operation, where string, ids map[string]string, responsesRequired bool) error {
	errs := validation.Errors{}
	if id := op.OperationID(); id != "" {
		if other, ok := ids[id]; ok {
			errs["operationId"] = validation.NewError("validation_oas_duplicate", "duplicates the id of "+other)
		} else {
			ids[id] = where
		}
	}
	if responsesRequired {
		if r := op.Responses(); r == nil || r.Len() == 0 {
			errs["responses"] = validation.ErrRequired
		}
	}
	return errs.Filter()
}

func components(c *model.Components) error {
	if c == nil {
		return nil
	}
	errs := validation.Errors{}
	for _, cat := range ref.Categories() {
		names := validation.Errors{}
		for _, name := range c.Names(cat) {
			names[name] = validation.Validate(name, validation.Match(componentNameRegexp))
		}
		errs[cat.Container()] = names.Filter()
	}
	schemes := validation.Errors{}
	for name, s := range c.SecuritySchemes().All() {
		if s != nil && !model.IsReference(s) {
			schemes[name] = securityScheme(s)
		}
	}
	errs["securitySchemes"] = mergeErrors(errs["securitySchemes"], schemes.Filter())
	return errs.Filter()
}

func securityScheme(s *model.SecurityScheme) error {
	errs := validation.Errors{
		"type": validation.Validate(s.Type(), validation.Required,
			validation.In("apiKey", "http", "mutualTLS", "oauth2", "openIdConnect")),
	}
	switch s.Type() {
	case "apiKey":
		errs["name"] = validation.Validate(s.Name(), validation.Required)
		errs["in"] = validation.Validate(s.In(), validation.Required, validation.In("query", "header", "cookie"))
	case "http":
		errs["scheme"] = validation.Validate(s.Scheme(), validation.Required)
	case "oauth2":
		if s.Flows() == nil {
			errs["flows"] = validation.ErrRequired
		}
	case "openIdConnect":
		errs["openIdConnectUrl"] = validation.Validate(s.OpenIDConnectURL(), validation.Required, is.URL)
	}
	return errs.Filter()
}

func mergeErrors(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ae, aok := a.(validation.Errors)
	be, bok := b.(validation.Errors)
	if !aok || !bok {
		return a
	}
	for k, v := range be {
		if _, ok := ae[k]; !ok {
			ae[k] = v
		}
	}
	return ae
}

func tags(list []*model.Tag) error {
	errs := validation.Errors{}
	seen := map[string]bool{}
	for i, t := range list {
		var nameErr error
		switch {
		case t.Name() == "":
			nameErr = validation.ErrRequired
		case seen[t.Name()]:
			nameErr = validation.NewError("validation_oas_duplicate", "duplicates another tag")
		}
		seen[t.Name()] = true
		errs[strconv.Itoa(i)] = validation.Errors{
			"name":         nameErr,
			"externalDocs": externalDocs(t.ExternalDocs()),
		}.Filter()
	}
	return errs.Filter()
}

func externalDocs(d *model.ExternalDocumentation) error {
	if d == nil {
		return nil
	}
	return validation.Errors{
		"url": validation.Validate(d.URL(), validation.Required, is.URL),
	}.Filter()
}

// references reports local references whose target component is missing,
// keyed by the JSON pointer of the referring object.
func references(doc *model.OpenAPI) error {
	errs := validation.Errors{}
	for _, r := range model.ResolveReferences(model.DeepCopy(doc)) {
		if r.Result == ref.Unresolved {
			errs[r.Pointer] = validation.NewError("validation_oas_ref", "unresolved reference "+r.Ref)
		}
	}
	return errs.Filter()
}
