package oasmodel

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Gobd/oasmodel/metadata"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/ref"
	"github.com/Gobd/oasmodel/tree"
)

// Assembler combines the document sources into one document.
type Assembler struct {
	cfg          Config
	staticFile   string
	staticData   []byte
	metadata     []metadata.Instance
	override     *model.OpenAPI
	log          *log.Logger
	unmodifiable bool
}

// Option configures an [Assembler].
type Option func(*Assembler)

// WithConfig applies a configuration. Explicit options given after it win.
func WithConfig(cfg *Config) Option {
	return func(a *Assembler) {
		if cfg == nil {
			return
		}
		a.cfg = *cfg
		if cfg.Document.StaticFile != "" {
			a.staticFile = cfg.Document.StaticFile
		}
		if cfg.Document.Unmodifiable {
			a.unmodifiable = true
		}
	}
}

// WithStaticFile reads the static JSON or YAML document at path.
func WithStaticFile(path string) Option {
	return func(a *Assembler) { a.staticFile = path }
}

// WithStaticData uses data as the static document. It takes precedence over
// a static file.
func WithStaticData(data []byte) Option {
	return func(a *Assembler) { a.staticData = data }
}

// WithMetadata adds document definition instances. They are read in order
// after the static document.
func WithMetadata(insts ...metadata.Instance) Option {
	return func(a *Assembler) { a.metadata = append(a.metadata, insts...) }
}

// WithOverride sets a programmatically built document that is applied last.
func WithOverride(doc *model.OpenAPI) Option {
	return func(a *Assembler) { a.override = doc }
}

// WithLogger sends assembly traces to l.
func WithLogger(l *log.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.log = l
		}
	}
}

// Unmodifiable makes Assemble return a frozen document.
func Unmodifiable() Option {
	return func(a *Assembler) { a.unmodifiable = true }
}

// New returns an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble reads every source and returns the combined document. Sources are
// applied in a fixed order: static document, metadata, override. Hidden
// objects and deselected profiles are removed and bare references expanded.
// Only a failing static document or metadata read returns an error.
func (a *Assembler) Assemble() (*model.OpenAPI, error) {
	rw := oasio.New(oasio.WithLogger(a.log))

	doc, err := a.readStatic(rw)
	if err != nil {
		return nil, err
	}

	for _, inst := range a.metadata {
		md, err := rw.ReadDocumentMetadata(inst)
		if err != nil {
			return nil, err
		}
		a.combine(doc, md)
	}
	if a.override != nil {
		a.log.Debug("applying override")
		a.combine(doc, a.override)
	}

	a.cfg.apply(doc)
	if doc.OpenAPI() == "" {
		doc.SetOpenAPI(model.DefaultVersion)
	}

	model.RemoveHidden(doc)
	if p := a.cfg.Profiles; len(p.Include) > 0 || len(p.Exclude) > 0 {
		model.FilterProfiles(doc, p.Include, p.Exclude)
	}

	for _, r := range model.ResolveReferences(doc) {
		switch r.Result {
		case ref.Unresolved:
			a.log.Debug("unresolved reference", "pointer", r.Pointer, "ref", r.Ref)
		case ref.External:
			a.log.Debug("external reference left as is", "pointer", r.Pointer, "ref", r.Ref)
		}
	}

	if a.unmodifiable {
		return model.Unmodifiable(doc), nil
	}
	return doc, nil
}

func (a *Assembler) readStatic(rw *oasio.IO) (*model.OpenAPI, error) {
	switch {
	case a.staticData != nil:
		a.log.Debug("reading static document", "bytes", len(a.staticData))
		return rw.Unmarshal(a.staticData)
	case a.staticFile != "":
		a.log.Debug("reading static document", "path", a.staticFile)
		n, err := tree.ParseFile(a.staticFile)
		if err != nil {
			return nil, err
		}
		return rw.ReadDocument(n)
	}
	return model.NewOpenAPI(), nil
}

func (a *Assembler) combine(dst, src *model.OpenAPI) {
	if a.cfg.Document.Merge == MergeDeep {
		model.Merge(dst, src)
		return
	}
	model.Override(dst, src)
}

// Config returns the configuration the assembler runs with.
func (a *Assembler) Config() Config { return a.cfg }
