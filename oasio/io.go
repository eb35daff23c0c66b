package oasio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Gobd/oasmodel/metadata"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/tree"
)

// IO reads and writes document objects.
type IO struct {
	log *log.Logger
}

// Option configures an [IO].
type Option func(*IO)

// WithLogger sends read and write traces to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(rw *IO) {
		if l != nil {
			rw.log = l
		}
	}
}

// New returns an IO. Without [WithLogger] nothing is logged.
func New(opts ...Option) *IO {
	rw := &IO{log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// ReadTree reads an object of the named type from an object node. A node
// that is not an object yields a nil object.
func (rw *IO) ReadTree(typ string, n *tree.Node) (model.Object, error) {
	if _, err := model.Lookup(typ); err != nil {
		return nil, err
	}
	if !n.IsObject() {
		rw.log.Debug("skipping non-object node", "type", typ, "kind", n.Kind())
		return nil, nil
	}
	return rw.Read(typ, TreeSource(n))
}

// ReadMetadata reads an object of the named type from a metadata instance.
func (rw *IO) ReadMetadata(typ string, inst metadata.Instance) (model.Object, error) {
	if _, err := model.Lookup(typ); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, nil
	}
	return rw.Read(typ, MetadataSource(inst))
}

// ReadDocument reads a whole document tree.
func (rw *IO) ReadDocument(n *tree.Node) (*model.OpenAPI, error) {
	obj, err := rw.ReadTree("OpenAPI", n)
	if err != nil || obj == nil {
		return model.NewOpenAPI(), err
	}
	return obj.(*model.OpenAPI), nil
}

// ReadDocumentMetadata reads a document from a definition instance carrying
// info, servers, tags, security, externalDocs, components and extensions.
func (rw *IO) ReadDocumentMetadata(inst metadata.Instance) (*model.OpenAPI, error) {
	obj, err := rw.ReadMetadata("OpenAPI", inst)
	if err != nil || obj == nil {
		return model.NewOpenAPI(), err
	}
	return obj.(*model.OpenAPI), nil
}

// Unmarshal parses JSON or YAML and reads it as a document.
func (rw *IO) Unmarshal(data []byte) (*model.OpenAPI, error) {
	n, err := tree.Parse(data)
	if err != nil {
		return nil, err
	}
	return rw.ReadDocument(n)
}

// Marshal writes obj in the given format. An empty object is written as an
// empty JSON or YAML object.
func (rw *IO) Marshal(obj model.Object, f tree.Format) ([]byte, error) {
	n, ok := rw.Write(obj)
	if !ok {
		n = tree.NewObject()
	}
	return tree.Marshal(n, f)
}

var std = New()

// Unmarshal parses JSON or YAML into a document without logging.
func Unmarshal(data []byte) (*model.OpenAPI, error) { return std.Unmarshal(data) }

// Marshal writes obj in the given format without logging.
func Marshal(obj model.Object, f tree.Format) ([]byte, error) { return std.Marshal(obj, f) }
