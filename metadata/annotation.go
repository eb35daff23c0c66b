package metadata

// Annotation is the in-memory [Instance] used by front ends and tests.
//
//	info := metadata.New("Info").
//	    With("title", "Pets").
//	    With("contact", metadata.New("Contact").With("email", "a@b.c"))
type Annotation struct {
	typ    string
	names  []string
	values map[string]any
	target *Element
}

// New returns an empty annotation of the given type.
func New(typ string) *Annotation {
	return &Annotation{typ: typ, values: map[string]any{}}
}

// With sets an attribute and returns a for chaining. Values are scalars,
// scalar slices, *Annotation or []*Annotation. A nil value is ignored.
func (a *Annotation) With(name string, v any) *Annotation {
	if v == nil {
		return a
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = v
	return a
}

// Type implements [Instance].
func (a *Annotation) Type() string { return a.typ }

// Names implements [Instance].
func (a *Annotation) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Value implements [Instance].
func (a *Annotation) Value(name string) (any, bool) {
	v, ok := a.values[name]
	if !ok {
		return nil, false
	}
	switch v.(type) {
	case *Annotation, []*Annotation, Instance, []Instance:
		return nil, false
	}
	return v, true
}

// Nested implements [Instance].
func (a *Annotation) Nested(name string) (Instance, bool) {
	switch v := a.values[name].(type) {
	case *Annotation:
		return v, v != nil
	case Instance:
		return v, v != nil
	}
	return nil, false
}

// NestedArray implements [Instance].
func (a *Annotation) NestedArray(name string) ([]Instance, bool) {
	switch v := a.values[name].(type) {
	case []*Annotation:
		out := make([]Instance, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, true
	case []Instance:
		return v, true
	case *Annotation:
		return []Instance{v}, true
	}
	return nil, false
}

// Repeatable implements [Instance].
func (a *Annotation) Repeatable(typ string) []Instance {
	if a.target == nil {
		return nil
	}
	return a.target.Of(typ)
}

// Element is a program element carrying annotations.
type Element struct {
	Name        string
	annotations []*Annotation
}

// NewElement returns an element with the given annotations attached.
func NewElement(name string, annotations ...*Annotation) *Element {
	e := &Element{Name: name}
	e.Annotate(annotations...)
	return e
}

// Annotate attaches annotations to e.
func (e *Element) Annotate(annotations ...*Annotation) *Element {
	for _, a := range annotations {
		a.target = e
		e.annotations = append(e.annotations, a)
	}
	return e
}

// Of returns the attached annotations of the given type in attach order.
func (e *Element) Of(typ string) []Instance {
	var out []Instance
	for _, a := range e.annotations {
		if a.typ == typ {
			out = append(out, a)
		}
	}
	return out
}

// First returns the first attached annotation of the given type.
func (e *Element) First(typ string) (Instance, bool) {
	for _, a := range e.annotations {
		if a.typ == typ {
			return a, true
		}
	}
	return nil, false
}
