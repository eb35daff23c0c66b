package ref

// Referable is implemented by document objects that can stand in for a
// component through "$ref".
type Referable interface {
	Ref() string
	SetRef(string)
	RefCategory() Category
}

// IsReference reports whether r currently holds a reference.
func IsReference(r Referable) bool {
	return r != nil && r.Ref() != ""
}

// Index answers whether a named component of a category exists.
type Index interface {
	Has(c Category, name string) bool
}

// Result describes what [Expand] did with a reference.
type Result int

const (
	// Unchanged means r holds no reference or an already qualified one that
	// resolved.
	Unchanged Result = iota
	// Expanded means a bare name was rewritten to a known component.
	Expanded
	// Unresolved means the target is a local component that does not exist.
	// Bare names are still canonicalized.
	Unresolved
	// External means the reference points outside the local components.
	External
)

func (r Result) String() string {
	switch r {
	case Expanded:
		return "expanded"
	case Unresolved:
		return "unresolved"
	case External:
		return "external"
	}
	return "unchanged"
}

// Expand canonicalizes a bare reference in r against idx. It never fails;
// the result only reports whether the target is known.
func Expand(r Referable, idx Index) Result {
	if !IsReference(r) {
		return Unchanged
	}
	raw := r.Ref()
	c := r.RefCategory()
	if IsBare(raw) {
		r.SetRef(Canonicalize(c, raw))
		if idx != nil && idx.Has(c, raw) {
			return Expanded
		}
		return Unresolved
	}
	target, name, ok := Parse(raw)
	if !ok {
		return External
	}
	if idx != nil && !idx.Has(target, name) {
		return Unresolved
	}
	return Unchanged
}

// MapIndex is an [Index] backed by plain name sets.
type MapIndex map[Category]map[string]struct{}

// Add records a component name.
func (m MapIndex) Add(c Category, name string) {
	if m[c] == nil {
		m[c] = map[string]struct{}{}
	}
	m[c][name] = struct{}{}
}

// Has implements [Index].
func (m MapIndex) Has(c Category, name string) bool {
	_, ok := m[c][name]
	return ok
}
