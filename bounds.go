package rustgen

// terminator selects how a rendered bound line ends: with a comma inside a
// where clause, or with a semicolon as an associated-type declaration.
type terminator int

const (
	termComma terminator = iota
	termSemicolon
)

func (t terminator) token() string {
	if t == termSemicolon {
		return ";\n"
	}
	return ",\n"
}

// Bound is a constraint on a single named subject: the subject must satisfy
// every type in the requirement list. With no requirements the subject
// renders bare.
type Bound struct {
	name  string
	types []*Type
}

// NewBound creates a bound for name with the given trait requirements.
func NewBound(name string, types ...*Type) *Bound {
	return &Bound{name: name, types: types}
}

// Name returns the name of the bound subject.
func (b *Bound) Name() string {
	return b.name
}

// Types returns the requirement list.
func (b *Bound) Types() []*Type {
	return b.types
}

// BoundCount returns the number of requirements.
func (b *Bound) BoundCount() int {
	return len(b.types)
}

// ClearBounds removes all requirements.
func (b *Bound) ClearBounds() *Bound {
	b.types = b.types[:0]
	return b
}

// PushBound appends a single requirement.
func (b *Bound) PushBound(t *Type) *Bound {
	b.types = append(b.types, t)
	return b
}

// ExtendBounds appends multiple requirements.
func (b *Bound) ExtendBounds(types []*Type) *Bound {
	b.types = append(b.types, types...)
	return b
}

// render writes "subject" or "subject: A + B", ending the line with the
// given terminator.
func (b *Bound) render(w *Writer, end terminator) {
	if len(b.types) == 0 {
		w.WriteString(b.name)
	} else {
		w.WriteString(b.name + ":")
		for i, t := range b.types {
			if i != 0 {
				w.WriteString(" +")
			}
			w.WriteString(" ")
			t.render(w)
		}
	}
	w.WriteString(end.token())
}

// Bounds is the ordered collection of bounds rendered as a trailing where
// clause, one bound per line, emitted only when non-empty.
type Bounds struct {
	bounds []*Bound
}

// BoundCount returns the number of bounds across all subjects.
func (b *Bounds) BoundCount() int {
	return len(b.bounds)
}

// HasBounds reports whether any bounds are present.
func (b *Bounds) HasBounds() bool {
	return len(b.bounds) != 0
}

// ClearBounds removes all bounds.
func (b *Bounds) ClearBounds() *Bounds {
	b.bounds = b.bounds[:0]
	return b
}

// PushBound appends a bound.
func (b *Bounds) PushBound(bound *Bound) *Bounds {
	b.bounds = append(b.bounds, bound)
	return b
}

// ExtendBounds appends multiple bounds.
func (b *Bounds) ExtendBounds(bounds []*Bound) *Bounds {
	b.bounds = append(b.bounds, bounds...)
	return b
}

// render writes the where clause when non-empty.
func (b *Bounds) render(w *Writer) {
	if len(b.bounds) == 0 {
		return
	}

	w.WriteString("\nwhere\n")
	for _, bound := range b.bounds {
		bound.render(w, termComma)
	}
}
