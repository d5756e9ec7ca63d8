package rustgen

// Generics is the ordered collection of lifetime and type parameters
// rendered as an angle-bracket list. Lifetimes precede type parameters.
type Generics struct {
	lifetimes []string
	types     []*Type
}

// PushLifetime appends a lifetime parameter.
func (g *Generics) PushLifetime(lifetime string) *Generics {
	g.lifetimes = append(g.lifetimes, lifetime)
	return g
}

// ExtendLifetimes appends multiple lifetime parameters.
func (g *Generics) ExtendLifetimes(lifetimes []string) *Generics {
	g.lifetimes = append(g.lifetimes, lifetimes...)
	return g
}

// ClearLifetimes removes all lifetime parameters.
func (g *Generics) ClearLifetimes() *Generics {
	g.lifetimes = g.lifetimes[:0]
	return g
}

// PushGeneric appends a type parameter.
func (g *Generics) PushGeneric(t *Type) *Generics {
	g.types = append(g.types, t)
	return g
}

// ExtendGenerics appends multiple type parameters.
func (g *Generics) ExtendGenerics(types []*Type) *Generics {
	g.types = append(g.types, types...)
	return g
}

// ClearGenerics removes all type parameters.
func (g *Generics) ClearGenerics() *Generics {
	g.types = g.types[:0]
	return g
}

// IsEmpty reports whether both parameter lists are empty.
func (g *Generics) IsEmpty() bool {
	return len(g.lifetimes) == 0 && len(g.types) == 0
}

func (g *Generics) clone() *Generics {
	c := &Generics{
		lifetimes: append([]string(nil), g.lifetimes...),
	}
	for _, t := range g.types {
		c.types = append(c.types, t.Clone())
	}
	return c
}

// render writes "<...>" when at least one list is non-empty: lifetimes
// first, then type parameters, comma-space separated, no trailing separator.
func (g *Generics) render(w *Writer) {
	if g.IsEmpty() {
		return
	}

	w.WriteString("<")

	for i, lifetime := range g.lifetimes {
		w.WriteString(lifetime)
		if len(g.types) != 0 || i != len(g.lifetimes)-1 {
			w.WriteString(", ")
		}
	}

	for i, t := range g.types {
		t.render(w)
		if i != len(g.types)-1 {
			w.WriteString(", ")
		}
	}

	w.WriteString(">")
}
