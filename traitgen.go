package rustgen

// AssociatedType is an associated-type declaration inside a trait: a named
// subject with optional trait requirements, rendered `type Name: A + B;`.
type AssociatedType struct {
	bound Bound
	docs  Docs
}

// NewAssociatedType returns an associated type with no requirements.
func NewAssociatedType(name string) *AssociatedType {
	return &AssociatedType{
		bound: Bound{name: name},
		docs:  newItemDocs(),
	}
}

// PushBound appends a trait requirement.
func (a *AssociatedType) PushBound(t *Type) *AssociatedType {
	a.bound.PushBound(t)
	return a
}

// ExtendBounds appends multiple trait requirements.
func (a *AssociatedType) ExtendBounds(types []*Type) *AssociatedType {
	a.bound.ExtendBounds(types)
	return a
}

// PushDoc appends a documentation line.
func (a *AssociatedType) PushDoc(line string) *AssociatedType {
	a.docs.PushDoc(line)
	return a
}

func (a *AssociatedType) render(w *Writer) {
	a.docs.render(w)
	w.WriteString("type ")
	a.bound.render(w, termSemicolon)
}

// Trait is a trait definition.
type Trait struct {
	def      typeDef
	parents  []*Type
	assocTys []*AssociatedType
	fns      []*Function
}

// NewTrait returns a trait definition with the provided name.
func NewTrait(name string) *Trait {
	return &Trait{def: newTypeDef(name)}
}

// Ty returns the trait's identity type.
func (t *Trait) Ty() *Type {
	return t.def.ty
}

// Parent adds a parent trait.
func (t *Trait) Parent(ty *Type) *Trait {
	t.parents = append(t.parents, ty)
	return t
}

// AssociatedType adds an associated type, returning it for further
// configuration.
func (t *Trait) AssociatedType(name string) *AssociatedType {
	a := NewAssociatedType(name)
	t.assocTys = append(t.assocTys, a)
	return a
}

// NewFn pushes a new bodyless function declaration, returning it for
// further configuration.
func (t *Trait) NewFn(name string) *Function {
	f := NewTraitFn(name)
	t.fns = append(t.fns, f)
	return f
}

// PushFn pushes an already-built function.
func (t *Trait) PushFn(f *Function) *Trait {
	t.fns = append(t.fns, f)
	return t
}

// PushDoc appends a documentation line.
func (t *Trait) PushDoc(line string) *Trait {
	t.def.docs.PushDoc(line)
	return t
}

// SetDoc overwrites the trait's documentation.
func (t *Trait) SetDoc(doc string) *Trait {
	t.def.docs.SetDoc(doc)
	return t
}

// Allow adds one or more lint-allow flags.
func (t *Trait) Allow(allows ...string) *Trait {
	t.def.pushAllow(allows...)
	return t
}

// PushAttr appends a free attribute.
func (t *Trait) PushAttr(attr string) *Trait {
	t.def.attrs.PushAttr(attr)
	return t
}

// SetVis sets the trait's visibility.
func (t *Trait) SetVis(vis Vis) *Trait {
	t.def.vis = vis
	return t
}

// PushGeneric appends a generic type parameter to the identity.
func (t *Trait) PushGeneric(ty *Type) *Trait {
	t.def.ty.PushGeneric(ty)
	return t
}

// PushLifetime appends a lifetime parameter to the identity.
func (t *Trait) PushLifetime(lifetime string) *Trait {
	t.def.ty.PushLifetime(lifetime)
	return t
}

// PushBound appends a where-clause bound.
func (t *Trait) PushBound(bound *Bound) *Trait {
	t.def.bounds.PushBound(bound)
	return t
}

// render writes the trait head, then a block with all associated-type
// declarations followed by the function declarations. A blank line precedes
// the first function only when associated types came before it, and
// separates successive functions.
func (t *Trait) render(w *Writer) error {
	if err := t.def.renderHead(w, "trait", t.parents); err != nil {
		return err
	}

	return w.Block(func() error {
		for _, a := range t.assocTys {
			a.render(w)
		}

		for i, fn := range t.fns {
			if i != 0 || len(t.assocTys) != 0 {
				w.WriteString("\n")
			}
			if err := fn.render(w, true); err != nil {
				return err
			}
		}
		return nil
	})
}
