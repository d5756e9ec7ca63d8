package rustgen

// Impl is an impl block: inherent (`impl Target`) or trait
// (`impl Trait for Target`).
type Impl struct {
	target *Type

	// Impl-level generics, distinct from the target's own arguments.
	generics  Generics
	implTrait *Type

	// Associated-type value assignments, rendered `type X = T;`.
	assocTys []*Field

	bounds Bounds
	fns    []*Function
	attrs  Attributes
}

// NewImpl returns a new impl block for the given target type.
func NewImpl(target *Type) *Impl {
	return &Impl{target: target}
}

// Target returns the type being implemented.
func (i *Impl) Target() *Type {
	return i.target
}

// TargetGeneric adds a generic argument to the target type.
func (i *Impl) TargetGeneric(ty *Type) *Impl {
	i.target.PushGeneric(ty)
	return i
}

// ImplTrait sets the trait that the impl block is implementing.
func (i *Impl) ImplTrait(ty *Type) *Impl {
	i.implTrait = ty
	return i
}

// AssociateType sets an associated-type value.
func (i *Impl) AssociateType(name string, ty *Type) *Impl {
	i.assocTys = append(i.assocTys, NewField(name, ty))
	return i
}

// NewFn pushes a new function definition, returning it for further
// configuration.
func (i *Impl) NewFn(name string) *Function {
	f := NewFn(name)
	i.fns = append(i.fns, f)
	return f
}

// PushFn pushes an already-built function.
func (i *Impl) PushFn(f *Function) *Impl {
	i.fns = append(i.fns, f)
	return i
}

// PushAttr appends an attribute.
func (i *Impl) PushAttr(attr string) *Impl {
	i.attrs.PushAttr(attr)
	return i
}

// PushGeneric appends an impl-level generic parameter.
func (i *Impl) PushGeneric(ty *Type) *Impl {
	i.generics.PushGeneric(ty)
	return i
}

// PushLifetime appends an impl-level lifetime parameter.
func (i *Impl) PushLifetime(lifetime string) *Impl {
	i.generics.PushLifetime(lifetime)
	return i
}

// PushBound appends a where-clause bound.
func (i *Impl) PushBound(bound *Bound) *Impl {
	i.bounds.PushBound(bound)
	return i
}

// render writes the impl head, then a block with all associated-type value
// assignments followed by the functions. Every function in an impl block
// must have a body. Blank-line insertion matches Trait.render.
func (i *Impl) render(w *Writer) error {
	i.attrs.render(w)

	w.WriteString("impl")
	i.generics.render(w)

	if i.implTrait != nil {
		w.WriteString(" ")
		i.implTrait.render(w)
		w.WriteString(" for")
	}

	w.WriteString(" ")
	i.target.render(w)

	i.bounds.render(w)

	return w.Block(func() error {
		for _, ty := range i.assocTys {
			if err := ty.renderAssocValue(w); err != nil {
				return err
			}
		}

		for n, fn := range i.fns {
			if n != 0 || len(i.assocTys) != 0 {
				w.WriteString("\n")
			}
			if err := fn.render(w, false); err != nil {
				return err
			}
		}
		return nil
	})
}
