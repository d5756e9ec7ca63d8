package rustgen

// Enum is an enumeration definition.
type Enum struct {
	def      typeDef
	variants []*Variant
}

// NewEnum returns an enum definition with the provided name.
func NewEnum(name string) *Enum {
	return &Enum{def: newTypeDef(name)}
}

// Ty returns the enum's identity type.
func (e *Enum) Ty() *Type {
	return e.def.ty
}

// NewVariant pushes a variant to the enum, returning it for further
// configuration.
func (e *Enum) NewVariant(name string) *Variant {
	v := NewVariant(name)
	e.variants = append(e.variants, v)
	return v
}

// PushVariant pushes an already-built variant to the enum.
func (e *Enum) PushVariant(v *Variant) *Enum {
	e.variants = append(e.variants, v)
	return e
}

// PushDoc appends a documentation line.
func (e *Enum) PushDoc(line string) *Enum {
	e.def.docs.PushDoc(line)
	return e
}

// SetDoc overwrites the enum's documentation.
func (e *Enum) SetDoc(doc string) *Enum {
	e.def.docs.SetDoc(doc)
	return e
}

// Derive adds one or more macros to the derive list.
func (e *Enum) Derive(names ...string) *Enum {
	e.def.pushDerive(names...)
	return e
}

// Allow adds one or more lint-allow flags.
func (e *Enum) Allow(allows ...string) *Enum {
	e.def.pushAllow(allows...)
	return e
}

// Repr sets the representation hint, e.g. "u8".
func (e *Enum) Repr(repr string) *Enum {
	e.def.repr = repr
	return e
}

// PushAttr appends a free attribute.
func (e *Enum) PushAttr(attr string) *Enum {
	e.def.attrs.PushAttr(attr)
	return e
}

// SetVis sets the enum's visibility.
func (e *Enum) SetVis(vis Vis) *Enum {
	e.def.vis = vis
	return e
}

// PushGeneric appends a generic type parameter to the identity.
func (e *Enum) PushGeneric(t *Type) *Enum {
	e.def.ty.PushGeneric(t)
	return e
}

// ExtendGenerics appends multiple generic type parameters.
func (e *Enum) ExtendGenerics(types []*Type) *Enum {
	e.def.ty.ExtendGenerics(types)
	return e
}

// PushLifetime appends a lifetime parameter to the identity.
func (e *Enum) PushLifetime(lifetime string) *Enum {
	e.def.ty.PushLifetime(lifetime)
	return e
}

// PushBound appends a where-clause bound.
func (e *Enum) PushBound(bound *Bound) *Enum {
	e.def.bounds.PushBound(bound)
	return e
}

// ExtendBounds appends multiple where-clause bounds.
func (e *Enum) ExtendBounds(bounds []*Bound) *Enum {
	e.def.bounds.ExtendBounds(bounds)
	return e
}

// render writes the enum head, then a block containing each variant in
// insertion order.
func (e *Enum) render(w *Writer) error {
	if err := e.def.renderHead(w, "enum", nil); err != nil {
		return err
	}

	return w.Block(func() error {
		for _, v := range e.variants {
			if err := v.render(w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Variant is a single enum variant: name, docs, attributes and a field
// shape of its own (unit, tuple or named).
type Variant struct {
	name   string
	docs   Docs
	attrs  Attributes
	fields Fields

	err error
}

// NewVariant returns a new enum variant with the given name.
func NewVariant(name string) *Variant {
	return &Variant{
		name: name,
		docs: newItemDocs(),
	}
}

// Named adds a named field to the variant.
func (v *Variant) Named(name string, ty *Type) *Variant {
	if err := v.fields.Named(name, ty); err != nil && v.err == nil {
		v.err = err
	}
	return v
}

// Tuple adds a tuple field to the variant.
func (v *Variant) Tuple(ty *Type) *Variant {
	if err := v.fields.Tuple(ty); err != nil && v.err == nil {
		v.err = err
	}
	return v
}

// PushDoc appends a documentation line.
func (v *Variant) PushDoc(line string) *Variant {
	v.docs.PushDoc(line)
	return v
}

// PushAttr appends an attribute.
func (v *Variant) PushAttr(attr string) *Variant {
	v.attrs.PushAttr(attr)
	return v
}

// render writes docs, attributes, the variant name, its field shape and the
// trailing comma.
func (v *Variant) render(w *Writer) error {
	if v.err != nil {
		return v.err
	}

	v.docs.render(w)
	v.attrs.render(w)

	w.WriteString(v.name)
	if err := v.fields.render(w); err != nil {
		return err
	}
	w.WriteString(",\n")
	return nil
}
