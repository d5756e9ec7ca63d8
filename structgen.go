package rustgen

// Struct is a struct definition.
type Struct struct {
	def    typeDef
	fields Fields
}

// NewStruct returns a struct definition with the provided name.
func NewStruct(name string) *Struct {
	return &Struct{def: newTypeDef(name)}
}

// Ty returns the struct's identity type.
func (s *Struct) Ty() *Type {
	return s.def.ty
}

// Field adds a named field to the struct.
//
// A struct can either hold named fields or tuple fields, but not both;
// mixing them latches ErrInvalidShape, reported when the struct is rendered.
func (s *Struct) Field(name string, ty *Type) *Struct {
	s.def.latch(s.fields.Named(name, ty))
	return s
}

// AddField adds a named field and returns it for further configuration
// (docs, attributes, visibility).
func (s *Struct) AddField(name string, ty *Type) *Field {
	field, err := s.fields.AddNamed(name, ty)
	if err != nil {
		s.def.latch(err)
		// Detached field so a fluent chain stays nil-safe; the latched
		// error still fails the render.
		return NewField(name, ty)
	}
	return field
}

// PushField adds an already-built named field to the struct.
func (s *Struct) PushField(field *Field) *Struct {
	s.def.latch(s.fields.PushNamed(field))
	return s
}

// TupleField adds a tuple field to the struct.
func (s *Struct) TupleField(ty *Type) *Struct {
	s.def.latch(s.fields.Tuple(ty))
	return s
}

// PushDoc appends a documentation line.
func (s *Struct) PushDoc(line string) *Struct {
	s.def.docs.PushDoc(line)
	return s
}

// SetDoc overwrites the struct's documentation.
func (s *Struct) SetDoc(doc string) *Struct {
	s.def.docs.SetDoc(doc)
	return s
}

// Derive adds one or more macros to the derive list.
func (s *Struct) Derive(names ...string) *Struct {
	s.def.pushDerive(names...)
	return s
}

// Allow adds one or more lint-allow flags, one "#[allow(...)]" line each.
func (s *Struct) Allow(allows ...string) *Struct {
	s.def.pushAllow(allows...)
	return s
}

// Repr sets the representation hint, e.g. "C".
func (s *Struct) Repr(repr string) *Struct {
	s.def.repr = repr
	return s
}

// PushAttr appends a free attribute.
func (s *Struct) PushAttr(attr string) *Struct {
	s.def.attrs.PushAttr(attr)
	return s
}

// SetVis sets the struct's visibility.
func (s *Struct) SetVis(vis Vis) *Struct {
	s.def.vis = vis
	return s
}

// PushGeneric appends a generic type parameter to the identity.
func (s *Struct) PushGeneric(t *Type) *Struct {
	s.def.ty.PushGeneric(t)
	return s
}

// ExtendGenerics appends multiple generic type parameters.
func (s *Struct) ExtendGenerics(types []*Type) *Struct {
	s.def.ty.ExtendGenerics(types)
	return s
}

// PushLifetime appends a lifetime parameter to the identity.
func (s *Struct) PushLifetime(lifetime string) *Struct {
	s.def.ty.PushLifetime(lifetime)
	return s
}

// PushBound appends a where-clause bound.
func (s *Struct) PushBound(bound *Bound) *Struct {
	s.def.bounds.PushBound(bound)
	return s
}

// ExtendBounds appends multiple where-clause bounds.
func (s *Struct) ExtendBounds(bounds []*Bound) *Struct {
	s.def.bounds.ExtendBounds(bounds)
	return s
}

// render writes the struct: the shared head, then the field shape. Unit and
// tuple shapes receive the explicit ";" statement terminator; a named block
// closes itself.
func (s *Struct) render(w *Writer) error {
	if err := s.def.renderHead(w, "struct", nil); err != nil {
		return err
	}
	if err := s.fields.render(w); err != nil {
		return err
	}

	switch s.fields.Kind() {
	case FieldsEmpty, FieldsTuple:
		w.WriteString(";\n")
	case FieldsNamed:
		// Block already terminated the statement.
	}
	return nil
}
