package rustgen

import "github.com/teranos/rustgen/errors"

// FieldsKind is the layout discipline of a field list.
type FieldsKind int

const (
	// FieldsEmpty is the initial state: no fields at all (a unit item).
	FieldsEmpty FieldsKind = iota
	// FieldsTuple holds positional fields.
	FieldsTuple
	// FieldsNamed holds named fields.
	FieldsNamed
)

func (k FieldsKind) String() string {
	switch k {
	case FieldsTuple:
		return "tuple"
	case FieldsNamed:
		return "named"
	default:
		return "empty"
	}
}

// Fields is a set of fields committed to one of three mutually exclusive
// shapes. An empty set may become tuple- or named-shaped on first push; once
// committed the kind never changes, and pushing the other kind fails with
// ErrInvalidShape.
type Fields struct {
	kind  FieldsKind
	tuple []*Type
	named []*Field
}

// Kind returns the committed shape.
func (f *Fields) Kind() FieldsKind {
	return f.kind
}

// PushNamed appends a named field, committing the set to the named shape.
func (f *Fields) PushNamed(field *Field) error {
	if f.kind == FieldsTuple {
		return errors.Wrap(errors.ErrInvalidShape, "cannot push a named field onto a tuple field list")
	}
	f.kind = FieldsNamed
	f.named = append(f.named, field)
	return nil
}

// Named appends a named field built from name and ty.
func (f *Fields) Named(name string, ty *Type) error {
	return f.PushNamed(NewField(name, ty))
}

// AddNamed appends a named field and returns it for further configuration.
func (f *Fields) AddNamed(name string, ty *Type) (*Field, error) {
	field := NewField(name, ty)
	if err := f.PushNamed(field); err != nil {
		return nil, err
	}
	return field, nil
}

// Tuple appends a positional field, committing the set to the tuple shape.
func (f *Fields) Tuple(ty *Type) error {
	if f.kind == FieldsNamed {
		return errors.Wrap(errors.ErrInvalidShape, "cannot push a tuple field onto a named field list")
	}
	f.kind = FieldsTuple
	f.tuple = append(f.tuple, ty)
	return nil
}

// render writes the fields in their committed shape. Empty emits nothing;
// the caller supplies the statement terminator for the empty and tuple
// shapes.
func (f *Fields) render(w *Writer) error {
	switch f.kind {
	case FieldsEmpty:
		return nil
	case FieldsTuple:
		w.WriteString("(")
		for i, ty := range f.tuple {
			if i != 0 {
				w.WriteString(", ")
			}
			ty.render(w)
		}
		w.WriteString(")")
		return nil
	case FieldsNamed:
		return w.Block(func() error {
			for _, field := range f.named {
				field.renderField(w)
			}
			return nil
		})
	default:
		return errors.AssertionFailedf("unknown fields kind %d", f.kind)
	}
}
