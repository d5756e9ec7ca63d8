package rustgen

import "github.com/teranos/rustgen/errors"

// Field is a named slot: an optional name, a type, and the docs, attributes
// and visibility attached to it. It serves as a struct field, a function
// parameter, and an associated-type value assignment.
type Field struct {
	name  string
	ty    *Type
	docs  Docs
	attrs Attributes
	vis   Vis
}

// NewField returns a field definition with the provided name and type.
func NewField(name string, ty *Type) *Field {
	return &Field{
		name: name,
		ty:   ty,
		docs: newItemDocs(),
	}
}

// NewUnnamedField returns a field definition with no name, used for
// anonymous slots.
func NewUnnamedField(ty *Type) *Field {
	return &Field{
		ty:   ty,
		docs: newItemDocs(),
	}
}

// IsNamed reports whether this field carries a name.
func (f *Field) IsNamed() bool {
	return f.name != ""
}

// Ty returns the field's type.
func (f *Field) Ty() *Type {
	return f.ty
}

// PushDoc appends a documentation line.
func (f *Field) PushDoc(line string) *Field {
	f.docs.PushDoc(line)
	return f
}

// PushDocs appends multiple documentation lines.
func (f *Field) PushDocs(lines []string) *Field {
	f.docs.PushDocs(lines)
	return f
}

// PushAttr appends an attribute.
func (f *Field) PushAttr(attr string) *Field {
	f.attrs.PushAttr(attr)
	return f
}

// ExtendAttrs appends multiple attributes.
func (f *Field) ExtendAttrs(attrs []string) *Field {
	f.attrs.ExtendAttrs(attrs)
	return f
}

// SetVis sets the field's visibility.
func (f *Field) SetVis(vis Vis) *Field {
	f.vis = vis
	return f
}

// renderField writes the field as one line of a named field block: docs,
// attributes, then "name: Type,".
func (f *Field) renderField(w *Writer) {
	f.docs.render(w)
	f.attrs.render(w)
	f.vis.render(w)

	if f.name != "" {
		w.WriteString(f.name + ": ")
	}
	f.ty.render(w)
	w.WriteString(",\n")
}

// renderParam writes the field as a function parameter: "name: Type" with
// no terminator.
func (f *Field) renderParam(w *Writer) {
	if f.name != "" {
		w.WriteString(f.name + ": ")
	}
	f.ty.render(w)
}

// renderAssocValue writes the field as an associated-type value assignment
// inside an impl block: "type Name = Type;".
func (f *Field) renderAssocValue(w *Writer) error {
	if f.name == "" {
		return errors.AssertionFailedf("associated type value must be named")
	}
	w.WriteString("type " + f.name + " = ")
	f.ty.render(w)
	w.WriteString(";\n")
	return nil
}
