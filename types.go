package rustgen

import (
	"strings"

	"github.com/teranos/rustgen/errors"
)

// pathSep separates segments of a qualified Rust path.
const pathSep = "::"

// Type is a type expression: a name plus an ordered list of generic
// arguments. It is the atomic expression every other node embeds.
type Type struct {
	name     string
	generics Generics
}

// NewType returns a new type with the given name.
func NewType(name string) *Type {
	return &Type{name: name}
}

// T is shorthand for NewType with optional generic arguments:
//
//	T("Vec", T("String"))  // Vec<String>
func T(name string, args ...*Type) *Type {
	t := NewType(name)
	for _, arg := range args {
		t.generics.PushGeneric(arg)
	}
	return t
}

// Name returns the name of this type.
func (t *Type) Name() string {
	return t.name
}

// Clone returns a deep copy of this type.
func (t *Type) Clone() *Type {
	return &Type{
		name:     t.name,
		generics: *t.generics.clone(),
	}
}

// Qualified returns a copy of this type with its name prefixed by path.
// Qualifying a name that already contains a path separator is a programmer
// error and fails with ErrInvalidIdentity.
func (t *Type) Qualified(path string) (*Type, error) {
	if strings.Contains(t.name, pathSep) {
		return nil, errors.Wrapf(errors.ErrInvalidIdentity, "type %q is already qualified", t.name)
	}
	q := t.Clone()
	q.name = path + pathSep + t.name
	return q, nil
}

// PushGeneric appends a generic argument.
func (t *Type) PushGeneric(arg *Type) *Type {
	t.generics.PushGeneric(arg)
	return t
}

// ExtendGenerics appends multiple generic arguments.
func (t *Type) ExtendGenerics(args []*Type) *Type {
	t.generics.ExtendGenerics(args)
	return t
}

// ClearGenerics removes all generic arguments.
func (t *Type) ClearGenerics() *Type {
	t.generics.ClearGenerics()
	return t
}

// PushLifetime appends a lifetime parameter.
func (t *Type) PushLifetime(lifetime string) *Type {
	t.generics.PushLifetime(lifetime)
	return t
}

// render writes the name followed by any generic arguments.
func (t *Type) render(w *Writer) {
	w.WriteString(t.name)
	t.generics.render(w)
}
