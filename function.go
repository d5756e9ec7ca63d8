package rustgen

import "github.com/teranos/rustgen/errors"

// Self-parameter forms. The set is closed: a function either takes no self
// parameter or exactly one of these.
const (
	selfByValue  = "self"
	selfByRef    = "&self"
	selfByMutRef = "&mut self"
)

// Function is a function definition or declaration.
type Function struct {
	name string
	docs Docs
	// A lint attribute used to suppress a warning or error.
	allow string
	vis   Vis

	generics Generics
	argSelf  string
	args     []*Field
	ret      *Type
	bounds   Bounds

	// body is nil for a declaration (trait function without a default
	// body); an empty non-nil body renders as an empty block.
	body    []Body
	hasBody bool

	attrs Attributes
	// Function `extern` ABI, e.g. "C".
	externABI string
	isAsync   bool
}

// NewFn returns a new function definition with an empty body.
func NewFn(name string) *Function {
	return &Function{
		name:    name,
		docs:    newItemDocs(),
		hasBody: true,
	}
}

// NewTraitFn returns a new bodyless function declaration for use inside a
// trait. Adding a line later turns it into a default implementation.
func NewTraitFn(name string) *Function {
	return &Function{
		name: name,
		docs: newItemDocs(),
	}
}

// Name returns the function's name.
func (f *Function) Name() string {
	return f.name
}

// PushDoc appends a documentation line.
func (f *Function) PushDoc(line string) *Function {
	f.docs.PushDoc(line)
	return f
}

// Allow sets the lint attribute used to suppress a warning or error.
func (f *Function) Allow(allow string) *Function {
	f.allow = allow
	return f
}

// SetVis sets the function's visibility.
func (f *Function) SetVis(vis Vis) *Function {
	f.vis = vis
	return f
}

// PushAttr appends an attribute.
func (f *Function) PushAttr(attr string) *Function {
	f.attrs.PushAttr(attr)
	return f
}

// SetAsync marks the function async.
func (f *Function) SetAsync(isAsync bool) *Function {
	f.isAsync = isAsync
	return f
}

// ExternABI sets an `extern` ABI for the function, e.g. "C".
func (f *Function) ExternABI(abi string) *Function {
	f.externABI = abi
	return f
}

// ArgSelf adds `self` as the receiver parameter.
func (f *Function) ArgSelf() *Function {
	f.argSelf = selfByValue
	return f
}

// ArgRefSelf adds `&self` as the receiver parameter.
func (f *Function) ArgRefSelf() *Function {
	f.argSelf = selfByRef
	return f
}

// ArgMutSelf adds `&mut self` as the receiver parameter.
func (f *Function) ArgMutSelf() *Function {
	f.argSelf = selfByMutRef
	return f
}

// Arg adds a function parameter.
func (f *Function) Arg(name string, ty *Type) *Function {
	f.args = append(f.args, NewField(name, ty))
	return f
}

// Ret sets the return type.
func (f *Function) Ret(ty *Type) *Function {
	f.ret = ty
	return f
}

// PushGeneric appends a generic type parameter.
func (f *Function) PushGeneric(t *Type) *Function {
	f.generics.PushGeneric(t)
	return f
}

// PushLifetime appends a lifetime parameter.
func (f *Function) PushLifetime(lifetime string) *Function {
	f.generics.PushLifetime(lifetime)
	return f
}

// PushBound appends a where-clause bound.
func (f *Function) PushBound(bound *Bound) *Function {
	f.bounds.PushBound(bound)
	return f
}

// Line pushes a line onto the function body. On a declaration this creates
// the body.
func (f *Function) Line(line string) *Function {
	f.body = append(f.body, lineBody(line))
	f.hasBody = true
	return f
}

// PushBlock pushes a nested block onto the function body.
func (f *Function) PushBlock(b *Block) *Function {
	f.body = append(f.body, blockBody(b))
	f.hasBody = true
	return f
}

// render writes the function. inTrait selects declaration context: inside a
// trait a bodyless function renders as `...;` and must not carry a
// visibility modifier; everywhere else a body is mandatory.
func (f *Function) render(w *Writer, inTrait bool) error {
	f.docs.render(w)

	if f.allow != "" {
		w.Writef("#[allow(%s)]\n", f.allow)
	}

	f.attrs.render(w)

	if inTrait && f.vis != VisPrivate {
		return errors.Wrapf(errors.ErrInvalidVisibility,
			"trait function %q carries visibility %s", f.name, f.vis)
	}
	f.vis.render(w)

	if f.externABI != "" {
		w.Writef("extern %q ", f.externABI)
	}
	if f.isAsync {
		w.WriteString("async ")
	}

	w.WriteString("fn " + f.name)
	f.generics.render(w)

	w.WriteString("(")
	if f.argSelf != "" {
		w.WriteString(f.argSelf)
	}
	for i, arg := range f.args {
		if i != 0 || f.argSelf != "" {
			w.WriteString(", ")
		}
		arg.renderParam(w)
	}
	w.WriteString(")")

	if f.ret != nil {
		w.WriteString(" -> ")
		f.ret.render(w)
	}

	f.bounds.render(w)

	if !f.hasBody {
		if !inTrait {
			return errors.Wrapf(errors.ErrMissingBody,
				"function %q declared without a body outside a trait", f.name)
		}
		w.WriteString(";\n")
		return nil
	}

	return w.Block(func() error {
		for _, body := range f.body {
			if err := body.render(w); err != nil {
				return err
			}
		}
		return nil
	})
}
