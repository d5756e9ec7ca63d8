package rustgen

// Module is a nested `mod` definition. Its body is a full Scope, so modules
// nest arbitrarily and carry their own imports.
type Module struct {
	name  string
	vis   Vis
	docs  Docs
	attrs Attributes
	scope Scope
}

// NewModule returns a module definition with the provided name.
func NewModule(name string) *Module {
	return &Module{
		name:  name,
		docs:  newModuleDocs(),
		scope: Scope{imports: make(map[string]map[string]*Import)},
	}
}

// Name returns the module's name.
func (m *Module) Name() string {
	return m.name
}

// Scope returns the module's body scope.
func (m *Module) Scope() *Scope {
	return &m.scope
}

// SetVis sets the module's visibility.
func (m *Module) SetVis(vis Vis) *Module {
	m.vis = vis
	return m
}

// PushDoc appends a module documentation line, rendered `//!` inside the
// module body.
func (m *Module) PushDoc(line string) *Module {
	m.docs.PushDoc(line)
	return m
}

// PushAttr appends an attribute.
func (m *Module) PushAttr(attr string) *Module {
	m.attrs.PushAttr(attr)
	return m
}

// Import registers an import in the module's scope, returning the module so
// imports chain with further configuration.
func (m *Module) Import(path, name string) *Module {
	m.scope.Import(path, name)
	return m
}

// NewModule pushes a nested module, returning it.
func (m *Module) NewModule(name string) *Module {
	return m.scope.NewModule(name)
}

// GetModule returns the first nested module with the given name, or nil.
func (m *Module) GetModule(name string) *Module {
	return m.scope.GetModule(name)
}

// GetOrNewModule returns the first nested module with the given name,
// creating it if it does not exist.
func (m *Module) GetOrNewModule(name string) *Module {
	return m.scope.GetOrNewModule(name)
}

// NewStruct pushes a new struct definition, returning it.
func (m *Module) NewStruct(name string) *Struct {
	return m.scope.NewStruct(name)
}

// PushStruct pushes a struct definition.
func (m *Module) PushStruct(st *Struct) *Module {
	m.scope.PushStruct(st)
	return m
}

// NewEnum pushes a new enum definition, returning it.
func (m *Module) NewEnum(name string) *Enum {
	return m.scope.NewEnum(name)
}

// PushEnum pushes an enum definition.
func (m *Module) PushEnum(e *Enum) *Module {
	m.scope.PushEnum(e)
	return m
}

// NewTrait pushes a new trait definition, returning it.
func (m *Module) NewTrait(name string) *Trait {
	return m.scope.NewTrait(name)
}

// PushTrait pushes a trait definition.
func (m *Module) PushTrait(t *Trait) *Module {
	m.scope.PushTrait(t)
	return m
}

// NewFn pushes a new function definition, returning it.
func (m *Module) NewFn(name string) *Function {
	return m.scope.NewFn(name)
}

// PushFn pushes a function definition.
func (m *Module) PushFn(f *Function) *Module {
	m.scope.PushFn(f)
	return m
}

// NewImpl pushes a new impl block for the given target, returning it.
func (m *Module) NewImpl(target *Type) *Impl {
	return m.scope.NewImpl(target)
}

// PushImpl pushes an impl block.
func (m *Module) PushImpl(i *Impl) *Module {
	m.scope.PushImpl(i)
	return m
}

// Raw pushes raw text into the module body.
func (m *Module) Raw(text string) *Module {
	m.scope.Raw(text)
	return m
}

// render writes the module head followed by a block holding the module docs
// and the nested scope.
func (m *Module) render(w *Writer) error {
	m.attrs.render(w)
	m.vis.render(w)
	w.WriteString("mod " + m.name)

	return w.Block(func() error {
		m.docs.render(w)
		if !m.docs.IsDocsEmpty() && !m.scope.IsEmpty() {
			w.WriteString("\n")
		}
		return m.scope.Render(w)
	})
}
