package rustgen

import (
	"sort"
	"strings"

	"github.com/teranos/rustgen/logger"
)

// Import is a single `use` statement entry.
type Import struct {
	path string
	name string
	vis  Vis
}

// NewImport returns a new import of name from path.
func NewImport(path, name string) *Import {
	return &Import{path: path, name: name}
}

// SetVis sets the import's visibility.
func (i *Import) SetVis(vis Vis) *Import {
	i.vis = vis
	return i
}

// Scope is the top-level ordered collection of items plus the pending
// import table, serialized as one document.
type Scope struct {
	// imports is keyed by path, then by imported name, so repeated imports
	// of the same (path, name) pair collapse.
	imports map[string]map[string]*Import
	items   []item
}

// NewScope returns a new, empty scope.
func NewScope() *Scope {
	return &Scope{imports: make(map[string]map[string]*Import)}
}

// Import registers an import of name from path, returning the import entry.
// Importing the same (path, name) pair again returns the existing entry.
func (s *Scope) Import(path, name string) *Import {
	if s.imports == nil {
		s.imports = make(map[string]map[string]*Import)
	}
	group, ok := s.imports[path]
	if !ok {
		group = make(map[string]*Import)
		s.imports[path] = group
	}
	if existing, ok := group[name]; ok {
		return existing
	}
	imp := NewImport(path, name)
	group[name] = imp
	return imp
}

// NewModule pushes a new module definition, returning it. Two modules with
// the same name may coexist; lookups return the first in insertion order.
func (s *Scope) NewModule(name string) *Module {
	m := NewModule(name)
	s.items = append(s.items, item{kind: itemModule, module: m})
	return m
}

// PushModule pushes a module definition.
func (s *Scope) PushModule(m *Module) *Scope {
	s.items = append(s.items, item{kind: itemModule, module: m})
	return s
}

// GetModule returns the first module with the given name, or nil.
func (s *Scope) GetModule(name string) *Module {
	for _, it := range s.items {
		if it.kind == itemModule && it.module.Name() == name {
			return it.module
		}
	}
	return nil
}

// GetOrNewModule returns the first module with the given name, creating it
// if it does not exist.
func (s *Scope) GetOrNewModule(name string) *Module {
	if m := s.GetModule(name); m != nil {
		return m
	}
	logger.Debugw("scope module created", "module", name)
	return s.NewModule(name)
}

// NewStruct pushes a new struct definition, returning it.
func (s *Scope) NewStruct(name string) *Struct {
	st := NewStruct(name)
	s.items = append(s.items, item{kind: itemStruct, strct: st})
	return st
}

// PushStruct pushes a struct definition.
func (s *Scope) PushStruct(st *Struct) *Scope {
	s.items = append(s.items, item{kind: itemStruct, strct: st})
	return s
}

// NewFn pushes a new function definition, returning it.
func (s *Scope) NewFn(name string) *Function {
	f := NewFn(name)
	s.items = append(s.items, item{kind: itemFunction, fn: f})
	return f
}

// PushFn pushes a function definition.
func (s *Scope) PushFn(f *Function) *Scope {
	s.items = append(s.items, item{kind: itemFunction, fn: f})
	return s
}

// NewEnum pushes a new enum definition, returning it.
func (s *Scope) NewEnum(name string) *Enum {
	e := NewEnum(name)
	s.items = append(s.items, item{kind: itemEnum, enum: e})
	return e
}

// PushEnum pushes an enum definition.
func (s *Scope) PushEnum(e *Enum) *Scope {
	s.items = append(s.items, item{kind: itemEnum, enum: e})
	return s
}

// NewTrait pushes a new trait definition, returning it.
func (s *Scope) NewTrait(name string) *Trait {
	t := NewTrait(name)
	s.items = append(s.items, item{kind: itemTrait, trait: t})
	return t
}

// PushTrait pushes a trait definition.
func (s *Scope) PushTrait(t *Trait) *Scope {
	s.items = append(s.items, item{kind: itemTrait, trait: t})
	return s
}

// NewImpl pushes a new impl block for the given target, returning it.
func (s *Scope) NewImpl(target *Type) *Impl {
	i := NewImpl(target)
	s.items = append(s.items, item{kind: itemImpl, impl: i})
	return i
}

// PushImpl pushes an impl block.
func (s *Scope) PushImpl(i *Impl) *Scope {
	s.items = append(s.items, item{kind: itemImpl, impl: i})
	return s
}

// Raw pushes raw text, written to the output verbatim.
func (s *Scope) Raw(text string) *Scope {
	s.items = append(s.items, item{kind: itemRaw, raw: text})
	return s
}

// IsEmpty reports whether the scope holds neither imports nor items.
func (s *Scope) IsEmpty() bool {
	return len(s.imports) == 0 && len(s.items) == 0
}

// ItemCount returns the number of items pushed so far.
func (s *Scope) ItemCount() int {
	return len(s.items)
}

// renderImports writes the consolidated `use` statements: imports are
// grouped by exact path equality, paths in sorted order, the distinct
// imported names sorted inside a brace group when there is more than one.
// A name that itself carries a path is truncated to its first segment.
func (s *Scope) renderImports(w *Writer) {
	paths := make([]string, 0, len(s.imports))
	for path := range s.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		seen := make(map[string]bool)
		names := make([]string, 0, len(s.imports[path]))
		for name := range s.imports[path] {
			head, _, _ := strings.Cut(name, pathSep)
			if !seen[head] {
				seen[head] = true
				names = append(names, head)
			}
		}
		sort.Strings(names)

		if len(names) == 1 {
			w.Writef("use %s%s%s;\n", path, pathSep, names[0])
		} else {
			w.Writef("use %s%s{%s};\n", path, pathSep, strings.Join(names, ", "))
		}
	}
}

// Render writes the whole scope into w: consolidated imports first, then
// every item in insertion order, one blank line between successive items.
// An empty scope renders nothing.
func (s *Scope) Render(w *Writer) error {
	s.renderImports(w)

	if len(s.imports) != 0 && len(s.items) != 0 {
		w.WriteString("\n")
	}

	for i, it := range s.items {
		if i != 0 {
			w.WriteString("\n")
		}
		if err := it.render(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the scope to a string using a fresh writer.
// Rendering is read-only: the same scope renders to the same string every
// time.
func (s *Scope) RenderString() (string, error) {
	w := NewWriter()
	if err := s.Render(w); err != nil {
		return "", err
	}
	out := w.String()
	logger.Debugw("scope rendered", "items", len(s.items), "bytes", len(out))
	return out, nil
}
