package rustgen

import "strings"

// typeDef is the common header bundle shared by all top-level structural
// declarations: identity expression, visibility, documentation, derive
// list, lint-allow list, optional repr hint, free attributes and bounds.
//
// It also latches the first builder error seen during fluent construction;
// the owning item reports it at render time.
type typeDef struct {
	ty     *Type
	vis    Vis
	docs   Docs
	derive []string
	allow  []string
	repr   string
	bounds Bounds
	// Attributes other than the derive/allow/repr/doc lines.
	attrs Attributes

	err error
}

func newTypeDef(name string) typeDef {
	return typeDef{
		ty:   NewType(name),
		docs: newItemDocs(),
	}
}

// latch records the first construction error; later errors are dropped.
func (d *typeDef) latch(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *typeDef) pushDerive(names ...string) {
	d.derive = append(d.derive, names...)
}

func (d *typeDef) pushAllow(allows ...string) {
	d.allow = append(d.allow, allows...)
}

// renderHead writes the fixed head section order: docs, allow lines, the
// combined derive line, the repr line, free attributes, visibility, keyword,
// identity, parent list, bounds. Reordering any of these breaks the
// emission contract.
func (d *typeDef) renderHead(w *Writer, keyword string, parents []*Type) error {
	if d.err != nil {
		return d.err
	}

	d.docs.render(w)

	for _, allow := range d.allow {
		w.Writef("#[allow(%s)]\n", allow)
	}

	if len(d.derive) != 0 {
		w.Writef("#[derive(%s)]\n", strings.Join(d.derive, ", "))
	}

	if d.repr != "" {
		w.Writef("#[repr(%s)]\n", d.repr)
	}

	d.attrs.render(w)
	d.vis.render(w)

	w.WriteString(keyword + " ")
	d.ty.render(w)

	for i, parent := range parents {
		if i == 0 {
			w.WriteString(": ")
		} else {
			w.WriteString(" + ")
		}
		parent.render(w)
	}

	d.bounds.render(w)
	return nil
}
