package rustgen

import "github.com/teranos/rustgen/errors"

// itemKind tags the closed set of top-level item kinds.
type itemKind int

const (
	itemModule itemKind = iota
	itemStruct
	itemFunction
	itemTrait
	itemEnum
	itemImpl
	itemRaw
)

// item is the closed sum over everything a scope can hold. Exactly the
// field matching kind is set.
type item struct {
	kind   itemKind
	module *Module
	strct  *Struct
	fn     *Function
	trait  *Trait
	enum   *Enum
	impl   *Impl
	raw    string
}

func (it item) render(w *Writer) error {
	switch it.kind {
	case itemModule:
		return it.module.render(w)
	case itemStruct:
		return it.strct.render(w)
	case itemFunction:
		return it.fn.render(w, false)
	case itemTrait:
		return it.trait.render(w)
	case itemEnum:
		return it.enum.render(w)
	case itemImpl:
		return it.impl.render(w)
	case itemRaw:
		w.WriteString(it.raw + "\n")
		return nil
	default:
		return errors.AssertionFailedf("unknown item kind %d", it.kind)
	}
}
