package rustgen

// Vis is an item's visibility level.
type Vis int

const (
	// VisPrivate is the default: no visibility modifier at all.
	VisPrivate Vis = iota
	// VisPub is fully public.
	VisPub
	// VisPubCrate is public to the entire crate.
	VisPubCrate
	// VisPubSuper is public to only the parent module.
	VisPubSuper
)

// Token returns the raw visibility modifier, or "" for private.
func (v Vis) Token() string {
	switch v {
	case VisPub:
		return "pub"
	case VisPubCrate:
		return "pub(crate)"
	case VisPubSuper:
		return "pub(super)"
	default:
		return ""
	}
}

func (v Vis) String() string {
	if v == VisPrivate {
		return "private"
	}
	return v.Token()
}

// render writes the modifier followed by a space, or nothing for private.
func (v Vis) render(w *Writer) {
	if tok := v.Token(); tok != "" {
		w.WriteString(tok + " ")
	}
}
