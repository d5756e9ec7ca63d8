package rustgen

import "strings"

// Attributes is an ordered container of item attributes. Each element is a
// single attribute; missing "#[...]" brackets are added at render time.
type Attributes struct {
	attrs []string
}

// NewAttributes returns an attribute container seeded with the given
// attributes.
func NewAttributes(attrs ...string) *Attributes {
	a := &Attributes{}
	a.ExtendAttrs(attrs)
	return a
}

// AttrCount returns the number of attributes in the container.
func (a *Attributes) AttrCount() int {
	return len(a.attrs)
}

// IsAttrsEmpty reports whether the container is empty.
func (a *Attributes) IsAttrsEmpty() bool {
	return len(a.attrs) == 0
}

// ClearAttrs removes all attributes.
func (a *Attributes) ClearAttrs() *Attributes {
	a.attrs = a.attrs[:0]
	return a
}

// Attrs returns the attributes set on this item.
func (a *Attributes) Attrs() []string {
	return a.attrs
}

// HasAttr checks whether an attribute is already present.
func (a *Attributes) HasAttr(attr string) bool {
	for _, existing := range a.attrs {
		if existing == attr {
			return true
		}
	}
	return false
}

// SetAttrs overwrites any existing attributes.
func (a *Attributes) SetAttrs(attrs []string) *Attributes {
	a.attrs = append(a.attrs[:0], attrs...)
	return a
}

// PushAttr appends a single attribute.
func (a *Attributes) PushAttr(attr string) *Attributes {
	a.attrs = append(a.attrs, attr)
	return a
}

// ExtendAttrs appends multiple attributes.
func (a *Attributes) ExtendAttrs(attrs []string) *Attributes {
	a.attrs = append(a.attrs, attrs...)
	return a
}

// render writes one attribute per line, adding the wrapping "#[...]"
// brackets when missing.
func (a *Attributes) render(w *Writer) {
	for _, attr := range a.attrs {
		if !strings.HasPrefix(attr, "#[") {
			w.WriteString("#[")
		}
		w.WriteString(attr)
		if !strings.HasSuffix(attr, "]") {
			w.WriteString("]")
		}
		w.WriteString("\n")
	}
}
