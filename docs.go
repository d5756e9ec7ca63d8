package rustgen

import "strings"

// Docs is an ordered container of documentation lines. Item docs render with
// a "/// " prefix; module docs (see newModuleDocs) render with "//! ".
type Docs struct {
	lines  []string
	prefix string
}

// NewDocs returns an item documentation container with some initial text.
func NewDocs(doc string) *Docs {
	d := &Docs{prefix: "/// "}
	d.PushDoc(doc)
	return d
}

func newItemDocs() Docs {
	return Docs{prefix: "/// "}
}

func newModuleDocs() Docs {
	return Docs{prefix: "//! "}
}

// PushDoc appends one item of documentation, splitting on '\n' so the
// container stays line-delimited.
func (d *Docs) PushDoc(line string) *Docs {
	for _, l := range strings.Split(line, "\n") {
		d.lines = append(d.lines, l)
	}
	return d
}

// PushDocs appends multiple items of documentation.
func (d *Docs) PushDocs(lines []string) *Docs {
	for _, line := range lines {
		d.PushDoc(line)
	}
	return d
}

// SetDoc overwrites any existing documentation.
func (d *Docs) SetDoc(doc string) *Docs {
	d.ClearDocs()
	return d.PushDoc(doc)
}

// SetDocs overwrites any existing documentation with the given lines.
func (d *Docs) SetDocs(lines []string) *Docs {
	d.ClearDocs()
	return d.PushDocs(lines)
}

// ClearDocs removes all documentation lines.
func (d *Docs) ClearDocs() *Docs {
	d.lines = d.lines[:0]
	return d
}

// DocLineCount returns the number of documentation lines.
func (d *Docs) DocLineCount() int {
	return len(d.lines)
}

// IsDocsEmpty reports whether the container holds no documentation.
func (d *Docs) IsDocsEmpty() bool {
	return len(d.lines) == 0
}

// render writes the documentation line by line. Lines that already carry a
// doc-comment marker are written as-is.
func (d *Docs) render(w *Writer) {
	marker := strings.TrimRight(d.prefix, " ")
	for _, line := range d.lines {
		if strings.HasPrefix(line, marker) {
			w.WriteString(line + "\n")
		} else {
			w.WriteString(d.prefix + line + "\n")
		}
	}
}
