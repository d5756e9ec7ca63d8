package rustgen

import (
	"fmt"
	"strings"
)

// defaultIndentStep is the number of spaces added per indentation level.
const defaultIndentStep = 4

// Writer is the indentation-tracking sink every renderer writes through.
//
// Text is split into lines as it is written; a line receives the current
// indentation immediately before its first character only when the writer is
// positioned at the start of a line and the line is non-empty. Blank lines
// are never indented. Splitting one WriteString call into several at any
// point never changes the output.
type Writer struct {
	buf    []byte
	indent int
	step   int
}

// NewWriter returns an empty writer with the default indent step.
func NewWriter() *Writer {
	return &Writer{step: defaultIndentStep}
}

// String returns the accumulated output.
func (w *Writer) String() string {
	return string(w.buf)
}

// Len returns the number of bytes accumulated so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// StartOfLine reports whether the writer is positioned at the start of a
// line: the buffer is empty or ends in a newline.
func (w *Writer) StartOfLine() bool {
	return len(w.buf) == 0 || w.buf[len(w.buf)-1] == '\n'
}

func (w *Writer) pushIndent() {
	for i := 0; i < w.indent; i++ {
		w.buf = append(w.buf, ' ')
	}
}

// WriteString appends s to the output, indenting each non-empty line that
// begins at the start of an output line. A trailing newline in s is
// preserved but never forced. Writing an empty string is a no-op.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}

	shouldIndent := w.StartOfLine()

	lines := strings.Split(s, "\n")
	trailing := lines[len(lines)-1] == ""
	if trailing {
		// The empty tail only marks that s ends in a newline; the newline
		// itself is re-appended below.
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if i > 0 {
			w.buf = append(w.buf, '\n')
		}
		if shouldIndent && line != "" {
			w.pushIndent()
		}
		shouldIndent = true
		w.buf = append(w.buf, line...)
	}

	if trailing {
		w.buf = append(w.buf, '\n')
	}
}

// Write implements io.Writer so renderers can use the fmt machinery.
func (w *Writer) Write(p []byte) (int, error) {
	w.WriteString(string(p))
	return len(p), nil
}

// Writef writes formatted text through WriteString.
func (w *Writer) Writef(format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// Indent calls fn with the indentation level incremented by one step. The
// previous level is restored even when fn returns an error.
func (w *Writer) Indent(fn func() error) error {
	w.indent += w.step
	defer func() { w.indent -= w.step }()
	return fn()
}

// Block wraps fn inside a brace block: a separating space when mid-line,
// "{\n", the indented body, "}\n".
func (w *Writer) Block(fn func() error) error {
	if !w.StartOfLine() {
		w.WriteString(" ")
	}
	w.WriteString("{\n")
	if err := w.Indent(fn); err != nil {
		return err
	}
	w.WriteString("}\n")
	return nil
}
