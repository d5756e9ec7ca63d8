package rustgen

// Body is one element of a function body: either a literal line or a nested
// block. Exactly one of the two is set.
type Body struct {
	line  string
	block *Block
}

func lineBody(line string) Body {
	return Body{line: line}
}

func blockBody(b *Block) Body {
	return Body{block: b}
}

func (b Body) render(w *Writer) error {
	if b.block != nil {
		return b.block.render(w)
	}
	w.WriteString(b.line + "\n")
	return nil
}

// Block is a freeform brace block with optional text before the opening
// brace and after the closing brace, e.g. `match x` ... `;`. Blocks nest.
type Block struct {
	before string
	after  string
	body   []Body
}

// NewBlock returns a block with the given text before the opening brace.
func NewBlock(before string) *Block {
	return &Block{before: before}
}

// Line pushes a literal line onto the block.
func (b *Block) Line(line string) *Block {
	b.body = append(b.body, lineBody(line))
	return b
}

// PushBlock nests another block inside this one.
func (b *Block) PushBlock(nested *Block) *Block {
	b.body = append(b.body, blockBody(nested))
	return b
}

// After sets the text written directly after the closing brace.
func (b *Block) After(after string) *Block {
	b.after = after
	return b
}

func (b *Block) render(w *Writer) error {
	if b.before != "" {
		w.WriteString(b.before)
	}

	if !w.StartOfLine() {
		w.WriteString(" ")
	}
	w.WriteString("{\n")

	err := w.Indent(func() error {
		for _, body := range b.body {
			if err := body.render(w); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.WriteString("}")
	if b.after != "" {
		w.WriteString(b.after)
	}
	w.WriteString("\n")
	return nil
}
