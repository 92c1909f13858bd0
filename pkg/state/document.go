package state

import "github.com/goliatone/go-chatedit/pkg/instruction"

// DefaultSeparator is placed between the existing buffer and appended text.
// It is a formatting convention, not a correctness requirement; sessions can
// swap it out.
const DefaultSeparator = "\n"

// Document is the live text buffer behind the Markdown pane. The zero value
// is an empty document. Apply is pure: it returns the next state and never
// fails, so callers can fold instruction sequences without error handling.
type Document struct {
	buffer    string
	separator string
	sepSet    bool
}

// NewDocument constructs a document seeded with content, using the default
// append separator.
func NewDocument(content string) Document {
	return Document{buffer: content}
}

// WithSeparator returns a copy of the document using the supplied append
// separator. An empty separator joins appended text directly.
func (d Document) WithSeparator(sep string) Document {
	d.separator = sep
	d.sepSet = true
	return d
}

// Content returns the current buffer.
func (d Document) Content() string {
	return d.buffer
}

// Empty reports whether the buffer holds no text.
func (d Document) Empty() bool {
	return d.buffer == ""
}

// Apply produces the next document state for one instruction. Instructions
// addressing form fields leave the document untouched.
func (d Document) Apply(in instruction.Instruction) Document {
	if !in.TargetsDocument() {
		return d
	}
	switch in.Kind {
	case instruction.KindAppend:
		if d.buffer == "" {
			d.buffer = in.Text
			return d
		}
		d.buffer += d.sep() + in.Text
		return d
	case instruction.KindReplace:
		d.buffer = in.Value
		return d
	default:
		return d
	}
}

// ApplyAll folds a sequence of instructions over the document in order.
func (d Document) ApplyAll(instructions []instruction.Instruction) Document {
	for _, in := range instructions {
		d = d.Apply(in)
	}
	return d
}

func (d Document) sep() string {
	if !d.sepSet {
		return DefaultSeparator
	}
	return d.separator
}
