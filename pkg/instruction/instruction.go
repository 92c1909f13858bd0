package instruction

// Kind enumerates the edit directives the parser understands.
type Kind string

const (
	// KindAppend concatenates a text fragment onto the target.
	KindAppend Kind = "append"
	// KindReplace overwrites a form field or the whole document.
	KindReplace Kind = "replace"
)

// Instruction is a single structured edit directive extracted from a chat
// message. Values are immutable once parsed; mutators receive them by value.
type Instruction struct {
	Kind Kind

	// Text carries the fragment for append instructions.
	Text string

	// Field names the form field a replace (or targeted append) operates on.
	// Field identifiers are opaque strings; no schema validation happens here.
	Field string

	// Document marks a replace that swaps the entire document buffer.
	Document bool

	// Value carries the replacement payload.
	Value string
}

// TargetsDocument reports whether the instruction mutates the document buffer
// rather than a named form field.
func (in Instruction) TargetsDocument() bool {
	if in.Field != "" {
		return false
	}
	return in.Kind == KindAppend || in.Document
}

// TargetsForm reports whether the instruction addresses a named form field.
func (in Instruction) TargetsForm() bool {
	return in.Field != ""
}
