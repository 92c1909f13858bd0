package instruction

import (
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"
)

// Envelope field names used by assistant replies. They mirror the payload the
// scripted and remote assistants emit.
const (
	envelopeEditsKey       = "edits"
	envelopeExplanationKey = "explanation of edits"
	envelopeFollowUpKey    = "follow-up question"

	// RationaleSuffix is appended to a field identifier when an assistant edit
	// carries a rationale alongside the answer. Identifiers stay opaque to the
	// mutator; the suffix only matters to renderers that want to pair them up.
	RationaleSuffix = ".rationale"
)

// Option customises parser construction.
type Option func(*Parser)

// WithLogger injects a logger used for diagnostics on dropped blocks. Parsing
// never surfaces errors to the caller; the log is the only trace.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser extracts edit instructions from free-form chat messages. The zero
// value is usable; New applies options on top of it.
type Parser struct {
	logger *slog.Logger
}

// New constructs a Parser applying any provided options.
func New(options ...Option) *Parser {
	p := &Parser{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Parse scans a chat message for embedded JSON edit instructions and returns
// them in the order they appear. Malformed blocks, unknown kinds, and payloads
// missing required fields are dropped; the rest of the message is still
// scanned. A message without any valid block yields an empty slice.
func (p *Parser) Parse(message string) []Instruction {
	instructions, _ := p.parse(message)
	return instructions
}

// ParseReply processes an assistant reply: it extracts instructions the same
// way Parse does, additionally lowering the edits envelope
// ({"explanation of edits", "edits", "follow-up question"}) into replace
// instructions, and returns the text the UI should display. Fenced blocks and
// envelopes that produced instructions are stripped from the display text.
func (p *Parser) ParseReply(reply string) ([]Instruction, string) {
	instructions, display := p.parse(reply)
	return instructions, display
}

func (p *Parser) parse(message string) ([]Instruction, string) {
	var instructions []Instruction
	display := message

	for _, b := range scanBlocks(message) {
		if !gjson.Valid(b.raw) {
			p.debug("skipping malformed JSON block", "offset", b.offset)
			continue
		}
		decoded, text, ok := p.decode(gjson.Parse(b.raw))
		if !ok {
			continue
		}
		instructions = append(instructions, decoded...)
		display = strings.Replace(display, b.outer, text, 1)
	}

	return instructions, tidyDisplay(display)
}

// decode lowers one JSON value into instructions. Arrays decode element by
// element; envelope objects contribute their edits plus display text; plain
// objects dispatch on their kind field.
func (p *Parser) decode(value gjson.Result) ([]Instruction, string, bool) {
	if value.IsArray() {
		var instructions []Instruction
		value.ForEach(func(_, element gjson.Result) bool {
			if in, ok := p.decodeOne(element); ok {
				instructions = append(instructions, in)
			}
			return true
		})
		if len(instructions) == 0 {
			return nil, "", false
		}
		return instructions, "", true
	}

	if value.Get(envelopeEditsKey).Exists() {
		return p.decodeEnvelope(value)
	}

	in, ok := p.decodeOne(value)
	if !ok {
		return nil, "", false
	}
	return []Instruction{in}, "", true
}

func (p *Parser) decodeOne(value gjson.Result) (Instruction, bool) {
	kind := value.Get("kind")
	if !kind.Exists() {
		p.debug("dropping block without kind")
		return Instruction{}, false
	}

	switch Kind(kind.String()) {
	case KindAppend:
		text := value.Get("text")
		if !text.Exists() {
			p.debug("dropping append without text payload")
			return Instruction{}, false
		}
		return Instruction{
			Kind:  KindAppend,
			Text:  text.String(),
			Field: value.Get("field").String(),
		}, true

	case KindReplace:
		payload := value.Get("value")
		if !payload.Exists() {
			p.debug("dropping replace without value payload")
			return Instruction{}, false
		}
		field := value.Get("field")
		document := value.Get("document").Bool()
		if !field.Exists() && !document {
			p.debug("dropping replace without target")
			return Instruction{}, false
		}
		return Instruction{
			Kind:     KindReplace,
			Field:    field.String(),
			Document: document,
			Value:    payload.String(),
		}, true

	default:
		p.debug("dropping unknown instruction kind", "kind", kind.String())
		return Instruction{}, false
	}
}

// decodeEnvelope lowers the assistant edits envelope into replace
// instructions: one for the answer, one for the rationale when present.
func (p *Parser) decodeEnvelope(value gjson.Result) ([]Instruction, string, bool) {
	var instructions []Instruction
	value.Get(envelopeEditsKey).ForEach(func(_, edit gjson.Result) bool {
		id := strings.TrimSpace(edit.Get("id").String())
		if id == "" {
			p.debug("dropping envelope edit without id")
			return true
		}
		if answer := edit.Get("answer"); answer.Exists() {
			instructions = append(instructions, Instruction{
				Kind:  KindReplace,
				Field: id,
				Value: answer.String(),
			})
		}
		if rationale := edit.Get("rationale"); rationale.Exists() {
			instructions = append(instructions, Instruction{
				Kind:  KindReplace,
				Field: id + RationaleSuffix,
				Value: rationale.String(),
			})
		}
		return true
	})

	display := envelopeDisplay(value)
	if len(instructions) == 0 && display == "" {
		return nil, "", false
	}
	return instructions, display, true
}

func envelopeDisplay(value gjson.Result) string {
	var parts []string
	if explanation := strings.TrimSpace(value.Get(envelopeExplanationKey).String()); explanation != "" {
		parts = append(parts, "**Update:** "+explanation)
	}
	if followUp := strings.TrimSpace(value.Get(envelopeFollowUpKey).String()); followUp != "" {
		parts = append(parts, "**Next:** "+followUp)
	}
	return strings.Join(parts, "\n\n")
}

// tidyDisplay collapses the whitespace gaps that stripping consumed blocks
// leaves behind. Prose fences and inline backticks stay untouched.
func tidyDisplay(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}

func (p *Parser) debug(msg string, args ...any) {
	if p == nil || p.logger == nil {
		return
	}
	p.logger.Debug(msg, args...)
}

// Parse extracts instructions using a default parser. Convenience for callers
// that do not need diagnostics.
func Parse(message string) []Instruction {
	return New().Parse(message)
}
