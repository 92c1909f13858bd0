package session

import (
	"log/slog"

	"github.com/goliatone/go-chatedit/pkg/assistant"
	"github.com/goliatone/go-chatedit/pkg/instruction"
	"github.com/goliatone/go-chatedit/pkg/schema"
	"github.com/goliatone/go-chatedit/pkg/state"
)

// Option customises session construction.
type Option func(*Session)

// WithSchema attaches a form definition. The schema only informs rendering
// and assistant prompts; instruction application stays schema-free.
func WithSchema(form schema.Form) Option {
	return func(s *Session) {
		s.schema = form
	}
}

// WithDocument seeds the document buffer.
func WithDocument(content string) Option {
	return func(s *Session) {
		s.document = state.NewDocument(content)
	}
}

// WithValues seeds the form mapping.
func WithValues(values map[string]string) Option {
	return func(s *Session) {
		s.form = state.FormWithValues(values)
	}
}

// WithAssistant attaches a chat collaborator consulted on every message.
func WithAssistant(a assistant.Assistant) Option {
	return func(s *Session) {
		s.collab = a
	}
}

// WithParser injects a custom instruction parser.
func WithParser(parser *instruction.Parser) Option {
	return func(s *Session) {
		s.parser = parser
	}
}

// WithLogger injects the diagnostics logger shared with the default parser.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithAppendSeparator overrides the separator placed between the existing
// document buffer and appended text. The default is a single newline.
func WithAppendSeparator(sep string) Option {
	return func(s *Session) {
		s.separator = sep
	}
}
