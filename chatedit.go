// Package chatedit wires a chat-style interface to live document and form
// editing. Chat messages (typically assistant replies) carry embedded JSON
// edit instructions; the session parses them, applies them to an in-memory
// document buffer and form mapping, and hands the updated state back to the
// UI for re-rendering.
package chatedit

import (
	"github.com/goliatone/go-chatedit/pkg/instruction"
	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/schema"
	"github.com/goliatone/go-chatedit/pkg/session"
)

// Instruction is one structured edit directive extracted from a chat message.
type Instruction = instruction.Instruction

// Kind enumerates the edit directives the parser understands.
type Kind = instruction.Kind

const (
	KindAppend  = instruction.KindAppend
	KindReplace = instruction.KindReplace
)

// Reply is the outcome of one chat turn.
type Reply = session.Reply

// Session owns one document and form for a UI connection's lifetime.
type Session = session.Session

// Option configures a session.
type Option = session.Option

// View is the snapshot renderers consume.
type View = render.View

// NewSession exposes the session constructor from the top-level module.
func NewSession(options ...Option) *Session {
	return session.New(options...)
}

// ParseInstructions extracts edit instructions from a chat message using the
// default parser. Malformed blocks are skipped, never raised.
func ParseInstructions(message string) []Instruction {
	return instruction.Parse(message)
}

// DefaultSchema returns the built-in assessment questionnaire used by the
// demos.
func DefaultSchema() schema.Form {
	return schema.Default()
}
