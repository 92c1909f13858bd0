// Package session wires the edit-instruction parser, the state mutators, and
// an optional chat assistant into the per-connection pipeline: one message in,
// instructions parsed and applied, updated state out.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-chatedit/pkg/assistant"
	"github.com/goliatone/go-chatedit/pkg/instruction"
	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/schema"
	"github.com/goliatone/go-chatedit/pkg/state"
)

// Session owns one document buffer and one form for the lifetime of a UI
// connection. It is deliberately single-threaded: each message runs the parse
// then apply cycle to completion before the next one starts, so no locking
// happens here. Callers that multiplex sessions across goroutines serialise
// access themselves.
type Session struct {
	parser    *instruction.Parser
	document  state.Document
	form      state.Form
	schema    schema.Form
	collab    assistant.Assistant
	logger    *slog.Logger
	separator string
}

// Reply is the outcome of one chat message: the text to display, the
// instructions that were applied, and the resulting state snapshot.
type Reply struct {
	// Text is what the chat pane should show. Empty when the message carried
	// only instructions; the UI decides on a fallback.
	Text string

	// Instructions lists what was applied, in application order.
	Instructions []instruction.Instruction

	// Applied is len(Instructions); zero means state is unchanged and the UI
	// may show its "no changes applied" notice.
	Applied int

	// Document is the buffer after application.
	Document string

	// Values is the form mapping after application.
	Values map[string]string
}

// New constructs a session applying any provided options.
func New(options ...Option) *Session {
	s := &Session{
		separator: state.DefaultSeparator,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.parser == nil {
		s.parser = instruction.New(instruction.WithLogger(s.logger))
	}
	s.document = s.document.WithSeparator(s.separator)
	return s
}

// HandleMessage runs one chat turn: instructions embedded in the user message
// are parsed first, then the assistant (when configured) is consulted and its
// reply parsed as well. All instructions apply in order. The method only
// fails when the context is cancelled or the assistant call errors; malformed
// or unknown instructions never surface here.
func (s *Session) HandleMessage(ctx context.Context, message string) (Reply, error) {
	if ctx == nil {
		return Reply{}, errors.New("session: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	instructions := s.parser.Parse(message)

	var display string
	if s.collab != nil {
		replyText, err := s.collab.Reply(ctx, message, s.Snapshot())
		if err != nil {
			return Reply{}, fmt.Errorf("session: assistant reply: %w", err)
		}
		replyInstructions, replyDisplay := s.parser.ParseReply(replyText)
		instructions = append(instructions, replyInstructions...)
		display = replyDisplay
	}

	s.apply(instructions)

	if s.logger != nil {
		s.logger.Debug("handled chat message",
			"instructions", len(instructions),
			"document_bytes", len(s.document.Content()),
			"fields", s.form.Len(),
		)
	}

	return Reply{
		Text:         display,
		Instructions: instructions,
		Applied:      len(instructions),
		Document:     s.document.Content(),
		Values:       s.form.Values(),
	}, nil
}

// Apply runs instructions against the session state directly, bypassing
// parsing. Useful for callers that already hold structured instructions.
func (s *Session) Apply(instructions ...instruction.Instruction) {
	s.apply(instructions)
}

func (s *Session) apply(instructions []instruction.Instruction) {
	s.document = s.document.ApplyAll(instructions)
	s.form = s.form.ApplyAll(instructions)
}

// Document returns the current buffer.
func (s *Session) Document() string {
	return s.document.Content()
}

// Values returns a copy of the current form mapping.
func (s *Session) Values() map[string]string {
	return s.form.Values()
}

// Schema returns the form definition attached to this session.
func (s *Session) Schema() schema.Form {
	return s.schema
}

// View builds the snapshot renderers consume.
func (s *Session) View() render.View {
	return render.View{
		Document: s.document.Content(),
		Schema:   s.schema,
		Values:   s.form.Values(),
	}
}

// Snapshot builds the read-only state assistants see.
func (s *Session) Snapshot() assistant.Snapshot {
	return assistant.Snapshot{
		Document: s.document.Content(),
		Schema:   s.schema,
		Values:   s.form.Values(),
	}
}
