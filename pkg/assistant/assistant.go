// Package assistant holds the chat collaborators a session can consult: a
// deterministic scripted assistant for demos and tests, and a remote
// chat-completions client. Assistants reply with free-form text that may
// embed edit instructions; the session parses and applies them.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-chatedit/pkg/schema"
)

// Snapshot is the read-only state an assistant sees when composing a reply.
type Snapshot struct {
	Document string
	Schema   schema.Form
	Values   map[string]string
}

// Value returns the current value for a field identifier.
func (s Snapshot) Value(id string) string {
	return s.Values[id]
}

// Assistant produces one reply per user message. Replies may contain embedded
// JSON edit instructions or the edits envelope; plain prose is also valid.
type Assistant interface {
	Reply(ctx context.Context, message string, snapshot Snapshot) (string, error)
}

// Config selects and configures an assistant provider.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// New constructs an assistant for the configured provider. An empty provider
// falls back to the scripted assistant so demos run without credentials.
func New(cfg Config) (Assistant, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "scripted":
		return NewScripted(), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("assistant: openai provider requires an api key")
		}
		return NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("assistant: unknown provider %q", cfg.Provider)
	}
}
