package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// envelope mirrors the reply payload the edit-instruction parser lowers into
// replace instructions.
type envelope struct {
	Explanation string         `json:"explanation of edits"`
	Edits       []envelopeEdit `json:"edits"`
	FollowUp    string         `json:"follow-up question"`
}

type envelopeEdit struct {
	ID        string `json:"id"`
	Answer    string `json:"answer"`
	Rationale string `json:"rationale,omitempty"`
}

// Scripted is a deterministic assistant used by demos and tests. It
// recognises a handful of commands and emits the same payload shapes a real
// model is prompted to produce.
type Scripted struct{}

// NewScripted constructs the scripted assistant.
func NewScripted() *Scripted {
	return &Scripted{}
}

// Reply handles the demo commands:
//
//	title: <value>     fill the first form field
//	note: <value>      append a note section to the document
//	document: <value>  replace the whole document
//	autofill example   fill several fields with sample data
//	show form          report fill status as prose, no edits
func (s *Scripted) Reply(_ context.Context, message string, snapshot Snapshot) (string, error) {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "title:"):
		value := strings.TrimSpace(trimmed[len("title:"):])
		if len(snapshot.Schema.Fields) == 0 {
			return marshalInstruction(map[string]any{
				"kind": "replace", "document": true,
				"value": "# " + value + "\n",
			})
		}
		first := snapshot.Schema.Fields[0]
		return marshalEnvelope(envelope{
			Explanation: fmt.Sprintf("Set %s to %q.", first.Label, value),
			Edits:       []envelopeEdit{{ID: first.ID, Answer: value}},
			FollowUp:    "Would you like me to help with the next question?",
		})

	case strings.HasPrefix(lower, "note:"):
		value := strings.TrimSpace(trimmed[len("note:"):])
		reply, err := marshalInstruction(map[string]any{
			"kind": "append",
			"text": "### Notes\n- " + value,
		})
		if err != nil {
			return "", err
		}
		return "Noted, adding it to the document.\n\n```json\n" + reply + "\n```", nil

	case strings.HasPrefix(lower, "document:"):
		value := strings.TrimSpace(trimmed[len("document:"):])
		return marshalInstruction(map[string]any{
			"kind": "replace", "document": true,
			"value": value,
		})

	case strings.Contains(lower, "autofill example"):
		return marshalEnvelope(autofillEnvelope(snapshot))

	case strings.Contains(lower, "show form"):
		return formStatus(snapshot), nil

	default:
		return marshalEnvelope(envelope{
			FollowUp: "Try 'title: My Project', 'note: remember this', 'autofill example', or 'show form'.",
		})
	}
}

func autofillEnvelope(snapshot Snapshot) envelope {
	samples := []envelopeEdit{
		{Answer: "Customer Support Data Processing", Rationale: "Descriptive working title."},
		{Answer: "Processing customer contact information for technical support.", Rationale: "Summarises the processing scope."},
		{Answer: "Resolving customer-reported issues requires contact history.", Rationale: "States the business need."},
	}
	env := envelope{
		Explanation: "Added example assessment data.",
		FollowUp:    "Should I help you complete the remaining sections?",
	}
	for i, field := range snapshot.Schema.Fields {
		if i >= len(samples) {
			break
		}
		edit := samples[i]
		edit.ID = field.ID
		env.Edits = append(env.Edits, edit)
	}
	return env
}

func formStatus(snapshot Snapshot) string {
	if len(snapshot.Schema.Fields) == 0 {
		return "There is no form attached to this session."
	}
	var sb strings.Builder
	sb.WriteString("**Current form status:**\n\n")
	for _, field := range snapshot.Schema.Fields {
		mark := "✗"
		if strings.TrimSpace(snapshot.Value(field.ID)) != "" {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "%s **%s**: %s\n", mark, field.ID, field.Label)
	}
	return sb.String()
}

func marshalEnvelope(env envelope) (string, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal envelope: %w", err)
	}
	return string(raw), nil
}

func marshalInstruction(payload map[string]any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal instruction: %w", err)
	}
	return string(raw), nil
}
