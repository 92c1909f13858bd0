package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = `You are a form and document editing assistant. You can update the
state shown to you by replying with a single JSON object:
{"explanation of edits": "...", "edits": [{"id": "<field id>", "answer": "...", "rationale": "..."}], "follow-up question": "..."}
To change the markdown document instead, embed instruction objects such as
{"kind": "append", "text": "..."} or {"kind": "replace", "document": true, "value": "..."}.
Reply with plain prose when no edit is needed.`

// OpenAI is a chat-completions client speaking the plain HTTP API.
type OpenAI struct {
	client   *http.Client
	apiKey   string
	model    string
	endpoint string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAI constructs the client. baseURL may point at any OpenAI-compatible
// endpoint; when empty the public API is used.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/chat/completions"
	} else {
		endpoint = strings.TrimRight(endpoint, "/")
		if !strings.HasSuffix(endpoint, "/chat/completions") {
			if strings.HasSuffix(endpoint, "/v1") {
				endpoint += "/chat/completions"
			} else {
				endpoint += "/v1/chat/completions"
			}
		}
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		client:   &http.Client{Timeout: 90 * time.Second},
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
	}
}

// Reply sends the user message plus a state snapshot and returns the model's
// raw reply text.
func (a *OpenAI) Reply(ctx context.Context, message string, snapshot Snapshot) (string, error) {
	payload := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "system", Content: snapshotContext(snapshot)},
			{Role: "user", Content: message},
		},
		Temperature: 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: call chat completions: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assistant: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant: chat completions returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("assistant: chat completions returned no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// snapshotContext serialises the current state for the model. The document is
// passed verbatim; the form as id/label/value triples.
func snapshotContext(snapshot Snapshot) string {
	var sb strings.Builder
	sb.WriteString("Current document:\n")
	sb.WriteString(snapshot.Document)
	if len(snapshot.Schema.Fields) > 0 {
		sb.WriteString("\n\nCurrent form:\n")
		for _, field := range snapshot.Schema.Fields {
			fmt.Fprintf(&sb, "- id=%q label=%q value=%q\n", field.ID, field.Label, snapshot.Value(field.ID))
		}
	}
	return sb.String()
}
