// Package text renders a session view as plain text for terminal sessions:
// the raw document buffer followed by the form as an aligned table with
// fill-state markers.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-chatedit/pkg/render"
)

const answeredMark = "[x]"
const unansweredMark = "[ ]"

// Renderer implements render.Renderer for plain-text output. The zero value
// is ready to use.
type Renderer struct{}

// New constructs the text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the document pane, a separator, and the form table.
func (r *Renderer) Render(ctx context.Context, view render.View, _ render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("text renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	if view.Document != "" {
		sb.WriteString(view.Document)
		if !strings.HasSuffix(view.Document, "\n") {
			sb.WriteByte('\n')
		}
	}

	if len(view.Schema.Fields) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if view.Schema.Title != "" {
			sb.WriteString(view.Schema.Title)
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("=", len(view.Schema.Title)))
			sb.WriteByte('\n')
		}

		width := 0
		for _, field := range view.Schema.Fields {
			if n := len(field.ID) + len(field.Label) + 1; n > width {
				width = n
			}
		}
		for _, field := range view.Schema.Fields {
			mark := unansweredMark
			if view.Answered(field.ID) {
				mark = answeredMark
			}
			heading := field.ID + " " + field.Label
			fmt.Fprintf(&sb, "%s %-*s %s\n", mark, width, heading, firstLine(view.Value(field.ID)))
			if rationale := view.Rationale(field.ID); rationale != "" {
				fmt.Fprintf(&sb, "    rationale: %s\n", firstLine(rationale))
			}
		}
	}

	return []byte(sb.String()), nil
}

// firstLine keeps the table compact: multi-line values show their first line
// with a continuation marker.
func firstLine(value string) string {
	if idx := strings.IndexByte(value, '\n'); idx >= 0 {
		return value[:idx] + " …"
	}
	return value
}
