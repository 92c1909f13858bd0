package text

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/schema"
)

func sampleView() render.View {
	return render.View{
		Document: "# Atlas\n\nIntro paragraph.",
		Schema: schema.Form{
			Title: "Assessment",
			Fields: []schema.Field{
				{ID: "1.1", Label: "Project Title"},
				{ID: "1.2", Label: "Summary"},
			},
		},
		Values: map[string]string{
			"1.1":           "Atlas",
			"1.1.rationale": "From the chat.",
		},
	}
}

func TestRender_DocumentAndForm(t *testing.T) {
	out, err := New().Render(context.Background(), sampleView(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "# Atlas") {
		t.Fatalf("document missing:\n%s", text)
	}
	if !strings.Contains(text, "Assessment\n==========") {
		t.Fatalf("title underline missing:\n%s", text)
	}
	if !strings.Contains(text, "[x] 1.1 Project Title") {
		t.Fatalf("answered marker missing:\n%s", text)
	}
	if !strings.Contains(text, "[ ] 1.2 Summary") {
		t.Fatalf("unanswered marker missing:\n%s", text)
	}
	if !strings.Contains(text, "rationale: From the chat.") {
		t.Fatalf("rationale missing:\n%s", text)
	}
}

func TestRender_EmptyView(t *testing.T) {
	out, err := New().Render(context.Background(), render.View{}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRender_DocumentOnly(t *testing.T) {
	out, err := New().Render(context.Background(), render.View{Document: "just notes"}, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "just notes\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRender_MultilineValueTruncated(t *testing.T) {
	view := render.View{
		Schema: schema.Form{Fields: []schema.Field{{ID: "1.2", Label: "Summary"}}},
		Values: map[string]string{"1.2": "first line\nsecond line"},
	}
	out, err := New().Render(context.Background(), view, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "first line …") {
		t.Fatalf("continuation marker missing:\n%s", text)
	}
	if strings.Contains(text, "second line") {
		t.Fatalf("later lines leaked:\n%s", text)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, sampleView(), render.Options{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRenderer_Identity(t *testing.T) {
	r := New()
	if r.Name() != "text" {
		t.Fatalf("unexpected name: %q", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/plain") {
		t.Fatalf("unexpected content type: %q", r.ContentType())
	}
}
