package pongo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func TestRenderTemplate_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello {{ name }}!")},
	}
	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplate_ExplicitExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"page.tmpl": {Data: []byte("ok")},
	}
	engine, err := New(WithFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("page.tmpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "ok" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplate_CustomExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html": {Data: []byte("custom")},
	}
	engine, err := New(WithFS(fsys), WithExtension("html"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "custom" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestRenderTemplate_FromBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.tmpl")
	if err := os.WriteFile(path, []byte("note: {{ body }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := New(WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := engine.RenderTemplate("note", map[string]any{"body": "hi"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "note: hi" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderString_WithGlobals(t *testing.T) {
	engine, err := New(
		WithFS(fstest.MapFS{}),
		WithGlobals(map[string]any{"app": "chatedit"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ app }}/{{ page }}", map[string]any{"page": "home"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "chatedit/home" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderString_DataOverridesGlobals(t *testing.T) {
	engine, err := New(
		WithFS(fstest.MapFS{}),
		WithGlobals(map[string]any{"name": "global"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ name }}", map[string]any{"name": "local"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "local" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderString_AutoEscapes(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ value }}", map[string]any{"value": "<b>bold</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<b>") {
		t.Fatalf("output not escaped: %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	shout := func(input any, param any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	}
	if err := engine.RegisterFilter("shout", shout); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	// Re-registration is a no-op rather than an error.
	if err := engine.RegisterFilter("shout", shout); err != nil {
		t.Fatalf("re-register filter: %v", err)
	}

	out, err := engine.RenderString(`{{ word|shout }}`, map[string]any{"word": "quiet"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "QUIET" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRegisterFilter_Validation(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Fatalf("expected validation error")
	}
}
