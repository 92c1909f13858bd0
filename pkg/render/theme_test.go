package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
)

func demoManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":  "#123456",
			"surface": "#ffffff",
		},
		Templates: map[string]string{
			"panes.document": "themes/acme/document.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"accent":  "#654321",
					"surface": "#1c1c1c",
				},
			},
		},
	}
}

func TestThemeConfig_BaseTokens(t *testing.T) {
	cfg := ThemeConfig(&theme.Selection{Theme: "acme", Manifest: demoManifest()})
	if cfg == nil {
		t.Fatalf("expected config")
	}
	want := map[string]string{
		"--accent":  "#123456",
		"--surface": "#ffffff",
	}
	if diff := cmp.Diff(want, cfg.CSSVars); diff != "" {
		t.Fatalf("unexpected css vars (-want +got):\n%s", diff)
	}
	if cfg.Partials["panes.document"] != "themes/acme/document.tmpl" {
		t.Fatalf("unexpected partials: %+v", cfg.Partials)
	}
}

func TestThemeConfig_VariantOverrides(t *testing.T) {
	cfg := ThemeConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: demoManifest()})
	if cfg.Tokens["accent"] != "#654321" {
		t.Fatalf("variant token not applied: %+v", cfg.Tokens)
	}
	if cfg.CSSVars["--surface"] != "#1c1c1c" {
		t.Fatalf("variant css var not applied: %+v", cfg.CSSVars)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("variant name lost: %q", cfg.Variant)
	}
}

func TestThemeConfig_AssetResolver(t *testing.T) {
	cfg := ThemeConfig(&theme.Selection{Theme: "acme", Manifest: demoManifest()})
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected asset url: %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
}

func TestThemeConfig_NilSelection(t *testing.T) {
	if cfg := ThemeConfig(nil); cfg != nil {
		t.Fatalf("expected nil config")
	}
	if cfg := ThemeConfig(&theme.Selection{Theme: "acme"}); cfg != nil {
		t.Fatalf("expected nil config without manifest")
	}
}

func TestCSSVarsStyle_SortedOutput(t *testing.T) {
	cfg := ThemeConfig(&theme.Selection{Theme: "acme", Manifest: demoManifest()})
	got := CSSVarsStyle(cfg)
	want := "--accent: #123456; --surface: #ffffff"
	if got != want {
		t.Fatalf("unexpected style: %q", got)
	}
}

func TestCSSVarsStyle_Empty(t *testing.T) {
	if got := CSSVarsStyle(nil); got != "" {
		t.Fatalf("expected empty style, got %q", got)
	}
}
