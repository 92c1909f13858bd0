package main

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-chatedit/pkg/render"
)

// Built-in theme manifests. Real deployments would load these from a theme
// provider; the demo carries a small light/dark pair.
var builtinThemes = map[string]*theme.Manifest{
	"default": {
		Name:    "default",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":      "#007acc",
			"surface":     "#fafafa",
			"ink":         "#1f2430",
			"pane-radius": "12px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface": "#1f2430",
					"ink":     "#fafafa",
				},
			},
		},
	},
}

// resolveTheme maps a configured theme name/variant onto render options.
// Unknown names simply disable theming.
func resolveTheme(name, variant string) *theme.RendererConfig {
	if name == "" {
		return nil
	}
	manifest, ok := builtinThemes[name]
	if !ok {
		return nil
	}
	return render.ThemeConfig(&theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	})
}
