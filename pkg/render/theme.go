package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig resolves a go-theme selection into the renderer configuration
// carried by Options. Manifest tokens become CSS custom properties, variant
// overrides win over base values, and asset lookups resolve against the
// manifest asset prefix.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(manifest.Templates, nil)
	assets := mergeStringMaps(manifest.Assets.Files, nil)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMaps(tokens, variant.Tokens)
		partials = mergeStringMaps(partials, variant.Templates)
		assets = mergeStringMaps(assets, variant.Assets.Files)
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	prefix := strings.TrimRight(manifest.Assets.Prefix, "/")
	resolver := func(key string) string {
		file, ok := assets[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		Partials: partials,
		CSSVars:  cssVars,
		AssetURL: resolver,
	}
}

// CSSVarsStyle flattens the resolved CSS variables into an inline style
// attribute value, sorted so rendered output stays deterministic.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(cfg.CSSVars[name])
	}
	return sb.String()
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
