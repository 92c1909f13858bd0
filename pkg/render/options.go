package render

import theme "github.com/goliatone/go-theme"

// Options carries per-render data that renderers can use without the view
// itself changing shape.
type Options struct {
	// Theme holds the resolved theme configuration. Renderers that emit HTML
	// translate its tokens into CSS custom properties; others may ignore it.
	Theme *theme.RendererConfig

	// Extra is merged into the template context for template-backed renderers.
	Extra map[string]any
}
