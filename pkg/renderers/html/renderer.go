// Package html renders a session view into an HTML fragment: the live
// Markdown document pane beside the form pane. Markdown is converted with
// gomarkdown and sanitized with bluemonday before it reaches the page.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/gomarkdown/markdown"
	mdparser "github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-chatedit/pkg/render"
	"github.com/goliatone/go-chatedit/pkg/render/template"
	"github.com/goliatone/go-chatedit/pkg/render/template/pongo"
	"github.com/goliatone/go-chatedit/pkg/schema"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS fs.FS
	templates  template.Renderer
	policy     *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithSanitizerPolicy overrides the bluemonday policy applied to rendered
// markdown.
func WithSanitizerPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates template.Renderer
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}

	templates := cfg.templates
	if templates == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the combined document and form panes.
func (r *Renderer) Render(ctx context.Context, view render.View, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	data := map[string]any{
		"document_html": r.DocumentHTML(view.Document),
		"form":          formContext(view),
		"theme_style":   render.CSSVarsStyle(options.Theme),
	}
	for key, value := range options.Extra {
		data[key] = value
	}

	out, err := r.templates.RenderTemplate("templates/panes", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render panes: %w", err)
	}
	return []byte(out), nil
}

// DocumentHTML converts the document buffer from Markdown to sanitized HTML.
func (r *Renderer) DocumentHTML(content string) string {
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.AutoHeadingIDs)
	rendered := markdown.ToHTML([]byte(content), p, nil)
	return string(r.policy.SanitizeBytes(rendered))
}

// formContext flattens the schema plus live values into the shape the form
// template iterates over.
func formContext(view render.View) map[string]any {
	fields := make([]map[string]any, 0, len(view.Schema.Fields))
	for _, field := range view.Schema.Fields {
		fields = append(fields, map[string]any{
			"id":          field.ID,
			"label":       field.Label,
			"help":        field.Help,
			"widget":      string(widgetOrDefault(field)),
			"options":     field.Options,
			"placeholder": field.Placeholder,
			"required":    field.Required,
			"value":       view.Value(field.ID),
			"rationale":   view.Rationale(field.ID),
			"answered":    view.Answered(field.ID),
		})
	}
	return map[string]any{
		"title":       view.Schema.Title,
		"description": view.Schema.Description,
		"fields":      fields,
	}
}

func widgetOrDefault(field schema.Field) schema.Widget {
	if field.Widget == "" {
		return schema.WidgetText
	}
	return field.Widget
}
