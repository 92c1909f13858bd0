// Package pongo adapts the pongo2 template engine to the template.Renderer
// contract used by the HTML renderer.
package pongo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-chatedit/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS, typically an embedded bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tmpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template execution.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[key] = value
		}
	}
}

// Engine is a pongo2-backed template renderer with a parsed-template cache.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	cache     map[string]*pongo2.Template
	extension string
	globals   map[string]any
}

var _ template.Renderer = (*Engine)(nil)

// New constructs an Engine from the provided options. At least one template
// source (base directory or fs.FS) is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: a base directory or fs.FS is required")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		info, err := os.Stat(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: base directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("pongo: %q is not a directory", cfg.baseDir)
		}
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create filesystem loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	return &Engine{
		set:       pongo2.NewSet("chatedit", loaders...),
		cache:     make(map[string]*pongo2.Template),
		extension: cfg.extension,
		globals:   cfg.globals,
	}, nil
}

// RenderTemplate executes a named template. The configured extension is
// appended when the name does not already carry it.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(e.context(data))
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", path, err)
	}
	return out, nil
}

// RenderString parses and executes inline template content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	out, err := tmpl.Execute(e.context(data))
	if err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}
	return out, nil
}

// RegisterFilter exposes pongo2 filter registration so callers can extend the
// template vocabulary. Registration is global to the process, matching pongo2
// semantics.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function are required")
	}
	if pongo2.FilterExists(name) {
		return nil
	}
	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramValue any
		if param != nil {
			paramValue = param.Interface()
		}
		result, err := fn(in.Interface(), paramValue)
		if err != nil {
			return nil, &pongo2.Error{Sender: "chatedit_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
	return pongo2.RegisterFilter(name, filter)
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func (e *Engine) context(data map[string]any) pongo2.Context {
	ctx := make(pongo2.Context, len(e.globals)+len(data))
	for key, value := range e.globals {
		ctx[key] = value
	}
	for key, value := range data {
		ctx[key] = value
	}
	return ctx
}
