// Package template defines the contract between renderers and the template
// engine so HTML renderers can swap implementations without touching render
// logic.
package template

// Renderer resolves and executes named templates against a data context.
type Renderer interface {
	// RenderTemplate executes a template resolved by name (the configured
	// extension is appended when missing).
	RenderTemplate(name string, data map[string]any) (string, error)

	// RenderString parses and executes inline template content.
	RenderString(content string, data map[string]any) (string, error)
}
