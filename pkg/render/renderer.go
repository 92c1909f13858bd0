package render

import (
	"context"
	"strings"

	"github.com/goliatone/go-chatedit/pkg/instruction"
	"github.com/goliatone/go-chatedit/pkg/schema"
)

// View is the immutable snapshot renderers consume: the current document
// buffer plus the form definition and its live values. Sessions build one per
// render; renderers never mutate state.
type View struct {
	Document string
	Schema   schema.Form
	Values   map[string]string
}

// Value returns the current value for a field identifier.
func (v View) Value(id string) string {
	return v.Values[id]
}

// Rationale returns the rationale paired with a field, when an assistant edit
// supplied one.
func (v View) Rationale(id string) string {
	return v.Values[id+instruction.RationaleSuffix]
}

// Answered reports whether a field holds a non-blank value.
func (v View) Answered(id string) bool {
	return strings.TrimSpace(v.Values[id]) != ""
}

// Renderer converts a view into a byte representation (HTML, plain text...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options Options) ([]byte, error)
}
