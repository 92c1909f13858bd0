package schema

import (
	"fmt"
	"strings"
)

// Widget enumerates the input controls a field can render as.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetTextarea Widget = "textarea"
	WidgetSelect   Widget = "select"
)

// Field describes one question in a form definition. The schema only informs
// rendering and assistant prompts; the mutator never consults it.
type Field struct {
	ID          string   `yaml:"id" json:"id"`
	Label       string   `yaml:"label" json:"label"`
	Help        string   `yaml:"help,omitempty" json:"help,omitempty"`
	Widget      Widget   `yaml:"widget,omitempty" json:"widget,omitempty"`
	Options     []string `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool     `yaml:"required,omitempty" json:"required,omitempty"`
}

// Form is an ordered form definition: title, description, and the fields in
// the order they should render.
type Form struct {
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []Field `yaml:"fields" json:"fields"`
}

// Field looks up a field definition by identifier.
func (f Form) Field(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// FieldIDs returns the identifiers in declaration order.
func (f Form) FieldIDs() []string {
	ids := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		ids = append(ids, field.ID)
	}
	return ids
}

// Validate checks structural invariants: at least one field, unique non-empty
// identifiers, known widgets, and options only on select widgets.
func (f Form) Validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("schema: form %q has no fields", f.Title)
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		id := strings.TrimSpace(field.ID)
		if id == "" {
			return fmt.Errorf("schema: field %d is missing an id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("schema: duplicate field id %q", id)
		}
		seen[id] = struct{}{}

		switch field.Widget {
		case "", WidgetText, WidgetTextarea:
			if len(field.Options) > 0 {
				return fmt.Errorf("schema: field %q declares options without a select widget", id)
			}
		case WidgetSelect:
			if len(field.Options) == 0 {
				return fmt.Errorf("schema: select field %q has no options", id)
			}
		default:
			return fmt.Errorf("schema: field %q has unknown widget %q", id, field.Widget)
		}
	}
	return nil
}

// normalize fills in defaults after decoding: blank widgets become text and
// surrounding whitespace on identifiers is dropped.
func (f *Form) normalize() {
	for i := range f.Fields {
		f.Fields[i].ID = strings.TrimSpace(f.Fields[i].ID)
		if f.Fields[i].Widget == "" {
			f.Fields[i].Widget = WidgetText
		}
	}
}
