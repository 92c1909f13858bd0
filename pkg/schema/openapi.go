package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Long-text formats that map string properties onto textarea widgets.
var textareaFormats = map[string]struct{}{
	"textarea":  {},
	"markdown":  {},
	"long-text": {},
}

// FromOpenAPI derives a form definition from the JSON request body of one
// operation in an OpenAPI document. Enum properties become selects, long-text
// formats become textareas, and everything else renders as a text input.
// Property order is not defined by the document, so fields sort by name with
// required fields first.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) (Form, error) {
	if err := ctx.Err(); err != nil {
		return Form{}, err
	}
	if len(raw) == 0 {
		return Form{}, fmt.Errorf("schema: openapi document is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return Form{}, fmt.Errorf("schema: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return Form{}, fmt.Errorf("schema: load openapi document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return Form{}, fmt.Errorf("schema: operation %q not found", operationID)
	}

	body := requestSchema(operation)
	if body == nil || len(body.Properties) == 0 {
		return Form{}, fmt.Errorf("schema: operation %q has no object request body", operationID)
	}

	form := Form{
		Title:       firstNonEmpty(body.Title, operation.Summary, operationID),
		Description: firstNonEmpty(operation.Description, body.Description),
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		form.Fields = append(form.Fields, fieldFromProperty(name, ref.Value, required[name]))
	}

	form.normalize()
	if err := form.Validate(); err != nil {
		return Form{}, err
	}
	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromProperty(name string, property *openapi3.Schema, required bool) Field {
	field := Field{
		ID:       name,
		Label:    firstNonEmpty(property.Title, labelFromName(name)),
		Help:     property.Description,
		Widget:   WidgetText,
		Required: required,
	}

	if len(property.Enum) > 0 {
		field.Widget = WidgetSelect
		for _, option := range property.Enum {
			field.Options = append(field.Options, fmt.Sprint(option))
		}
		return field
	}
	if _, ok := textareaFormats[property.Format]; ok {
		field.Widget = WidgetTextarea
	}
	return field
}

// labelFromName turns a property name like "legal_basis" into "Legal basis".
func labelFromName(name string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return name
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
