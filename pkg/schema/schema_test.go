package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_BasicForm(t *testing.T) {
	raw := []byte(`
title: Intake
description: Basic intake form.
fields:
  - id: name
    label: Full name
    required: true
  - id: bio
    label: Biography
    widget: textarea
  - id: plan
    label: Plan
    widget: select
    options: [free, pro]
`)

	form, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if form.Title != "Intake" {
		t.Fatalf("unexpected title: %q", form.Title)
	}
	if diff := cmp.Diff([]string{"name", "bio", "plan"}, form.FieldIDs()); diff != "" {
		t.Fatalf("unexpected field order (-want +got):\n%s", diff)
	}
	field, ok := form.Field("name")
	if !ok {
		t.Fatalf("missing field name")
	}
	if field.Widget != WidgetText {
		t.Fatalf("blank widget not defaulted: %q", field.Widget)
	}
	if !field.Required {
		t.Fatalf("required flag lost")
	}
}

func TestParse_EmptyPayload(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("fields: [unclosed")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestValidate_NoFields(t *testing.T) {
	form := Form{Title: "Empty"}
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error for empty form")
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	form := Form{Fields: []Field{
		{ID: "a", Widget: WidgetText},
		{ID: "a", Widget: WidgetText},
	}}
	err := form.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidate_MissingID(t *testing.T) {
	form := Form{Fields: []Field{{Label: "No ID", Widget: WidgetText}}}
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestValidate_SelectWithoutOptions(t *testing.T) {
	form := Form{Fields: []Field{{ID: "plan", Widget: WidgetSelect}}}
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error for select without options")
	}
}

func TestValidate_OptionsOnTextWidget(t *testing.T) {
	form := Form{Fields: []Field{{ID: "name", Widget: WidgetText, Options: []string{"x"}}}}
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error for options on text widget")
	}
}

func TestValidate_UnknownWidget(t *testing.T) {
	form := Form{Fields: []Field{{ID: "x", Widget: Widget("slider")}}}
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error for unknown widget")
	}
}

func TestDefault_Questionnaire(t *testing.T) {
	form := Default()
	if err := form.Validate(); err != nil {
		t.Fatalf("embedded definition invalid: %v", err)
	}
	if len(form.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(form.Fields))
	}
	legal, ok := form.Field("2.2")
	if !ok {
		t.Fatalf("missing field 2.2")
	}
	if legal.Widget != WidgetSelect || len(legal.Options) != 6 {
		t.Fatalf("unexpected legal basis field: %+v", legal)
	}
}

func TestField_NotFound(t *testing.T) {
	form := Form{Fields: []Field{{ID: "a"}}}
	if _, ok := form.Field("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}
