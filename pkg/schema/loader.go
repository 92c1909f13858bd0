package schema

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML form definition and validates it.
func Parse(raw []byte) (Form, error) {
	if len(raw) == 0 {
		return Form{}, fmt.Errorf("schema: definition payload is empty")
	}

	var form Form
	if err := yaml.Unmarshal(raw, &form); err != nil {
		return Form{}, fmt.Errorf("schema: decode definition: %w", err)
	}
	form.normalize()
	if err := form.Validate(); err != nil {
		return Form{}, err
	}
	return form, nil
}

// LoadFile reads and parses a form definition from disk.
func LoadFile(path string) (Form, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads and parses a form definition from an fs.FS.
func LoadFS(fsys fs.FS, name string) (Form, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Form{}, fmt.Errorf("schema: read %s: %w", name, err)
	}
	return Parse(raw)
}
