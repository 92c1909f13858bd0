package state

import (
	"sort"

	"github.com/goliatone/go-chatedit/pkg/instruction"
)

// Form is the live mapping of field identifiers to their current values.
// Identifiers are opaque strings; nothing here validates them against a
// schema. Apply is pure and copy-on-write so previous states stay usable.
type Form struct {
	values map[string]string
}

// NewForm constructs an empty form state.
func NewForm() Form {
	return Form{}
}

// FormWithValues seeds a form from an existing value map.
func FormWithValues(values map[string]string) Form {
	if len(values) == 0 {
		return Form{}
	}
	clone := make(map[string]string, len(values))
	for field, value := range values {
		clone[field] = value
	}
	return Form{values: clone}
}

// Value returns the current value for a field, and whether the field exists.
func (f Form) Value(field string) (string, bool) {
	value, ok := f.values[field]
	return value, ok
}

// Len reports how many fields currently hold a value.
func (f Form) Len() int {
	return len(f.values)
}

// Fields returns the populated field identifiers in sorted order.
func (f Form) Fields() []string {
	if len(f.values) == 0 {
		return nil
	}
	fields := make([]string, 0, len(f.values))
	for field := range f.values {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Values returns a defensive copy of the field mapping.
func (f Form) Values() map[string]string {
	if len(f.values) == 0 {
		return map[string]string{}
	}
	clone := make(map[string]string, len(f.values))
	for field, value := range f.values {
		clone[field] = value
	}
	return clone
}

// Apply produces the next form state for one instruction. Replace overwrites
// the field, creating it when absent; append concatenates onto the existing
// value, treating a missing field as empty. Document-targeted instructions
// leave the form untouched.
func (f Form) Apply(in instruction.Instruction) Form {
	if !in.TargetsForm() {
		return f
	}
	switch in.Kind {
	case instruction.KindReplace:
		return f.set(in.Field, in.Value)
	case instruction.KindAppend:
		current := f.values[in.Field]
		return f.set(in.Field, current+in.Text)
	default:
		return f
	}
}

// ApplyAll folds a sequence of instructions over the form in order.
func (f Form) ApplyAll(instructions []instruction.Instruction) Form {
	for _, in := range instructions {
		f = f.Apply(in)
	}
	return f
}

func (f Form) set(field, value string) Form {
	next := make(map[string]string, len(f.values)+1)
	for k, v := range f.values {
		next[k] = v
	}
	next[field] = value
	return Form{values: next}
}
