package instruction

import "testing"

func TestInstruction_Targets(t *testing.T) {
	cases := []struct {
		name     string
		in       Instruction
		document bool
		form     bool
	}{
		{"append without field", Instruction{Kind: KindAppend, Text: "x"}, true, false},
		{"append with field", Instruction{Kind: KindAppend, Field: "1.1", Text: "x"}, false, true},
		{"replace document", Instruction{Kind: KindReplace, Document: true, Value: "x"}, true, false},
		{"replace field", Instruction{Kind: KindReplace, Field: "1.1", Value: "x"}, false, true},
		{"replace field with document flag", Instruction{Kind: KindReplace, Field: "1.1", Document: true, Value: "x"}, false, true},
	}
	for _, tc := range cases {
		if got := tc.in.TargetsDocument(); got != tc.document {
			t.Fatalf("%s: TargetsDocument() = %v, want %v", tc.name, got, tc.document)
		}
		if got := tc.in.TargetsForm(); got != tc.form {
			t.Fatalf("%s: TargetsForm() = %v, want %v", tc.name, got, tc.form)
		}
	}
}
