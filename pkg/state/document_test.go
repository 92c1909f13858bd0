package state

import (
	"testing"

	"github.com/goliatone/go-chatedit/pkg/instruction"
)

func TestDocumentApply_AppendToEmpty(t *testing.T) {
	doc := NewDocument("")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindAppend, Text: "first line"})
	if next.Content() != "first line" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApply_AppendUsesSeparator(t *testing.T) {
	doc := NewDocument("# Title")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindAppend, Text: "body"})
	if next.Content() != "# Title\nbody" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApply_CustomSeparator(t *testing.T) {
	doc := NewDocument("a").WithSeparator("\n\n")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindAppend, Text: "b"})
	if next.Content() != "a\n\nb" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApply_EmptySeparator(t *testing.T) {
	doc := NewDocument("a").WithSeparator("")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindAppend, Text: "b"})
	if next.Content() != "ab" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApply_ReplaceOverwrites(t *testing.T) {
	doc := NewDocument("old body")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindReplace, Document: true, Value: "# New"})
	if next.Content() != "# New" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApply_ReplaceIdempotent(t *testing.T) {
	in := instruction.Instruction{Kind: instruction.KindReplace, Document: true, Value: "final"}
	doc := NewDocument("start").Apply(in)
	again := doc.Apply(in)
	if doc.Content() != again.Content() {
		t.Fatalf("replace not idempotent: %q vs %q", doc.Content(), again.Content())
	}
}

func TestDocumentApply_AppendNotIdempotent(t *testing.T) {
	in := instruction.Instruction{Kind: instruction.KindAppend, Text: "x"}
	once := NewDocument("").Apply(in)
	twice := once.Apply(in)
	if once.Content() == twice.Content() {
		t.Fatalf("append unexpectedly idempotent: %q", twice.Content())
	}
	if twice.Content() != "x\nx" {
		t.Fatalf("unexpected content: %q", twice.Content())
	}
}

func TestDocumentApply_FieldTargetIgnored(t *testing.T) {
	doc := NewDocument("untouched")
	next := doc.Apply(instruction.Instruction{Kind: instruction.KindReplace, Field: "1.1", Value: "x"})
	if next.Content() != "untouched" {
		t.Fatalf("field instruction changed document: %q", next.Content())
	}
}

func TestDocumentApply_DoesNotMutateReceiver(t *testing.T) {
	doc := NewDocument("base")
	_ = doc.Apply(instruction.Instruction{Kind: instruction.KindAppend, Text: "more"})
	if doc.Content() != "base" {
		t.Fatalf("receiver mutated: %q", doc.Content())
	}
}

func TestDocumentApplyAll_EmptyIsIdentity(t *testing.T) {
	doc := NewDocument("keep")
	next := doc.ApplyAll(nil)
	if next.Content() != "keep" {
		t.Fatalf("unexpected content: %q", next.Content())
	}
}

func TestDocumentApplyAll_FoldMatchesSequentialApply(t *testing.T) {
	instructions := []instruction.Instruction{
		{Kind: instruction.KindAppend, Text: "one"},
		{Kind: instruction.KindAppend, Text: "two"},
		{Kind: instruction.KindReplace, Document: true, Value: "reset"},
		{Kind: instruction.KindAppend, Text: "three"},
	}

	folded := NewDocument("").ApplyAll(instructions)

	stepped := NewDocument("")
	for _, in := range instructions {
		stepped = stepped.Apply(in)
	}

	if folded.Content() != stepped.Content() {
		t.Fatalf("fold mismatch: %q vs %q", folded.Content(), stepped.Content())
	}
	if folded.Content() != "reset\nthree" {
		t.Fatalf("unexpected content: %q", folded.Content())
	}
}

func TestDocumentEmpty(t *testing.T) {
	if !NewDocument("").Empty() {
		t.Fatalf("expected empty document")
	}
	if NewDocument("x").Empty() {
		t.Fatalf("expected non-empty document")
	}
}
