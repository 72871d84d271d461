package assemble

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/fxda/internal/derive"
	"github.com/starford/fxda/internal/models"
)

func testGenerator() *Generator {
	return &Generator{
		Now:   func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string { return "fxda-test-1" },
	}
}

func TestGenerateNDAExample(t *testing.T) {
	g := testGenerator()
	tpl := g.Generate("Create a standard NDA for vendors with 2 parties signing sequentially")

	if tpl.DocumentName != "Non-Disclosure Agreement" {
		t.Errorf("name = %q", tpl.DocumentName)
	}
	if tpl.Category != "Legal" {
		t.Errorf("category = %q", tpl.Category)
	}
	if tpl.WorkflowPresetID != "nda-standard" {
		t.Errorf("workflow = %q", tpl.WorkflowPresetID)
	}
	wantTags := []string{"nda", "confidential", "vendor", "procurement", "sequential"}
	if diff := cmp.Diff(wantTags, tpl.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	// 4 fields x 2 parties + effective date; no acceptance or confirm-read
	// checkboxes for this prompt.
	if len(tpl.Fields) != 9 {
		t.Errorf("field count = %d, want 9", len(tpl.Fields))
	}
	if tpl.Description != "AI-generated non-disclosure agreement" {
		t.Errorf("description = %q", tpl.Description)
	}
	if tpl.Version != FXDAVersion || tpl.Metadata.Version != 1 {
		t.Errorf("versions = %q / %d", tpl.Version, tpl.Metadata.Version)
	}
	if tpl.DocumentID != "fxda-test-1" {
		t.Errorf("documentId = %q", tpl.DocumentID)
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	g := testGenerator()
	tpl := g.Generate("")

	if tpl.DocumentName != "Business Agreement" {
		t.Errorf("name = %q", tpl.DocumentName)
	}
	if tpl.Category != "General" {
		t.Errorf("category = %q", tpl.Category)
	}
	if tpl.WorkflowPresetID != "simple-agreement" {
		t.Errorf("workflow = %q", tpl.WorkflowPresetID)
	}
	if diff := cmp.Diff([]string{"general", "agreement"}, tpl.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(tpl.Pages) != 1 || tpl.Pages[0].PageNumber != 1 {
		t.Fatalf("pages = %+v", tpl.Pages)
	}
	if tpl.Pages[0].Width != models.PageWidth || tpl.Pages[0].Height != models.PageHeight {
		t.Errorf("page size = %vx%v", tpl.Pages[0].Width, tpl.Pages[0].Height)
	}
}

func TestGeneratePageContent(t *testing.T) {
	g := testGenerator()
	tpl := g.Generate("vendor contract")

	content := tpl.Pages[0].Content
	if !strings.HasPrefix(content, "VENDOR SERVICE AGREEMENT\n\n") {
		t.Errorf("content should open with the upper-cased title, got %q", content[:40])
	}
	for _, want := range []string{"1. DEFINITIONS", "2. OBLIGATIONS", "3. CONFIDENTIALITY", "4. TERM AND TERMINATION", "5. SIGNATURES"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing section %q", want)
		}
	}
}

func TestGenerateStreamOrdering(t *testing.T) {
	g := testGenerator()
	records := g.GenerateStream("nda for vendors", derive.Options{})

	if records[0].Type != RecordMetadata {
		t.Fatalf("first record = %q, want metadata", records[0].Type)
	}
	if records[0].DocumentID != "fxda-test-1" || records[0].TemplateName != "Non-Disclosure Agreement" || records[0].Category != "Legal" {
		t.Errorf("metadata record = %+v", records[0])
	}
	if records[1].Type != RecordLabels {
		t.Fatalf("second record = %q, want labels", records[1].Type)
	}
	last := records[len(records)-1]
	if last.Type != RecordDone {
		t.Fatalf("last record = %q, want done", last.Type)
	}
	for _, rec := range records[2 : len(records)-1] {
		if rec.Type != RecordBlock {
			t.Errorf("middle record = %q, want block", rec.Type)
		}
		if rec.Block == nil {
			t.Error("block record without block payload")
		}
	}
	if last.FXDA == nil {
		t.Fatal("done record missing template")
	}
	if last.FXDA.Fields == nil || len(last.FXDA.Fields) != 0 {
		t.Errorf("done template fields = %v, want empty non-nil slice", last.FXDA.Fields)
	}
	if last.FXDA.DocumentID != records[0].DocumentID {
		t.Error("done documentId differs from metadata record")
	}
}

func TestGenerateStreamLabels(t *testing.T) {
	g := testGenerator()
	records := g.GenerateStream("nda", derive.Options{Audience: []string{"legal", "sales"}})

	want := map[string]string{
		"document_type": "Legal",
		"audience":      "legal, sales",
		"status":        "draft",
	}
	if diff := cmp.Diff(want, records[1].Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	defaulted := g.GenerateStream("plain doc", derive.Options{})
	if defaulted[1].Labels["audience"] != "general" {
		t.Errorf("audience = %q, want general", defaulted[1].Labels["audience"])
	}
}

func TestGenerateStreamOptionsInfluenceDerivation(t *testing.T) {
	g := testGenerator()
	// The options text is the only place "nda" appears, so its keywords must
	// reach the derivation tables through the prompt rewrite.
	records := g.GenerateStream("plain document", derive.Options{AdditionalInstructions: "make it an nda"})
	if records[0].TemplateName != "Non-Disclosure Agreement" {
		t.Errorf("name = %q, options were not injected into derivation", records[0].TemplateName)
	}
}

func TestSuggestFieldsRoundTrip(t *testing.T) {
	g := testGenerator()
	records := g.GenerateStream("agreement with signature and date lines", derive.Options{})
	done := records[len(records)-1]

	fields := SuggestFields(done.FXDA.Pages[0].Content)
	var sigs, dates int
	for _, f := range fields {
		switch f.Type {
		case models.FieldSignature:
			sigs++
		case models.FieldDate:
			dates++
		}
	}
	if sigs != 1 {
		t.Errorf("signature fields = %d, want 1", sigs)
	}
	if dates != 1 {
		t.Errorf("date fields = %d, want 1", dates)
	}
}

func TestSuggestFieldsFallback(t *testing.T) {
	fields := SuggestFields("nothing relevant here")
	if len(fields) != 1 {
		t.Fatalf("field count = %d, want 1", len(fields))
	}
	if fields[0].ID != "party1_name" || fields[0].Type != models.FieldText {
		t.Errorf("fallback field = %+v", fields[0])
	}
}

func TestSuggestFieldsConfidentiality(t *testing.T) {
	fields := SuggestFields("this is strictly confidential")
	if len(fields) != 1 || fields[0].ID != "confirm_read" {
		t.Fatalf("fields = %+v", fields)
	}
	// Checkbox shifts down when a signature field occupies the top slot.
	stacked := SuggestFields("confidential, sign here")
	if len(stacked) != 2 {
		t.Fatalf("fields = %+v", stacked)
	}
	if stacked[1].ID != "confirm_read" || stacked[1].Y != 240 {
		t.Errorf("confirm_read = %+v, want y=240", stacked[1])
	}
}

func TestSuggestFieldsEmptyContent(t *testing.T) {
	fields := SuggestFields("")
	if len(fields) != 1 || fields[0].ID != "party1_name" {
		t.Errorf("fields = %+v", fields)
	}
}

func TestRewriteBlock(t *testing.T) {
	cases := []struct {
		text, style, want string
	}{
		{"hello world.   this is a test", "", "Hello world. This is a test [AI rewrite: formal]"},
		{"  already Clean.  ", "casual", "Already Clean. [AI rewrite: casual]"},
		{"one! two? three.", "", "One! Two? Three. [AI rewrite: formal]"},
		{"", "", " [AI rewrite: formal]"},
	}
	for _, tc := range cases {
		if got := RewriteBlock(tc.text, tc.style); got != tc.want {
			t.Errorf("RewriteBlock(%q, %q) = %q, want %q", tc.text, tc.style, got, tc.want)
		}
	}
}

func TestGenerateDefaultIDPrefix(t *testing.T) {
	g := NewGenerator()
	tpl := g.Generate("anything")
	if !strings.HasPrefix(tpl.DocumentID, "fxda-") {
		t.Errorf("documentId = %q, want fxda- prefix", tpl.DocumentID)
	}
	other := g.Generate("anything")
	if other.DocumentID == tpl.DocumentID {
		t.Error("documentId should be unique per generation")
	}
}
