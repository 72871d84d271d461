// Package derive implements the template derivation engine: pure functions
// that classify a free-text prompt into structured template attributes via
// case-insensitive substring matching against fixed keyword tables.
//
// Every function is total. An empty or whitespace-only prompt is valid input
// and resolves to the documented defaults. No function performs I/O, keeps
// state, or consults a clock, so identical inputs always yield identical
// outputs.
package derive

import (
	"fmt"
	"strings"

	"github.com/starford/fxda/internal/models"
)

// Default classifications used when no keyword group matches.
const (
	DefaultName     = "Business Agreement"
	DefaultCategory = "General"
	DefaultWorkflow = "simple-agreement"
	DefaultParties  = 2
)

// Field layout constants, in page points. Party blocks stack upward from
// partyBaseY with one stride per party so that blocks never overlap for the
// supported 2-3 party range.
const (
	partyBaseY  = 650
	partyStride = 140
)

// Name maps the prompt to a template name. Keyword groups are checked in
// priority order; the first match wins.
func Name(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, "nda", "non-disclosure"):
		return "Non-Disclosure Agreement"
	case containsAny(p, "offer", "employment"):
		return "Employment Offer Letter"
	case containsAny(p, "vendor", "contract"):
		return "Vendor Service Agreement"
	case containsAny(p, "consulting", "contractor"):
		return "Consulting Agreement"
	default:
		return DefaultName
	}
}

// Category maps the prompt to one of the closed category vocabulary:
// Legal, HR, Procurement or General.
func Category(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, "legal", "nda"):
		return "Legal"
	case containsAny(p, "hr", "employee"):
		return "HR"
	case containsAny(p, "vendor", "procurement"):
		return "Procurement"
	default:
		return DefaultCategory
	}
}

// Tags accumulates descriptive tags for every matching keyword group.
// Unlike Name and Category the groups are not mutually exclusive. When
// nothing matches the result is exactly {"general", "agreement"}, never
// an empty set.
func Tags(prompt string) []string {
	p := strings.ToLower(prompt)
	var tags []string
	if strings.Contains(p, "nda") {
		tags = append(tags, "nda", "confidential")
	}
	if strings.Contains(p, "vendor") {
		tags = append(tags, "vendor", "procurement")
	}
	if containsAny(p, "employee", "hr") {
		tags = append(tags, "hr", "hiring")
	}
	if strings.Contains(p, "sequential") {
		tags = append(tags, "sequential")
	}
	if strings.Contains(p, "parallel") {
		tags = append(tags, "parallel")
	}
	if len(tags) == 0 {
		return []string{"general", "agreement"}
	}
	return tags
}

// Workflow suggests a workflow preset id for the prompt. First match in
// the listed order wins.
func Workflow(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "nda"):
		return "nda-standard"
	case strings.Contains(p, "offer"):
		return "hr-offer"
	case strings.Contains(p, "vendor"):
		return "vendor-contract"
	case strings.Contains(p, "sequential"):
		return "nda-standard"
	case strings.Contains(p, "parallel"):
		return "simple-agreement"
	default:
		return DefaultWorkflow
	}
}

// Parties derives the number of signing parties. The two-party check runs
// before the three-party check, matching the source priority.
func Parties(prompt string) int {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, "2 part", "two part"):
		return 2
	case containsAny(p, "3 part", "three part"):
		return 3
	default:
		return DefaultParties
	}
}

var partyOrdinals = [...]string{1: "First", 2: "Second", 3: "Third"}

// FieldSet builds the full batch of positioned form fields for the prompt:
// four fields per party (name, title/company, signature, date signed) in
// stacked blocks, one global Effective Date field near the page top, a
// per-party acceptance checkbox when the prompt carries acceptance keywords
// and a global confirm-read checkbox when it carries "confidential".
func FieldSet(prompt string) []models.Field {
	p := strings.ToLower(prompt)
	parties := Parties(prompt)
	acceptance := containsAny(p, "agree", "accept")

	fields := make([]models.Field, 0, parties*5+2)
	for i := 1; i <= parties; i++ {
		label := partyOrdinals[i]
		nameY := float64(partyBaseY - (i-1)*partyStride)
		signY := nameY - 40

		fields = append(fields,
			models.Field{
				ID:          fmt.Sprintf("party%d_name", i),
				Type:        models.FieldText,
				Name:        label + " Party Name",
				X:           50, Y: nameY, Width: 250, Height: 30,
				Page:        1,
				Required:    true,
				Party:       i,
				Placeholder: "Enter " + strings.ToLower(label) + " party name",
				FontSize:    12,
				FontFamily:  "Arial",
			},
			models.Field{
				ID:          fmt.Sprintf("party%d_title", i),
				Type:        models.FieldText,
				Name:        label + " Party Title/Company",
				X:           320, Y: nameY, Width: 240, Height: 30,
				Page:        1,
				Required:    false,
				Party:       i,
				Placeholder: "Title or Company",
				FontSize:    12,
				FontFamily:  "Arial",
			},
			models.Field{
				ID:         fmt.Sprintf("party%d_signature", i),
				Type:       models.FieldSignature,
				Name:       label + " Party Signature",
				X:          50, Y: signY, Width: 200, Height: 50,
				Page:       1,
				Required:   true,
				Party:      i,
				FontSize:   14,
				FontFamily: "Brush Script MT",
			},
			models.Field{
				ID:         fmt.Sprintf("party%d_date", i),
				Type:       models.FieldDate,
				Name:       "Date Signed",
				X:          270, Y: signY, Width: 150, Height: 30,
				Page:       1,
				Required:   true,
				Party:      i,
				FontSize:   12,
				FontFamily: "Arial",
			},
		)

		if acceptance {
			fields = append(fields, models.Field{
				ID:         fmt.Sprintf("party%d_accept", i),
				Type:       models.FieldCheckbox,
				Name:       label + " Party Acceptance",
				X:          450, Y: signY, Width: 20, Height: 20,
				Page:       1,
				Required:   true,
				Party:      i,
				FontSize:   12,
				FontFamily: "Arial",
			})
		}
	}

	fields = append(fields, models.Field{
		ID:          "effective_date",
		Type:        models.FieldDate,
		Name:        "Effective Date",
		X:           400, Y: 100, Width: 150, Height: 30,
		Page:        1,
		Required:    true,
		Placeholder: "MM/DD/YYYY",
		FontSize:    12,
		FontFamily:  "Arial",
	})

	if strings.Contains(p, "confidential") {
		fields = append(fields, models.Field{
			ID:         "confirm_read",
			Type:       models.FieldCheckbox,
			Name:       "I confirm I have read and understand this agreement",
			X:          50, Y: 400, Width: 20, Height: 20,
			Page:       1,
			Required:   true,
			FontSize:   12,
			FontFamily: "Arial",
		})
	}

	return fields
}

// Boilerplate paragraph texts for the canonical block set.
const (
	introText       = "This agreement is entered into between the parties identified below."
	recitalsText    = "WHEREAS, the parties wish to establish terms and conditions for their business relationship; NOW, THEREFORE, in consideration of the mutual covenants contained herein, the parties agree as follows:"
	definitionsText = "1. DEFINITIONS\nThe terms used in this Agreement shall have the meanings set forth herein."
	obligationsText = "2. OBLIGATIONS\nEach party agrees to fulfill their respective obligations as outlined in this document."
	termText        = "4. TERM AND TERMINATION\nThis Agreement shall commence on the Effective Date and continue as specified."
	signaturesText  = "5. SIGNATURES\nBy signing below, the parties agree to be bound by the terms of this Agreement."

	confidentialityStrict  = "All information exchanged shall be kept strictly confidential and shall not be disclosed to third parties without prior written consent."
	confidentialityGeneric = "The parties agree to maintain confidentiality regarding proprietary information."
)

// ContentBlocks produces the canonical ordered block set for the prompt:
// a title block followed by fixed boilerplate paragraphs. Only the
// confidentiality clause varies, depending on NDA keyword presence.
func ContentBlocks(prompt string) []models.Block {
	p := strings.ToLower(prompt)
	confidentiality := confidentialityGeneric
	if containsAny(p, "nda", "confidential") {
		confidentiality = confidentialityStrict
	}
	return []models.Block{
		{Type: models.BlockTitle, Text: Name(prompt)},
		{Type: models.BlockParagraph, Text: introText},
		{Type: models.BlockParagraph, Text: recitalsText},
		{Type: models.BlockParagraph, Text: definitionsText},
		{Type: models.BlockParagraph, Text: obligationsText},
		{Type: models.BlockParagraph, Text: "3. CONFIDENTIALITY\n" + confidentiality},
		{Type: models.BlockParagraph, Text: termText},
		{Type: models.BlockParagraph, Text: signaturesText},
	}
}

// Options are the structured generation options supplied alongside a
// prompt. They influence derivation only through RewritePrompt, which
// injects them as labeled lines into the text the keyword tables scan.
type Options struct {
	Audience               []string
	CustomAudience         string
	Tone                   []string
	TextAmount             string
	ContentHandling        string
	AdditionalInstructions string
}

// RewritePrompt prepends the structured option values as labeled lines to
// the original prompt and returns the combined text. The result feeds
// every derivation call on the phased generation path.
func RewritePrompt(prompt string, opts Options) string {
	var parts []string
	if len(opts.Audience) > 0 {
		parts = append(parts, "Audience: "+strings.Join(opts.Audience, ", "))
	}
	if opts.CustomAudience != "" {
		parts = append(parts, "Custom Audience: "+opts.CustomAudience)
	}
	if len(opts.Tone) > 0 {
		parts = append(parts, "Tone: "+strings.Join(opts.Tone, ", "))
	}
	if opts.TextAmount != "" {
		parts = append(parts, "Length: "+opts.TextAmount)
	}
	if opts.ContentHandling != "" {
		parts = append(parts, "Content Mode: "+opts.ContentHandling)
	}
	if opts.AdditionalInstructions != "" {
		parts = append(parts, "Instructions: "+opts.AdditionalInstructions)
	}
	parts = append(parts, "User Prompt: "+prompt)
	return strings.Join(parts, "\n")
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
