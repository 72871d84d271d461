// Package assemble composes derivation-engine output into well-formed FXDA
// templates. It supports two construction protocols: one-shot (fields
// generated immediately) and phased (content first, fields added later via
// SuggestFields).
package assemble

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/starford/fxda/internal/derive"
	"github.com/starford/fxda/internal/models"
)

// FXDAVersion is the document format version stamped on every template.
const FXDAVersion = "1.0"

const createdBy = "AI Assistant"

// Generator assembles FXDA templates. Now and NewID may be overridden for
// deterministic output; the zero-value hooks fall back to time.Now and
// fxda-prefixed UUIDs.
type Generator struct {
	Now   func() time.Time
	NewID func() string
}

// NewGenerator returns a Generator with the default clock and id source.
func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now().UTC()
}

func (g *Generator) newID() string {
	if g.NewID != nil {
		return g.NewID()
	}
	return "fxda-" + uuid.NewString()
}

// Generate builds a complete template in one shot: a single page carrying
// the full boilerplate content and the full field set from the derivation
// engine. The result is immediately usable.
func (g *Generator) Generate(prompt string) *models.Template {
	blocks := derive.ContentBlocks(prompt)
	name := derive.Name(prompt)
	category := derive.Category(prompt)

	return &models.Template{
		Document: models.Document{
			Version:      FXDAVersion,
			DocumentID:   g.newID(),
			DocumentName: name,
			Description:  "AI-generated " + strings.ToLower(name),
			Category:     category,
			Pages: []models.Page{{
				PageNumber: 1,
				Width:      models.PageWidth,
				Height:     models.PageHeight,
				Content:    renderPage(blocks),
			}},
			Fields: derive.FieldSet(prompt),
			Metadata: models.Metadata{
				CreatedAt:    g.now(),
				CreatedBy:    createdBy,
				TemplateType: strings.ToLower(category),
				Version:      1,
			},
		},
		WorkflowPresetID: derive.Workflow(prompt),
		Tags:             derive.Tags(prompt),
	}
}

// Stream record types, in emission order.
const (
	RecordMetadata = "metadata"
	RecordLabels   = "labels"
	RecordBlock    = "block"
	RecordDone     = "done"
)

// StreamRecord is one line of the phased generation sequence. Exactly one
// metadata record comes first, then one labels record, then one block
// record per content block, then a terminal done record embedding the
// assembled template with an empty field list.
type StreamRecord struct {
	Type         string            `json:"type"`
	DocumentID   string            `json:"documentId,omitempty"`
	TemplateName string            `json:"templateName,omitempty"`
	Category     string            `json:"category,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
	Block        *models.Block     `json:"block,omitempty"`
	FXDA         *models.Template  `json:"fxda,omitempty"`
}

// GenerateStream builds the phased construction sequence for a prompt and
// its structured options. Options feed derivation only through the prompt
// rewrite. The embedded template carries fields=[] as the "not yet
// fielded" sentinel; fields are requested separately via SuggestFields.
func (g *Generator) GenerateStream(prompt string, opts derive.Options) []StreamRecord {
	rewritten := derive.RewritePrompt(prompt, opts)

	name := derive.Name(rewritten)
	category := derive.Category(rewritten)
	documentID := g.newID()

	audience := "general"
	if len(opts.Audience) > 0 {
		audience = strings.Join(opts.Audience, ", ")
	}
	labels := map[string]string{
		"document_type": category,
		"audience":      audience,
		"status":        "draft",
	}

	blocks := derive.ContentBlocks(rewritten)

	records := make([]StreamRecord, 0, len(blocks)+3)
	records = append(records,
		StreamRecord{Type: RecordMetadata, DocumentID: documentID, TemplateName: name, Category: category},
		StreamRecord{Type: RecordLabels, Labels: labels},
	)
	for i := range blocks {
		records = append(records, StreamRecord{Type: RecordBlock, Block: &blocks[i]})
	}

	done := &models.Template{
		Document: models.Document{
			Version:      FXDAVersion,
			DocumentID:   documentID,
			DocumentName: name,
			Description:  "AI-generated " + strings.ToLower(name),
			Category:     category,
			Pages: []models.Page{{
				PageNumber: 1,
				Width:      models.PageWidth,
				Height:     models.PageHeight,
				Content:    renderPage(blocks),
			}},
			Fields: []models.Field{},
			Metadata: models.Metadata{
				CreatedAt:    g.now(),
				CreatedBy:    createdBy,
				TemplateType: strings.ToLower(category),
				Version:      1,
				Labels:       labels,
			},
		},
		WorkflowPresetID: derive.Workflow(rewritten),
		Tags:             derive.Tags(rewritten),
	}
	return append(records, StreamRecord{Type: RecordDone, FXDA: done})
}

// SuggestFields inspects already-assembled page text (not the original
// prompt) and returns fields to merge into a template. The ruleset is
// intentionally narrower than the one-shot field generator: it reacts to
// signature, date and confidentiality mentions and falls back to a single
// party-name field when nothing matches.
func SuggestFields(content string) []models.Field {
	lower := strings.ToLower(content)
	var fields []models.Field
	fieldY := 120.0

	if strings.Contains(lower, "signature") || strings.Contains(lower, "sign") {
		fields = append(fields, models.Field{
			ID:         "sig_1",
			Type:       models.FieldSignature,
			Name:       "Signature",
			X:          50, Y: fieldY, Width: 200, Height: 50,
			Page:       1,
			Required:   true,
			FontSize:   14,
			FontFamily: "Brush Script MT",
		})
		fieldY += 100
	}

	if strings.Contains(lower, "date") {
		fields = append(fields, models.Field{
			ID:         "effective_date",
			Type:       models.FieldDate,
			Name:       "Effective Date",
			X:          300, Y: 120, Width: 150, Height: 30,
			Page:       1,
			Required:   true,
			FontSize:   12,
			FontFamily: "Arial",
		})
	}

	if strings.Contains(lower, "nda") || strings.Contains(lower, "confidential") {
		fields = append(fields, models.Field{
			ID:         "confirm_read",
			Type:       models.FieldCheckbox,
			Name:       "I confirm I have read and understand this agreement",
			X:          50, Y: fieldY + 20, Width: 20, Height: 20,
			Page:       1,
			Required:   true,
			FontSize:   12,
			FontFamily: "Arial",
		})
	}

	if len(fields) == 0 {
		fields = append(fields, models.Field{
			ID:         "party1_name",
			Type:       models.FieldText,
			Name:       "Party 1 Name",
			X:          50, Y: 600, Width: 250, Height: 30,
			Page:       1,
			Required:   true,
			FontSize:   12,
			FontFamily: "Arial",
		})
	}

	return fields
}

// RewriteBlock applies the mock "AI rewrite" to a text block: collapse
// whitespace, capitalize the first letter of each sentence and append the
// rewrite marker. Style defaults to "formal".
func RewriteBlock(text, style string) string {
	if style == "" {
		style = "formal"
	}
	normalized := strings.Join(strings.Fields(text), " ")
	return capitalizeSentences(normalized) + " [AI rewrite: " + style + "]"
}

// capitalizeSentences upper-cases the first character of the input and of
// every segment following sentence-ending punctuation plus a space. The
// input is expected to be whitespace-normalized already.
func capitalizeSentences(s string) string {
	runes := []rune(s)
	capNext := true
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		if capNext {
			runes[i] = unicode.ToUpper(r)
			capNext = false
		}
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && runes[i+1] == ' ' {
			capNext = true
		}
	}
	return string(runes)
}

// renderPage joins blocks into the page body: blank-line separated, with
// title blocks upper-cased.
func renderPage(blocks []models.Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		if b.Type == models.BlockTitle {
			parts[i] = strings.ToUpper(b.Text)
		} else {
			parts[i] = b.Text
		}
	}
	return strings.Join(parts, "\n\n")
}
