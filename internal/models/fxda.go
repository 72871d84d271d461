// Package models defines the FXDA document-template domain types.
package models

import "time"

// FieldType enumerates the supported form-control kinds.
type FieldType string

// Supported field types.
const (
	FieldText      FieldType = "text"
	FieldSignature FieldType = "signature"
	FieldDate      FieldType = "date"
	FieldCheckbox  FieldType = "checkbox"
	FieldDropdown  FieldType = "dropdown"
	FieldInitial   FieldType = "initial"
	FieldCompany   FieldType = "company"
)

// Default page size in points (US letter at 72 DPI).
const (
	PageWidth  = 612
	PageHeight = 792
)

// Field is a positioned form control on a document page.
// Coordinates are page-point units; Page is a 1-based page index.
type Field struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Name        string    `json:"name"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Page        int       `json:"page"`
	Required    bool      `json:"required"`
	Party       int       `json:"party,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	FontSize    int       `json:"fontSize,omitempty"`
	FontFamily  string    `json:"fontFamily,omitempty"`
	Validation  string    `json:"validation,omitempty"`
}

// Page is one page of document content. Content is plain text with
// newline-delimited blocks.
type Page struct {
	PageNumber int     `json:"pageNumber"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Content    string  `json:"content"`
}

// Metadata carries document provenance and versioning.
type Metadata struct {
	CreatedAt    time.Time         `json:"createdAt"`
	CreatedBy    string            `json:"createdBy"`
	TemplateType string            `json:"templateType"`
	Version      int               `json:"version"`
	Labels       map[string]string `json:"labels,omitempty"`
}

// Document is the base FXDA document structure.
type Document struct {
	Version      string   `json:"version"`
	DocumentID   string   `json:"documentId"`
	DocumentName string   `json:"documentName"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Pages        []Page   `json:"pages"`
	Fields       []Field  `json:"fields"`
	Metadata     Metadata `json:"metadata"`
}

// Template is a document plus template-level attributes. An empty Fields
// slice means "fields not yet requested", which is a valid state.
type Template struct {
	Document
	WorkflowPresetID string   `json:"workflowPresetId,omitempty"`
	Tags             []string `json:"tags"`
}

// Block is one semantic unit of generated document text, the unit of
// streaming delivery.
type Block struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

// BlockType distinguishes titles from body paragraphs.
type BlockType string

// Supported block types.
const (
	BlockTitle     BlockType = "title"
	BlockParagraph BlockType = "paragraph"
)

// WorkflowPreset is an externally cataloged e-signature routing
// configuration, referenced by id and never mutated here.
type WorkflowPreset struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Parties          int    `json:"parties"`
	SigningOrder     string `json:"signingOrder"` // "sequential" or "parallel"
	RequiresApproval bool   `json:"requiresApproval"`
	SecurityLevel    string `json:"securityLevel"` // "standard", "high" or "enterprise"
	ReminderDays     int    `json:"reminderDays"`
	ExpirationDays   int    `json:"expirationDays"`
	Category         string `json:"category"`
}
