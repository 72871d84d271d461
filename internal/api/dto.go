package api

import (
	"encoding/json"

	"github.com/starford/fxda/internal/derive"
	"github.com/starford/fxda/internal/models"
)

// stringList accepts either a JSON string or a JSON array of strings, the
// two shapes clients send for audience and tone.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*s = nil
		} else {
			*s = []string{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// GenerateRequest is the one-shot generation request body.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateOptions are the structured options accepted by the streaming
// generation endpoint.
type GenerateOptions struct {
	Audience               stringList `json:"audience,omitempty"`
	CustomAudience         string     `json:"customAudience,omitempty"`
	Tone                   stringList `json:"tone,omitempty"`
	TextAmount             string     `json:"textAmount,omitempty"`
	ContentHandling        string     `json:"contentHandling,omitempty"`
	AdditionalInstructions string     `json:"additionalInstructions,omitempty"`
}

func (o *GenerateOptions) derive() derive.Options {
	if o == nil {
		return derive.Options{}
	}
	return derive.Options{
		Audience:               o.Audience,
		CustomAudience:         o.CustomAudience,
		Tone:                   o.Tone,
		TextAmount:             o.TextAmount,
		ContentHandling:        o.ContentHandling,
		AdditionalInstructions: o.AdditionalInstructions,
	}
}

// StreamGenerateRequest is the streaming generation request body.
type StreamGenerateRequest struct {
	Prompt  string           `json:"prompt"`
	Options *GenerateOptions `json:"options,omitempty"`
}

// SuggestFieldsRequest carries assembled page text to analyze.
type SuggestFieldsRequest struct {
	Content string `json:"content"`
}

// SuggestFieldsResponse wraps the suggested field list.
type SuggestFieldsResponse struct {
	Fields []models.Field `json:"fields"`
}

// RewriteBlockRequest is the mock AI rewrite request body.
type RewriteBlockRequest struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// RewriteBlockResponse carries the rewritten text.
type RewriteBlockResponse struct {
	Text string `json:"text"`
}

// ContentUpdateResponse is returned after a dictionary merge-write.
type ContentUpdateResponse struct {
	Success bool     `json:"success"`
	Updated []string `json:"updated,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// TemplateRequest is the create/update body for registry entries.
type TemplateRequest struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Tags             []string         `json:"tags,omitempty"`
	WorkflowPresetID string           `json:"workflowPresetId,omitempty"`
	FXDA             *models.Template `json:"fxda,omitempty"`
	Validated        bool             `json:"validated,omitempty"`
}
