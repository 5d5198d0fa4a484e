package types

import "github.com/go-playground/validator/v10"

// GenerateRequest asks for one article in one format.
type GenerateRequest struct {
	SourceText    string `json:"source_text" validate:"required,min=1"`
	Format        string `json:"format" validate:"required"`
	ContentID     string `json:"content_id,omitempty"`
	TranslateFrom string `json:"translate_from,omitempty"`
}

// BatchGenerateRequest asks for the same source text in several formats at
// once. Each format runs as an independent pipeline.
type BatchGenerateRequest struct {
	SourceText    string   `json:"source_text" validate:"required,min=1"`
	Formats       []string `json:"formats" validate:"required,min=1,dive,required"`
	ContentID     string   `json:"content_id,omitempty"`
	TranslateFrom string   `json:"translate_from,omitempty"`
}

// GenerateResponse carries the finalized article back to the caller. The
// below_minimum flag lets the UI surface a warning banner when generation
// exhausted its attempts under the minimum word count.
type GenerateResponse struct {
	Format       string            `json:"format"`
	Text         string            `json:"text"`
	HTML         string            `json:"html,omitempty"`
	State        string            `json:"state"`
	Attempts     int               `json:"attempts"`
	BelowMinimum bool              `json:"below_minimum"`
	Report       *ValidationReport `json:"report"`
}

// BatchGenerateResponse groups per-format results of a batch request.
type BatchGenerateResponse struct {
	ContentID string             `json:"content_id,omitempty"`
	Results   []GenerateResponse `json:"results"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchGenerateRequest using the validator.
func (r *BatchGenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
