package models

import "github.com/go-playground/validator/v10"

// QuestionRequest carries the validated form fields of the question flow.
// Exactly one of the resume upload or Description must be usable; that check
// happens in the handler because the file arrives outside this struct.
type QuestionRequest struct {
	Role        string `json:"role" validate:"required"`
	Description string `json:"description"`
}

// FeedbackRequest carries the validated form fields of the video analysis flow.
// Questions is the raw JSON-encoded array exactly as submitted.
type FeedbackRequest struct {
	Role      string `json:"role" validate:"required"`
	Context   string `json:"context" validate:"required"`
	Questions string `json:"questions" validate:"required,json"`
}

// Validate checks the request against its validator tags.
func (r *QuestionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks the request against its validator tags.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// QuestionResponse is the success payload of the question flow.
type QuestionResponse struct {
	Success       bool     `json:"success"`
	Role          string   `json:"role"`
	Questions     []string `json:"questions"`
	ContextLength int      `json:"context_length"`
	Degraded      bool     `json:"degraded"`
}

// FeedbackResponse is the success payload of the video analysis flow.
type FeedbackResponse struct {
	Success  bool            `json:"success"`
	Feedback *FeedbackReport `json:"feedback"`
}
