package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"charismaai/interview-coach/internal/models"
)

// The model is instructed to return bare JSON but routinely wraps it in prose
// or markdown fences anyway. Normalization is permissive about that formatting
// noise and strict about the final structural contract: anything that fails
// the shape check is replaced wholesale by a fixed fallback value, never
// partially repaired.

// StripCodeFences removes markdown code-fence wrapping from raw model output.
// Handles the leading fence line (with or without a language tag), a trailing
// closing fence, and any residual fence tokens left mid-text.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		lines = lines[1:]
		if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
			lines = lines[:len(lines)-1]
		}
		text = strings.Join(lines, "\n")
	}

	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	return strings.TrimSpace(text)
}

// extractJSON narrows text to the outermost JSON object or array boundaries,
// which drops any conversational prose around the payload.
func extractJSON(text string) string {
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	switch {
	case startArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj):
		return text[startArr : endArr+1]
	case startObj != -1 && endObj > startObj:
		return text[startObj : endObj+1]
	}

	return text
}

// ParseQuestions parses raw model output as a non-empty JSON array of strings.
func ParseQuestions(raw string) ([]string, error) {
	cleaned := extractJSON(StripCodeFences(raw))

	var questions []string
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("response is not a valid list of questions")
	}

	return questions, nil
}

// feedbackPayload mirrors FeedbackReport with pointer fields so absent keys
// can be told apart from zero values during validation.
type feedbackPayload struct {
	OverallScore      *float64              `json:"overall_score"`
	ContentFeedback   *dimensionPayload     `json:"content_feedback"`
	VerbalFeedback    *dimensionPayload     `json:"verbal_feedback"`
	NonverbalFeedback *dimensionPayload     `json:"nonverbal_feedback"`
	ActionableTips    *[]string             `json:"actionable_tips"`
	SimilarRoles      *[]models.SimilarRole `json:"similar_roles"`
}

type dimensionPayload struct {
	Score        *float64  `json:"score"`
	Strengths    *[]string `json:"strengths"`
	Improvements *[]string `json:"improvements"`
}

// ParseFeedback parses raw model output as a complete FeedbackReport. Every
// mandatory field must be present with the correct type; the sequences may be
// empty but must exist.
func ParseFeedback(raw string) (*models.FeedbackReport, error) {
	cleaned := extractJSON(StripCodeFences(raw))

	var payload feedbackPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feedback: %w", err)
	}

	if payload.OverallScore == nil {
		return nil, fmt.Errorf("feedback is missing overall_score")
	}
	if payload.ActionableTips == nil {
		return nil, fmt.Errorf("feedback is missing actionable_tips")
	}
	if payload.SimilarRoles == nil {
		return nil, fmt.Errorf("feedback is missing similar_roles")
	}

	dimensions := map[string]*dimensionPayload{
		"content_feedback":   payload.ContentFeedback,
		"verbal_feedback":    payload.VerbalFeedback,
		"nonverbal_feedback": payload.NonverbalFeedback,
	}
	for name, dim := range dimensions {
		if dim == nil {
			return nil, fmt.Errorf("feedback is missing %s", name)
		}
		if dim.Score == nil {
			return nil, fmt.Errorf("feedback is missing %s.score", name)
		}
		if dim.Strengths == nil || dim.Improvements == nil {
			return nil, fmt.Errorf("feedback has incomplete %s", name)
		}
	}

	return &models.FeedbackReport{
		OverallScore:      int(*payload.OverallScore),
		ContentFeedback:   toDimension(payload.ContentFeedback),
		VerbalFeedback:    toDimension(payload.VerbalFeedback),
		NonverbalFeedback: toDimension(payload.NonverbalFeedback),
		ActionableTips:    *payload.ActionableTips,
		SimilarRoles:      *payload.SimilarRoles,
	}, nil
}

func toDimension(p *dimensionPayload) models.DimensionReport {
	return models.DimensionReport{
		Score:        int(*p.Score),
		Strengths:    *p.Strengths,
		Improvements: *p.Improvements,
	}
}

// FallbackQuestions is the fixed question set substituted when the model's
// response cannot be parsed.
func FallbackQuestions(role string) []string {
	return []string{
		fmt.Sprintf("Can you walk me through a challenging project you worked on as a %s?", role),
		"What technical decisions did you make in your recent work and why?",
		fmt.Sprintf("How do you approach problem-solving in your role as a %s?", role),
		"Describe a time when you had to learn a new technology quickly.",
		"What's the most complex technical challenge you've solved?",
	}
}

// FallbackFeedback is the fixed, clearly-generic report substituted when the
// model's analysis cannot be parsed. Degraded marks it as such.
func FallbackFeedback(role string) *models.FeedbackReport {
	return &models.FeedbackReport{
		OverallScore: 70,
		ContentFeedback: models.DimensionReport{
			Score:        70,
			Strengths:    []string{"Good attempt at answering questions"},
			Improvements: []string{"Analysis failed - please try again"},
		},
		VerbalFeedback: models.DimensionReport{
			Score:        70,
			Strengths:    []string{"Video received successfully"},
			Improvements: []string{"Could not analyze verbal delivery"},
		},
		NonverbalFeedback: models.DimensionReport{
			Score:        70,
			Strengths:    []string{"Video quality acceptable"},
			Improvements: []string{"Could not analyze non-verbal cues"},
		},
		ActionableTips: []string{
			"Ensure good lighting for video recording",
			"Position camera at eye level",
			"Try recording again for detailed analysis",
		},
		SimilarRoles: []models.SimilarRole{
			{Title: fmt.Sprintf("%s (Advanced)", role), Reason: "Natural progression in your current field"},
			{Title: "Technical Lead", Reason: "Leadership opportunity based on your experience"},
			{Title: "Solutions Architect", Reason: "Combines technical and strategic skills"},
		},
		Degraded: true,
	}
}
