package models

// FeedbackReport is the structured result of a video interview analysis.
// Wire shape matches the prompt contract sent to the model.
type FeedbackReport struct {
	OverallScore      int             `json:"overall_score"`
	ContentFeedback   DimensionReport `json:"content_feedback"`
	VerbalFeedback    DimensionReport `json:"verbal_feedback"`
	NonverbalFeedback DimensionReport `json:"nonverbal_feedback"`
	ActionableTips    []string        `json:"actionable_tips"`
	SimilarRoles      []SimilarRole   `json:"similar_roles"`

	// Degraded is true when the report is the fixed fallback substituted after
	// an unparseable model response, so callers can tell it apart from a
	// genuine low score.
	Degraded bool `json:"degraded"`
}

// DimensionReport scores one feedback axis (content, verbal, non-verbal).
type DimensionReport struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// SimilarRole is a suggested adjacent position with the reasoning behind it.
type SimilarRole struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}
