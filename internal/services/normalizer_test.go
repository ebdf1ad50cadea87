package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no wrapping",
			input:    `["Q1?"]`,
			expected: `["Q1?"]`,
		},
		{
			name:     "fenced without language tag",
			input:    "```\n[\"Q1?\"]\n```",
			expected: `["Q1?"]`,
		},
		{
			name:     "fenced with language tag",
			input:    "```json\n[\"Q1?\"]\n```",
			expected: `["Q1?"]`,
		},
		{
			name:     "fenced without closing fence",
			input:    "```json\n[\"Q1?\"]",
			expected: `["Q1?"]`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n[\"Q1?\"]\n```\n  ",
			expected: `["Q1?"]`,
		},
		{
			name:     "residual fence tokens mid-text",
			input:    "```json\n[\"Q1?\"]\n``` ```",
			expected: `["Q1?"]`,
		},
		{
			name:     "plain text untouched",
			input:    "I cannot answer this.",
			expected: "I cannot answer this.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "bare array",
			input:    `["Q1?","Q2?","Q3?","Q4?","Q5?"]`,
			expected: []string{"Q1?", "Q2?", "Q3?", "Q4?", "Q5?"},
		},
		{
			name:     "fenced with language tag",
			input:    "```json\n[\"Q1?\",\"Q2?\"]\n```",
			expected: []string{"Q1?", "Q2?"},
		},
		{
			name:     "fenced without language tag",
			input:    "```\n[\"Q1?\",\"Q2?\"]\n```",
			expected: []string{"Q1?", "Q2?"},
		},
		{
			name:     "prose before and after the array",
			input:    "Here are your questions:\n[\"Q1?\",\"Q2?\"]\nGood luck!",
			expected: []string{"Q1?", "Q2?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ParseQuestions(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, questions)
		})
	}
}

func TestParseQuestionsRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: "I cannot answer this."},
		{name: "empty string", input: ""},
		{name: "object instead of array", input: `{"questions":["Q1?"]}`},
		{name: "array of non-strings", input: `[1,2,3]`},
		{name: "empty array", input: `[]`},
		{name: "truncated array", input: `["Q1?","Q2?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuestions(tt.input)
			assert.Error(t, err)
		})
	}
}

func validFeedbackJSON() string {
	return `{
		"overall_score": 82,
		"content_feedback": {"score": 85, "strengths": ["s1", "s2"], "improvements": ["i1", "i2"]},
		"verbal_feedback": {"score": 78, "strengths": ["s1"], "improvements": ["i1"]},
		"nonverbal_feedback": {"score": 80, "strengths": ["s1"], "improvements": ["i1"]},
		"actionable_tips": ["t1", "t2", "t3"],
		"similar_roles": [{"title": "Platform Engineer", "reason": "r1"}]
	}`
}

func TestParseFeedback(t *testing.T) {
	report, err := ParseFeedback(validFeedbackJSON())
	require.NoError(t, err)

	assert.Equal(t, 82, report.OverallScore)
	assert.Equal(t, 85, report.ContentFeedback.Score)
	assert.Equal(t, []string{"s1", "s2"}, report.ContentFeedback.Strengths)
	assert.Equal(t, 78, report.VerbalFeedback.Score)
	assert.Equal(t, 80, report.NonverbalFeedback.Score)
	assert.Len(t, report.ActionableTips, 3)
	assert.Equal(t, "Platform Engineer", report.SimilarRoles[0].Title)
	assert.False(t, report.Degraded)
}

func TestParseFeedbackFencedAndWrapped(t *testing.T) {
	wrapped := "Here is the analysis:\n```json\n" + validFeedbackJSON() + "\n```"

	report, err := ParseFeedback(wrapped)
	require.NoError(t, err)
	assert.Equal(t, 82, report.OverallScore)
}

func TestParseFeedbackAllowsEmptySequences(t *testing.T) {
	input := `{
		"overall_score": 60,
		"content_feedback": {"score": 60, "strengths": [], "improvements": []},
		"verbal_feedback": {"score": 60, "strengths": [], "improvements": []},
		"nonverbal_feedback": {"score": 60, "strengths": [], "improvements": []},
		"actionable_tips": [],
		"similar_roles": []
	}`

	report, err := ParseFeedback(input)
	require.NoError(t, err)
	assert.Empty(t, report.ActionableTips)
	assert.Empty(t, report.ContentFeedback.Strengths)
}

func TestParseFeedbackRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing overall_score",
			input: `{"content_feedback": {"score": 80, "strengths": [], "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": [], "similar_roles": []}`,
		},
		{
			name:  "missing dimension",
			input: `{"overall_score": 80, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": [], "similar_roles": []}`,
		},
		{
			name:  "missing dimension score",
			input: `{"overall_score": 80, "content_feedback": {"strengths": [], "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": [], "similar_roles": []}`,
		},
		{
			name:  "missing strengths",
			input: `{"overall_score": 80, "content_feedback": {"score": 80, "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": [], "similar_roles": []}`,
		},
		{
			name:  "missing actionable_tips",
			input: `{"overall_score": 80, "content_feedback": {"score": 80, "strengths": [], "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "similar_roles": []}`,
		},
		{
			name:  "missing similar_roles",
			input: `{"overall_score": 80, "content_feedback": {"score": 80, "strengths": [], "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": []}`,
		},
		{
			name:  "non-numeric score",
			input: `{"overall_score": "eighty", "content_feedback": {"score": 80, "strengths": [], "improvements": []}, "verbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "nonverbal_feedback": {"score": 80, "strengths": [], "improvements": []}, "actionable_tips": [], "similar_roles": []}`,
		},
		{name: "not JSON at all", input: "The candidate did well overall."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFeedback(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions("Backend Engineer")

	require.Len(t, questions, 5)
	assert.Contains(t, questions[0], "Backend Engineer")
	assert.Contains(t, questions[2], "Backend Engineer")
}

func TestFallbackFeedback(t *testing.T) {
	report := FallbackFeedback("Backend Engineer")

	assert.Equal(t, 70, report.OverallScore)
	assert.Equal(t, 70, report.ContentFeedback.Score)
	assert.Equal(t, 70, report.VerbalFeedback.Score)
	assert.Equal(t, 70, report.NonverbalFeedback.Score)
	assert.Len(t, report.ActionableTips, 3)
	require.Len(t, report.SimilarRoles, 3)
	assert.Equal(t, fmt.Sprintf("%s (Advanced)", "Backend Engineer"), report.SimilarRoles[0].Title)
	assert.True(t, report.Degraded)
}
