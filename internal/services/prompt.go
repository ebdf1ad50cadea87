package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for interview question generation.
// The output-format rules are a defensive measure: the model tends to wrap
// JSON in prose or code fences, so the normalizer still has to tolerate both.
func (pb *PromptBuilder) BuildQuestionPrompt(role, context string) string {
	return fmt.Sprintf(`You are an expert interview coach. Generate 5 highly specific, technical interview questions for a %s position based on the candidate's background below.

CRITICAL RULES:
1. Questions MUST be directly related to specific projects, technologies, or experiences mentioned in the background
2. Avoid generic questions like "Tell me about yourself" or "What are your strengths"
3. Focus on technical depth and real-world scenarios
4. Each question should probe understanding of decisions they made in their past work

Candidate Background:
%s

Generate exactly 5 questions. Return ONLY a JSON array of strings, nothing else.
Example format: ["Question 1?", "Question 2?", "Question 3?", "Question 4?", "Question 5?"]
`, role, context)
}

// BuildFeedbackPrompt creates the multimodal prompt for video interview
// analysis. Questions are rendered as a 1-indexed numbered list.
func (pb *PromptBuilder) BuildFeedbackPrompt(role, context string, questions []string) string {
	var numbered []string
	for i, q := range questions {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, q))
	}
	questionsText := strings.Join(numbered, "\n")

	return fmt.Sprintf(`You are an expert interview coach analyzing a candidate's video interview response.

**Interview Context:**
- Target Role: %s
- Candidate Background: %s

**Questions Asked:**
%s

**Your Task:**
Analyze the video comprehensively across three dimensions:

1. **Content Quality** (0-100):
   - Relevance to questions asked
   - Technical depth and accuracy
   - Structure and clarity of answers
   - Use of specific examples

2. **Verbal Delivery** (0-100):
   - Speaking pace and rhythm
   - Clarity and articulation
   - Confidence in tone
   - Filler words usage ("um", "uh", "like")
   - Pauses and hesitations

3. **Non-Verbal Communication** (0-100):
   - Facial expressions and engagement
   - Eye contact with camera
   - Posture and body language
   - Hand gestures (natural vs. distracting)
   - Overall confidence and presence

**Response Format:**
Return ONLY a JSON object with this exact structure (no markdown, no extra text):

{
  "overall_score": <number 0-100>,
  "content_feedback": {
    "score": <number 0-100>,
    "strengths": ["<specific strength 1>", "<specific strength 2>"],
    "improvements": ["<specific improvement 1>", "<specific improvement 2>"]
  },
  "verbal_feedback": {
    "score": <number 0-100>,
    "strengths": ["<specific strength 1>", "<specific strength 2>"],
    "improvements": ["<specific improvement 1>", "<specific improvement 2>"]
  },
  "nonverbal_feedback": {
    "score": <number 0-100>,
    "strengths": ["<specific strength 1>", "<specific strength 2>"],
    "improvements": ["<specific improvement 1>", "<specific improvement 2>"]
  },
  "actionable_tips": [
    "<concrete action 1>",
    "<concrete action 2>",
    "<concrete action 3>"
  ],
  "similar_roles": [
    {
      "title": "<job role title>",
      "reason": "<why this role fits based on their skills/background>"
    },
    {
      "title": "<job role title>",
      "reason": "<why this role fits based on their skills/background>"
    },
    {
      "title": "<job role title>",
      "reason": "<why this role fits based on their skills/background>"
    }
  ]
}

Be specific, honest, and constructive. Focus on actionable feedback.
For similar roles, suggest 3 relevant positions based on their demonstrated skills and background.
`, role, context, questionsText)
}
