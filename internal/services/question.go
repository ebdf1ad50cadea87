package services

import (
	"context"

	"go.uber.org/zap"

	"charismaai/interview-coach/internal/logger"
)

// QuestionService generates tailored interview questions for a role and
// candidate background.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, role, candidateContext string) (*QuestionResult, error)
}

// QuestionResult carries the generated questions. Degraded is true when the
// model's response could not be parsed and the fixed fallback set was
// substituted.
type QuestionResult struct {
	Questions []string
	Degraded  bool
}

type questionService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	log           *zap.Logger
}

func NewQuestionService(geminiService GeminiService, log *zap.Logger) QuestionService {
	return &questionService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		log:           log,
	}
}

// GenerateQuestions implements QuestionService. Gateway faults propagate to
// the caller; an unparseable response downgrades to the fallback question set.
func (s *questionService) GenerateQuestions(ctx context.Context, role, candidateContext string) (*QuestionResult, error) {
	prompt := s.promptBuilder.BuildQuestionPrompt(role, candidateContext)

	raw, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		s.log.Warn("falling back to template questions",
			zap.String("role", role),
			zap.String("response", logger.Truncate(raw, 200)),
			zap.Error(err))
		return &QuestionResult{Questions: FallbackQuestions(role), Degraded: true}, nil
	}

	s.log.Info("generated interview questions",
		zap.String("role", role),
		zap.Int("count", len(questions)))

	return &QuestionResult{Questions: questions}, nil
}
