package services

import (
	"context"

	"go.uber.org/zap"

	"charismaai/interview-coach/internal/logger"
	"charismaai/interview-coach/internal/models"
)

// FeedbackService analyzes a recorded interview answer and produces a
// structured multimodal feedback report.
type FeedbackService interface {
	AnalyzeVideo(ctx context.Context, videoPath, mimeType, role, candidateContext string, questions []string) (*models.FeedbackReport, error)
}

type feedbackService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	log           *zap.Logger
}

func NewFeedbackService(geminiService GeminiService, log *zap.Logger) FeedbackService {
	return &feedbackService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		log:           log,
	}
}

// AnalyzeVideo implements FeedbackService. Transport and media-processing
// faults propagate to the caller; an unparseable analysis downgrades to the
// fallback report so the caller still receives a well-formed result.
func (s *feedbackService) AnalyzeVideo(ctx context.Context, videoPath, mimeType, role, candidateContext string, questions []string) (*models.FeedbackReport, error) {
	prompt := s.promptBuilder.BuildFeedbackPrompt(role, candidateContext, questions)

	raw, err := s.geminiService.GenerateWithVideo(ctx, prompt, videoPath, mimeType)
	if err != nil {
		return nil, err
	}

	report, err := ParseFeedback(raw)
	if err != nil {
		s.log.Warn("falling back to generic feedback report",
			zap.String("role", role),
			zap.String("response", logger.Truncate(raw, 200)),
			zap.Error(err))
		return FallbackFeedback(role), nil
	}

	s.log.Info("video analysis complete",
		zap.String("role", role),
		zap.Int("overall_score", report.OverallScore))

	return report, nil
}
