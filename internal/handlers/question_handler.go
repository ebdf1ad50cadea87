package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"charismaai/interview-coach/internal/models"
	"charismaai/interview-coach/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
	contextResolver services.ContextResolver
	storageService  services.StorageService
	log             *zap.Logger
}

func NewQuestionHandler(
	questionService services.QuestionService,
	contextResolver services.ContextResolver,
	storageService services.StorageService,
	log *zap.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		contextResolver: contextResolver,
		storageService:  storageService,
		log:             log,
	}
}

// HandleGenerateQuestions handles POST /agent1/generate-questions.
// Accepts either a resume PDF or a text description as the candidate
// background.
func (h *QuestionHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	req := models.QuestionRequest{
		Role:        c.FormValue("role"),
		Description: c.FormValue("description"),
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "role is required")
	}

	var resumePath string
	if resumeFile, err := c.FormFile("resume"); err == nil && resumeFile != nil {
		path, err := h.storageService.SaveUpload(resumeFile, "pdf")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		resumePath = path

		defer func() {
			if err := h.storageService.Remove(path); err != nil {
				h.log.Warn("failed to clean up resume file", zap.String("path", path), zap.Error(err))
			}
		}()
	}

	if resumePath == "" && strings.TrimSpace(req.Description) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "must provide either resume or description")
	}

	candidateContext, err := h.contextResolver.Resolve(resumePath, req.Description)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := h.questionService.GenerateQuestions(c.Context(), req.Role, candidateContext)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(models.QuestionResponse{
		Success:       true,
		Role:          req.Role,
		Questions:     result.Questions,
		ContextLength: len(candidateContext),
		Degraded:      result.Degraded,
	})
}
