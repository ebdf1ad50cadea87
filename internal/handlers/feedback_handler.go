package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"charismaai/interview-coach/internal/models"
	"charismaai/interview-coach/internal/services"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
	storageService  services.StorageService
	log             *zap.Logger
}

func NewFeedbackHandler(
	feedbackService services.FeedbackService,
	storageService services.StorageService,
	log *zap.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		storageService:  storageService,
		log:             log,
	}
}

// HandleAnalyzeVideo handles POST /agent2/analyze-video. All validation runs
// before the upload touches disk; the temporary video file is removed on
// every exit path after that.
func (h *FeedbackHandler) HandleAnalyzeVideo(c *fiber.Ctx) error {
	req := models.FeedbackRequest{
		Role:      c.FormValue("role"),
		Context:   c.FormValue("context"),
		Questions: c.FormValue("questions"),
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "role, context and questions are required")
	}

	video, err := c.FormFile("video")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "video file is required")
	}

	contentType := video.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		return fiber.NewError(fiber.StatusBadRequest, "file must be a video")
	}

	var questions []string
	if err := json.Unmarshal([]byte(req.Questions), &questions); err != nil || len(questions) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid questions format")
	}

	videoPath, err := h.storageService.SaveUpload(video, "webm")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	defer func() {
		if err := h.storageService.Remove(videoPath); err != nil {
			h.log.Warn("failed to clean up video file", zap.String("path", videoPath), zap.Error(err))
		}
	}()

	h.log.Info("analyzing video response",
		zap.String("role", req.Role),
		zap.String("content_type", contentType),
		zap.Int64("size", video.Size))

	report, err := h.feedbackService.AnalyzeVideo(c.Context(), videoPath, contentType, req.Role, req.Context, questions)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(models.FeedbackResponse{
		Success:  true,
		Feedback: report,
	})
}
