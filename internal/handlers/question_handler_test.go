package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"charismaai/interview-coach/internal/models"
	"charismaai/interview-coach/internal/services"
)

// fakeGateway implements services.GeminiService so handler tests run the real
// orchestrators and normalizer against canned model output.
type fakeGateway struct {
	textResponse  string
	textErr       error
	videoResponse string
	videoErr      error
}

func (f *fakeGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.textResponse, f.textErr
}

func (f *fakeGateway) GenerateWithVideo(ctx context.Context, prompt, videoPath, mimeType string) (string, error) {
	return f.videoResponse, f.videoErr
}

func newQuestionApp(t *testing.T, gateway services.GeminiService) *fiber.App {
	t.Helper()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	resolver := services.NewContextResolver(services.NewPDFParserService())
	questionService := services.NewQuestionService(gateway, zap.NewNop())
	handler := NewQuestionHandler(questionService, resolver, storage, zap.NewNop())

	app := fiber.New(fiber.Config{ErrorHandler: FaultHandler})
	app.Post("/agent1/generate-questions", handler.HandleGenerateQuestions)
	return app
}

func questionForm(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/agent1/generate-questions", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	app := newQuestionApp(t, &fakeGateway{textResponse: `["Q1?","Q2?","Q3?","Q4?","Q5?"]`})

	description := "Built a REST API with rate limiting and Redis caching."
	req := questionForm(t, map[string]string{
		"role":        "Backend Engineer",
		"description": description,
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.QuestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, "Backend Engineer", body.Role)
	assert.Equal(t, []string{"Q1?", "Q2?", "Q3?", "Q4?", "Q5?"}, body.Questions)
	assert.Equal(t, len(description), body.ContextLength)
	assert.False(t, body.Degraded)
}

func TestGenerateQuestionsEndpointFallsBackOnNonJSON(t *testing.T) {
	app := newQuestionApp(t, &fakeGateway{textResponse: "I cannot answer this."})

	req := questionForm(t, map[string]string{
		"role":        "Backend Engineer",
		"description": "Built a REST API with rate limiting and Redis caching.",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.QuestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.True(t, body.Degraded)
	require.Len(t, body.Questions, 5)
	assert.Contains(t, body.Questions[0], "Backend Engineer")
}

func TestGenerateQuestionsEndpointRejectsMissingInputs(t *testing.T) {
	app := newQuestionApp(t, &fakeGateway{textErr: fmt.Errorf("should not be called")})

	req := questionForm(t, map[string]string{"role": "Backend Engineer"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fault map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fault))
	assert.Contains(t, fault["detail"], "resume or description")
}

func TestGenerateQuestionsEndpointRejectsMissingRole(t *testing.T) {
	app := newQuestionApp(t, &fakeGateway{})

	req := questionForm(t, map[string]string{"description": "some background"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateQuestionsEndpointReportsGatewayFault(t *testing.T) {
	app := newQuestionApp(t, &fakeGateway{
		textErr: fmt.Errorf("%w: connection refused", services.ErrGatewayUnavailable),
	})

	req := questionForm(t, map[string]string{
		"role":        "Backend Engineer",
		"description": "some background",
	})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var fault map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fault))
	assert.Contains(t, fault["detail"], "connection refused")
}
