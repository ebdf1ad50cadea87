package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"charismaai/interview-coach/internal/config"
	"charismaai/interview-coach/internal/logger"
)

// sleep is swappable so tests don't wait out real polling intervals.
var sleep = time.Sleep

// GeminiService is the gateway to the generative model. Text-only completion
// for question generation, video-attached completion for interview analysis.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateWithVideo(ctx context.Context, prompt, videoPath, mimeType string) (string, error)
}

type geminiService struct {
	client         *genai.Client
	modelName      string
	temperature    float32
	pollInterval   time.Duration
	processTimeout time.Duration
	log            *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:         client,
		modelName:      cfg.Model,
		temperature:    cfg.Temperature,
		pollInterval:   cfg.PollInterval,
		processTimeout: cfg.ProcessTimeout,
		log:            log,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := genai.Text(prompt)
	return g.generate(ctx, contents)
}

// GenerateWithVideo implements GeminiService. The video is uploaded to the
// model service first; the remote handle is released on every exit path.
func (g *geminiService) GenerateWithVideo(ctx context.Context, prompt, videoPath, mimeType string) (string, error) {
	file, err := g.client.Files.UploadFromPath(ctx, videoPath, &genai.UploadFileConfig{
		MIMEType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to upload video: %v", ErrGatewayUnavailable, err)
	}

	defer func() {
		if _, err := g.client.Files.Delete(context.WithoutCancel(ctx), file.Name, nil); err != nil {
			g.log.Warn("failed to delete remote video file",
				zap.String("file", file.Name),
				zap.Error(err))
		}
	}()

	file, err = g.waitForProcessing(ctx, file)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromURI(file.URI, file.MIMEType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	return g.generate(ctx, contents)
}

// waitForProcessing polls the remote file at a fixed interval until it leaves
// the processing state or the configured deadline expires.
func (g *geminiService) waitForProcessing(ctx context.Context, file *genai.File) (*genai.File, error) {
	deadline := time.Now().Add(g.processTimeout)

	for file.State == genai.FileStateProcessing {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: still processing after %s", ErrMediaProcessingTimeout, g.processTimeout)
		}

		g.log.Debug("video still processing", zap.String("file", file.Name))
		sleep(g.pollInterval)

		updated, err := g.client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check video status: %v", ErrGatewayUnavailable, err)
		}
		file = updated
	}

	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("%w: state %s", ErrMediaProcessing, file.State)
	}

	return file, nil
}

func (g *geminiService) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrGatewayUnavailable)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrGatewayUnavailable)
	}

	g.log.Debug("gemini response received",
		zap.String("model", g.modelName),
		zap.String("preview", logger.Truncate(text, 200)))

	return text, nil
}
