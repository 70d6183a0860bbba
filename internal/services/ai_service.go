// internal/services/ai_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/sproutlabs/sprout-backend/internal/config"
)

// AIService wraps the Gemini client for product copy and image generation.
// Every call is best-effort: failures degrade to a fallback value and a
// dismissible inline message, never a blocking error.
type AIService struct {
	client  *genai.Client
	config  config.AIConfig
	storage *StorageService
}

var ErrGenerationUnavailable = errors.New("generation unavailable")

func NewAIService(cfg config.AIConfig, storage *StorageService) (*AIService, error) {
	if cfg.GeminiAPIKey == "" {
		// Fallback-only mode for local development without credentials.
		return &AIService{config: cfg, storage: storage}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &AIService{client: client, config: cfg, storage: storage}, nil
}

func (s *AIService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// GenerateDescription produces roughly 40 words of product copy. The second
// return is false when the caller should substitute the localized fallback
// string instead.
func (s *AIService) GenerateDescription(ctx context.Context, title, category string) (string, bool) {
	if s.client == nil {
		return "", false
	}

	model := s.client.GenerativeModel(s.config.TextModel)

	prompt := fmt.Sprintf(
		"Write a product description for an online shop run by a teen entrepreneur. "+
			"Product: %q. Category: %q. "+
			"Keep it to about 40 words, upbeat and honest, no hashtags, no emoji.",
		title, category,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logrus.WithError(err).Warn("Description generation failed, using fallback")
		return "", false
	}

	text := collectText(resp)
	if text == "" {
		logrus.Warn("Description generation returned no text, using fallback")
		return "", false
	}

	return text, true
}

// GenerateProductImage renders product photography from a text prompt and
// stores it, returning the public URL.
func (s *AIService) GenerateProductImage(ctx context.Context, title, stylePrompt string) (*UploadResult, error) {
	if s.client == nil {
		return nil, ErrGenerationUnavailable
	}

	prompt := fmt.Sprintf(
		"Clean studio product photograph of %q on a plain background, soft lighting.", title)
	if stylePrompt != "" {
		prompt += " Style notes: " + stylePrompt
	}

	blob, err := s.generateImage(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	return s.storage.UploadImage(blob.Data, blob.MIMEType, "products")
}

// GenerateTryOn composites a product onto a person photo ("virtual try-on").
func (s *AIService) GenerateTryOn(ctx context.Context, productImage, personImage []byte, imageFormat string) (*UploadResult, error) {
	if s.client == nil {
		return nil, ErrGenerationUnavailable
	}

	blob, err := s.generateImage(ctx,
		genai.Text("Composite the product from the first image onto the person in the second image, keeping lighting and proportions natural."),
		genai.ImageData(imageFormat, productImage),
		genai.ImageData(imageFormat, personImage),
	)
	if err != nil {
		return nil, err
	}

	return s.storage.UploadImage(blob.Data, blob.MIMEType, "try-on")
}

func (s *AIService) generateImage(ctx context.Context, parts ...genai.Part) (*genai.Blob, error) {
	model := s.client.GenerativeModel(s.config.ImageModel)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		logrus.WithError(err).Warn("Image generation failed")
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				return &blob, nil
			}
		}
	}

	return nil, ErrGenerationUnavailable
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
