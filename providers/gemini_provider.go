package providers

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainAI "github.com/wachat/wachat-bridge/domains/ai"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider is the adapter for the Google Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

func NewGeminiProvider(cfg config.AIConfig) *GeminiProvider {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{
		apiKey: cfg.GeminiAPIKey,
		model:  model,
	}
}

func (p *GeminiProvider) Name() string {
	return config.ProviderGemini
}

// Complete implementa la interfaz IProvider enviando una petición a la API
// de Gemini; la imagen viaja como blob inline.
func (p *GeminiProvider) Complete(ctx context.Context, prompt domainAI.Prompt) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	var genConfig *genai.GenerateContentConfig
	if prompt.System != "" {
		genConfig = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.System, ""),
		}
	}

	parts := []*genai.Part{{Text: prompt.UserText}}
	if prompt.Image != nil {
		data, decErr := base64.StdEncoding.DecodeString(prompt.Image.Base64)
		if decErr != nil {
			return "", fmt.Errorf("decode inline image: %w", decErr)
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: prompt.Image.MimeType, Data: data},
		})
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	resp, err := client.Models.GenerateContent(ctx, p.model, contents, genConfig)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response from gemini")
	}

	logrus.WithFields(logrus.Fields{
		"model":     p.model,
		"has_image": prompt.Image != nil,
		"chars":     len(text),
	}).Debug("[GEMINI] completion finished")

	return text, nil
}
