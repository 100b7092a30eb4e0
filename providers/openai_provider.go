package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainAI "github.com/wachat/wachat-bridge/domains/ai"
)

const defaultOpenAIModel = "gpt-4.1"

// OpenAIProvider is the adapter for the OpenAI API.
type OpenAIProvider struct {
	apiKey string
	model  string
}

func NewOpenAIProvider(cfg config.AIConfig) *OpenAIProvider {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		apiKey: cfg.OpenAIAPIKey,
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return config.ProviderOpenAI
}

// Complete implements the IProvider interface for OpenAI. An inline image is
// sent as a base64 data URL content part in its own user message, following
// the original three-message shape (system, text, image).
func (p *OpenAIProvider) Complete(ctx context.Context, prompt domainAI.Prompt) (string, error) {
	client := openai.NewClient(
		option.WithAPIKey(p.apiKey),
	)

	var messages []openai.ChatCompletionMessageParamUnion
	if prompt.System != "" {
		messages = append(messages, openai.SystemMessage(prompt.System))
	}
	messages = append(messages, openai.UserMessage(prompt.UserText))

	if prompt.Image != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s", prompt.Image.MimeType, prompt.Image.Base64)
		messages = append(messages, openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: dataURL,
			}),
		}))
	}

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	logrus.WithFields(logrus.Fields{
		"model":     p.model,
		"has_image": prompt.Image != nil,
		"chars":     len(text),
	}).Debug("[OPENAI] completion finished")

	return text, nil
}
