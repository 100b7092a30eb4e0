package ai

import "context"

// InlineImage is an image embedded in the prompt as base64 bytes.
type InlineImage struct {
	MimeType string
	Base64   string
}

// Prompt is the provider-agnostic completion request. When System is empty
// the whole instruction set already lives inside UserText (single enriched
// text input); when Image is set the provider must emit a multimodal request.
type Prompt struct {
	System   string
	UserText string
	Image    *InlineImage
}

type IProvider interface {
	Name() string
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
