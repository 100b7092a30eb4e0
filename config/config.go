package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultGraphBaseURL = "https://graph.facebook.com/v22.0"
)

// Config holds all application configuration in a structured way. It is
// built once at startup, validated before the server listens and injected
// into every component constructor.
type Config struct {
	App      AppConfig
	Whatsapp WhatsappConfig
	AI       AIConfig
}

type AppConfig struct {
	Version     string
	Port        string
	Debug       bool
	Environment string
}

type WhatsappConfig struct {
	// VerifyToken authenticates the webhook subscription handshake.
	VerifyToken string
	// Token is the Cloud API bearer token used for sends and media fetches.
	Token         string
	PhoneNumberID string
	// GraphBaseURL is overridable so tests can point at a local server.
	GraphBaseURL string
}

// MessagesURL is the send endpoint derived from the phone number id.
func (w WhatsappConfig) MessagesURL() string {
	return fmt.Sprintf("%s/%s/messages", strings.TrimRight(w.GraphBaseURL, "/"), w.PhoneNumberID)
}

// MediaURL resolves a media id to its metadata endpoint.
func (w WhatsappConfig) MediaURL(mediaID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(w.GraphBaseURL, "/"), mediaID)
}

type AIConfig struct {
	Provider     string
	OpenAIAPIKey string
	GeminiAPIKey string
	Model        string
}

// APIKey returns the key of the active provider.
func (a AIConfig) APIKey() string {
	if a.Provider == ProviderGemini {
		return a.GeminiAPIKey
	}
	return a.OpenAIAPIKey
}

// Load reads configuration from the environment. It never fails; Validate
// performs the fail-fast check once, before the HTTP server starts.
func Load() *Config {
	viper.AutomaticEnv()

	return &Config{
		App: AppConfig{
			Version:     "v1.0.0",
			Port:        getEnv("APP_PORT", "8000"),
			Debug:       getEnvBool("APP_DEBUG", false),
			Environment: getEnv("APP_ENV", "development"),
		},
		Whatsapp: WhatsappConfig{
			VerifyToken:   getEnv("VERIFY_TOKEN", ""),
			Token:         getEnv("WHATSAPP_TOKEN", ""),
			PhoneNumberID: getEnv("PHONE_NUMBER_ID", ""),
			GraphBaseURL:  getEnv("GRAPH_API_BASE_URL", defaultGraphBaseURL),
		},
		AI: AIConfig{
			Provider:     strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenAI)),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("AI_MODEL", ""),
		},
	}
}

// Validate enforces the required secrets. The process must refuse to start
// when any of them is absent.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(&c.Whatsapp,
		validation.Field(&c.Whatsapp.VerifyToken, validation.Required.Error("la variable de entorno VERIFY_TOKEN es requerida")),
		validation.Field(&c.Whatsapp.Token, validation.Required.Error("la variable de entorno WHATSAPP_TOKEN es requerida")),
		validation.Field(&c.Whatsapp.PhoneNumberID, validation.Required.Error("la variable de entorno PHONE_NUMBER_ID es requerida")),
	)
	if err != nil {
		return err
	}

	switch c.AI.Provider {
	case ProviderOpenAI:
		if c.AI.OpenAIAPIKey == "" {
			return fmt.Errorf("la variable de entorno OPENAI_API_KEY es requerida")
		}
	case ProviderGemini:
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("la variable de entorno GEMINI_API_KEY es requerida")
		}
	default:
		return fmt.Errorf("AI_PROVIDER no soportado: %q (usa %q o %q)", c.AI.Provider, ProviderOpenAI, ProviderGemini)
	}

	return nil
}
