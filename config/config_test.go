package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Whatsapp: WhatsappConfig{
			VerifyToken:   "secreto",
			Token:         "token",
			PhoneNumberID: "987",
			GraphBaseURL:  "https://graph.facebook.com/v22.0",
		},
		AI: AIConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "sk-test"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Whatsapp.GraphBaseURL)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("VERIFY_TOKEN", "secreto")
	t.Setenv("AI_PROVIDER", "GEMINI")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "secreto", cfg.Whatsapp.VerifyToken)
	// el proveedor se normaliza a minúsculas
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_MissingWhatsappSecrets(t *testing.T) {
	for _, clear := range []func(*Config){
		func(c *Config) { c.Whatsapp.VerifyToken = "" },
		func(c *Config) { c.Whatsapp.Token = "" },
		func(c *Config) { c.Whatsapp.PhoneNumberID = "" },
	} {
		cfg := validConfig()
		clear(cfg)
		assert.Error(t, cfg.Validate())
	}
}

func TestValidate_ProviderKeyRequired(t *testing.T) {
	cfg := validConfig()
	cfg.AI.OpenAIAPIKey = ""
	require.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.AI.Provider = ProviderGemini
	// la clave de openai no sirve para gemini
	require.Error(t, cfg.Validate())

	cfg.AI.GeminiAPIKey = "gk-test"
	require.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.AI.Provider = "claude"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_PROVIDER no soportado")
}

func TestAPIKey_FollowsProvider(t *testing.T) {
	ai := AIConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "sk", GeminiAPIKey: "gk"}
	assert.Equal(t, "sk", ai.APIKey())

	ai.Provider = ProviderGemini
	assert.Equal(t, "gk", ai.APIKey())
}

func TestWhatsappURLs(t *testing.T) {
	w := WhatsappConfig{GraphBaseURL: "http://localhost:9999/", PhoneNumberID: "987"}

	assert.Equal(t, "http://localhost:9999/987/messages", w.MessagesURL())
	assert.Equal(t, "http://localhost:9999/media-1", w.MediaURL("media-1"))
}
