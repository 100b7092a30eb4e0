package health

import "context"

// EnvironmentCheck mirrors the startup requirements: one ✓/✗ marker per
// required secret.
type EnvironmentCheck struct {
	VerifyToken   string `json:"verify_token"`
	WhatsappToken string `json:"whatsapp_token"`
	PhoneNumberID string `json:"phone_number_id"`
	AIAPIKey      string `json:"ai_api_key"`
}

type RootStatus struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type DetailedStatus struct {
	Status           string           `json:"status"`
	AIProvider       string           `json:"ai_provider"`
	EnvironmentCheck EnvironmentCheck `json:"environment_check"`
}

type IHealthUsecase interface {
	Root(ctx context.Context) RootStatus
	Detailed(ctx context.Context) DetailedStatus
}
