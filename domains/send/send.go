package send

import "context"

type TestMessageRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type TestMessageResponse struct {
	Success        bool   `json:"success"`
	PhoneNumber    string `json:"phone_number"`
	Message        string `json:"message"`
	WhatsappAPIURL string `json:"whatsapp_api_url"`
}

type ISendUsecase interface {
	SendTestMessage(ctx context.Context, request TestMessageRequest) (TestMessageResponse, error)
}
