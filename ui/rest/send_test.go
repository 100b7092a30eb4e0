package rest

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	domainSend "github.com/wachat/wachat-bridge/domains/send"
)

type fakeSendService struct {
	response domainSend.TestMessageResponse
	err      error
	requests []domainSend.TestMessageRequest
}

func (f *fakeSendService) SendTestMessage(_ context.Context, request domainSend.TestMessageRequest) (domainSend.TestMessageResponse, error) {
	f.requests = append(f.requests, request)
	return f.response, f.err
}

func newSendApp(service *fakeSendService) *fiber.App {
	app := fiber.New()
	InitRestSend(app, service)
	return app
}

func TestSendTestMessage_Success(t *testing.T) {
	service := &fakeSendService{
		response: domainSend.TestMessageResponse{
			Success:        true,
			PhoneNumber:    "5215511111111",
			Message:        "hola",
			WhatsappAPIURL: "https://graph.facebook.com/v22.0/987/messages",
		},
	}
	app := newSendApp(service)

	req := httptest.NewRequest("POST", "/test-whatsapp?phone_number=5215511111111&message=hola", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var payload domainSend.TestMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if !payload.Success {
		t.Error("expected success true")
	}
	if payload.WhatsappAPIURL == "" {
		t.Error("expected the send endpoint echoed in the response")
	}

	if len(service.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(service.requests))
	}
	if service.requests[0].PhoneNumber != "5215511111111" {
		t.Errorf("unexpected phone number: %s", service.requests[0].PhoneNumber)
	}
}

// Sin phone_number la petición ni llega al servicio.
func TestSendTestMessage_MissingPhoneNumber(t *testing.T) {
	service := &fakeSendService{}
	app := newSendApp(service)

	req := httptest.NewRequest("POST", "/test-whatsapp", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(service.requests) != 0 {
		t.Errorf("service should not be called, got %d requests", len(service.requests))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload["code"] != "VALIDATION_ERROR" {
		t.Errorf("unexpected error code: %v", payload["code"])
	}
}

func TestSendTestMessage_DefaultMessage(t *testing.T) {
	service := &fakeSendService{response: domainSend.TestMessageResponse{Success: true}}
	app := newSendApp(service)

	req := httptest.NewRequest("POST", "/test-whatsapp?phone_number=521", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	if len(service.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(service.requests))
	}
	if service.requests[0].Message != "Mensaje de prueba" {
		t.Errorf("expected default message, got %q", service.requests[0].Message)
	}
}
