package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wachat/wachat-bridge/config"
	domainSend "github.com/wachat/wachat-bridge/domains/send"
)

func sendTestConfig() *config.Config {
	return &config.Config{
		Whatsapp: config.WhatsappConfig{
			Token:         "t",
			PhoneNumberID: "987",
			GraphBaseURL:  "https://graph.facebook.com/v22.0",
		},
	}
}

func TestSendTestMessage_Success(t *testing.T) {
	sender := &fakeSender{}
	svc := NewSendService(sendTestConfig(), sender)

	response, err := svc.SendTestMessage(context.Background(), domainSend.TestMessageRequest{
		PhoneNumber: "5215511111111",
		Message:     "hola",
	})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "5215511111111", response.PhoneNumber)
	assert.Equal(t, "https://graph.facebook.com/v22.0/987/messages", response.WhatsappAPIURL)
	require.Len(t, sender.texts, 1)
	assert.Equal(t, "hola", sender.texts[0].Body)
}

// Un fallo del envío se reporta como success=false, nunca como error.
func TestSendTestMessage_FailureReportedInBody(t *testing.T) {
	sender := &fakeSender{textErr: errors.New("401 unauthorized")}
	svc := NewSendService(sendTestConfig(), sender)

	response, err := svc.SendTestMessage(context.Background(), domainSend.TestMessageRequest{
		PhoneNumber: "521",
		Message:     "hola",
	})

	require.NoError(t, err)
	assert.False(t, response.Success)
}
