package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainSend "github.com/wachat/wachat-bridge/domains/send"
)

type sendService struct {
	cfg    *config.Config
	sender MessageSender
}

func NewSendService(cfg *config.Config, sender MessageSender) domainSend.ISendUsecase {
	return &sendService{cfg: cfg, sender: sender}
}

// SendTestMessage is the operational smoke-test passthrough: one text send,
// success reported as a boolean rather than an error.
func (s *sendService) SendTestMessage(ctx context.Context, request domainSend.TestMessageRequest) (domainSend.TestMessageResponse, error) {
	logrus.Infof("[SEND] test message to %s", request.PhoneNumber)

	success := true
	if err := s.sender.SendText(ctx, request.PhoneNumber, request.Message); err != nil {
		logrus.WithError(err).Error("[SEND] test message failed")
		success = false
	}

	return domainSend.TestMessageResponse{
		Success:        success,
		PhoneNumber:    request.PhoneNumber,
		Message:        request.Message,
		WhatsappAPIURL: s.cfg.Whatsapp.MessagesURL(),
	}, nil
}
