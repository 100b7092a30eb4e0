package rest

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
	pkgError "github.com/wachat/wachat-bridge/pkg/error"
	"github.com/wachat/wachat-bridge/pkg/utils"
)

type Webhook struct {
	Service     domainMessage.IMessageUsecase
	VerifyToken string
}

func InitRestWebhook(app fiber.Router, service domainMessage.IMessageUsecase, cfg *config.Config) Webhook {
	rest := Webhook{
		Service:     service,
		VerifyToken: cfg.Whatsapp.VerifyToken,
	}

	app.Get("/webhook", rest.Verify)
	app.Post("/webhook", rest.Receive)
	return rest
}

// Verify handles the subscription handshake: Meta expects the literal
// challenge echoed back when the mode and token match. This is the only
// endpoint where a failure surfaces as a non-200 status.
func (controller *Webhook) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	challenge := c.Query("hub.challenge")
	token := c.Query("hub.verify_token")

	logrus.Infof("[WEBHOOK] verification attempt with token: %s", token)

	if mode == "subscribe" && token == controller.VerifyToken {
		logrus.Info("[WEBHOOK] verification succeeded")
		return c.SendString(challenge)
	}

	logrus.Warn("[WEBHOOK] verification failed")
	verifErr := pkgError.VerificationError("Verificación falló")
	return c.Status(verifErr.StatusCode()).JSON(utils.ResponseData{
		Status:  verifErr.StatusCode(),
		Code:    verifErr.ErrCode(),
		Message: verifErr.Error(),
	})
}

// Receive always answers HTTP 200 so the platform does not retry; processing
// failures (including panics) are reported in the body only.
func (controller *Webhook) Receive(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("[WEBHOOK] panic while processing delivery: %v", r)
			err = c.JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("%v", r)})
		}
	}()

	if procErr := controller.Service.ProcessDelivery(c.UserContext(), c.Body()); procErr != nil {
		logrus.WithError(procErr).Error("[WEBHOOK] failed to process delivery")
		return c.JSON(fiber.Map{"status": "error", "message": procErr.Error()})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
