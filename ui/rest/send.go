package rest

import (
	"github.com/gofiber/fiber/v2"
	domainSend "github.com/wachat/wachat-bridge/domains/send"
	pkgError "github.com/wachat/wachat-bridge/pkg/error"
	"github.com/wachat/wachat-bridge/pkg/utils"
	"github.com/wachat/wachat-bridge/validations"
)

type Send struct {
	Service domainSend.ISendUsecase
}

func InitRestSend(app fiber.Router, service domainSend.ISendUsecase) Send {
	rest := Send{Service: service}

	app.Post("/test-whatsapp", rest.TestMessage)
	return rest
}

// TestMessage es el passthrough de prueba operativa: manda un texto directo
// sin pasar por el pipeline de IA.
func (controller *Send) TestMessage(c *fiber.Ctx) error {
	request := domainSend.TestMessageRequest{
		PhoneNumber: c.Query("phone_number"),
		Message:     c.Query("message", "Mensaje de prueba"),
	}

	if err := validations.ValidateTestMessage(c.UserContext(), request); err != nil {
		status := fiber.StatusBadRequest
		code := "VALIDATION_ERROR"
		if generic, ok := err.(pkgError.GenericError); ok {
			status = generic.StatusCode()
			code = generic.ErrCode()
		}
		return c.Status(status).JSON(utils.ResponseData{
			Status:  status,
			Code:    code,
			Message: err.Error(),
		})
	}

	response, err := controller.Service.SendTestMessage(c.UserContext(), request)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ResponseData{
			Status:  fiber.StatusInternalServerError,
			Code:    "INTERNAL_SERVER_ERROR",
			Message: err.Error(),
		})
	}

	return c.JSON(response)
}
