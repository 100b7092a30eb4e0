package rest

import (
	"github.com/gofiber/fiber/v2"
	domainHealth "github.com/wachat/wachat-bridge/domains/health"
)

type Health struct {
	Service domainHealth.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service domainHealth.IHealthUsecase) Health {
	rest := Health{Service: service}

	app.Get("/", rest.Root)
	app.Get("/health", rest.Detailed)
	return rest
}

func (controller *Health) Root(c *fiber.Ctx) error {
	return c.JSON(controller.Service.Root(c.UserContext()))
}

func (controller *Health) Detailed(c *fiber.Ctx) error {
	return c.JSON(controller.Service.Detailed(c.UserContext()))
}
