package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wachat/wachat-bridge/config"
	domainAI "github.com/wachat/wachat-bridge/domains/ai"
	"github.com/wachat/wachat-bridge/infrastructure/whatsapp"
	"github.com/wachat/wachat-bridge/providers"
	"github.com/wachat/wachat-bridge/ui/rest"
	"github.com/wachat/wachat-bridge/ui/rest/middleware"
	"github.com/wachat/wachat-bridge/usecase"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the webhook bridge over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := config.Load()
	if flagPort != "" {
		cfg.App.Port = flagPort
	}
	if flagDebug {
		cfg.App.Debug = true
	}

	// Fail-fast: sin los cuatro secretos el proceso no arranca.
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	waClient := whatsapp.NewClient(cfg)

	var provider domainAI.IProvider
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		provider = providers.NewGeminiProvider(cfg.AI)
	default:
		provider = providers.NewOpenAIProvider(cfg.AI)
	}
	logrus.Infof("[APP] AI provider: %s", provider.Name())

	messageService := usecase.NewMessageService(cfg, waClient, waClient, provider)
	sendService := usecase.NewSendService(cfg, waClient)
	healthService := usecase.NewHealthService(cfg)

	app := fiber.New(fiber.Config{
		AppName: "WaChat Bridge " + cfg.App.Version,
		Network: "tcp",
	})

	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(middleware.Recovery())
	if cfg.App.Debug {
		app.Use(logger.New())
	}

	rest.InitRestHealth(app, healthService)
	rest.InitRestWebhook(app, messageService, cfg)
	rest.InitRestSend(app, sendService)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
