package usecase

import (
	"context"

	"github.com/wachat/wachat-bridge/config"
	domainHealth "github.com/wachat/wachat-bridge/domains/health"
)

type healthService struct {
	cfg *config.Config
}

func NewHealthService(cfg *config.Config) domainHealth.IHealthUsecase {
	return &healthService{cfg: cfg}
}

func (s *healthService) Root(_ context.Context) domainHealth.RootStatus {
	return domainHealth.RootStatus{
		Message: "WaChat Bridge está ejecutándose",
		Status:  "healthy",
	}
}

// Detailed reports presence of the four required secrets. Since startup
// validation is fail-fast these should always be ✓ at runtime; the endpoint
// exists for operational diagnosis of misconfigured deployments.
func (s *healthService) Detailed(_ context.Context) domainHealth.DetailedStatus {
	return domainHealth.DetailedStatus{
		Status:     "healthy",
		AIProvider: s.cfg.AI.Provider,
		EnvironmentCheck: domainHealth.EnvironmentCheck{
			VerifyToken:   presenceMark(s.cfg.Whatsapp.VerifyToken),
			WhatsappToken: presenceMark(s.cfg.Whatsapp.Token),
			PhoneNumberID: presenceMark(s.cfg.Whatsapp.PhoneNumberID),
			AIAPIKey:      presenceMark(s.cfg.AI.APIKey()),
		},
	}
}

func presenceMark(value string) string {
	if value != "" {
		return "✓"
	}
	return "✗"
}
