package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/platform/config"
	"github.com/SscSPs/bank_ledger_sim/internal/utils"
)

// tokenService issues the JWTs the auth middleware validates.
type tokenService struct {
	BaseService
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given client.
func (s *tokenService) GenerateAccessToken(ctx context.Context, client *domain.Client) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(client.ClientID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
