package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/utils"
	"github.com/google/uuid"
)

const pinLength = 4

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, name, alias, pin string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	alias = strings.TrimSpace(alias)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if alias == "" {
		return nil, fmt.Errorf("%w: alias is required", apperrors.ErrValidation)
	}
	if !validPIN(pin) {
		return nil, fmt.Errorf("%w: PIN must be exactly %d digits", apperrors.ErrValidation, pinLength)
	}

	hash, err := utils.HashPIN(pin)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash PIN")
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	now := time.Now().UTC()
	clientID := uuid.NewString()
	client := domain.Client{
		ClientID: clientID,
		Name:     name,
		Alias:    alias,
		PINHash:  hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     clientID,
			LastUpdatedAt: now,
			LastUpdatedBy: clientID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save client", slog.String("alias", alias))
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client registered", slog.String("client_id", clientID))
	return &client, nil
}

func validPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) GetClientByAlias(ctx context.Context, alias string) (*domain.Client, error) {
	return s.clientRepo.FindClientByAlias(ctx, strings.TrimSpace(alias))
}

// Authenticate never tells the caller whether the alias or the PIN was wrong.
func (s *clientService) Authenticate(ctx context.Context, alias, pin string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByAlias(ctx, strings.TrimSpace(alias))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid alias or PIN", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPINHash(pin, client.PINHash) {
		s.LogDebug(ctx, "PIN mismatch", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("%w: invalid alias or PIN", apperrors.ErrUnauthorized)
	}
	return client, nil
}
