package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AccessController portssvc.AccessController
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// SystemActor is recorded as the updater of changes no client asked for.
const SystemActor = "system"

// CallerID returns the client acting through ctx, or SystemActor for background work.
func (s *BaseService) CallerID(ctx context.Context) string {
	if clientID, ok := middleware.GetClientIDFromCtx(ctx); ok {
		return clientID
	}
	return SystemActor
}

// AuthorizeAccount fails with ErrUnauthorized unless the caller may act on account.
func (s *BaseService) AuthorizeAccount(ctx context.Context, account *domain.Account) error {
	if s.AccessController == nil || s.AccessController.HasAccessToAccount(ctx, account) {
		return nil
	}
	s.LogDebug(ctx, "Access to account denied", slog.String("account_id", account.AccountID))
	return fmt.Errorf("%w: no access to account %s", apperrors.ErrUnauthorized, account.AccountID)
}

// AuthorizeClient fails with ErrUnauthorized unless the caller may act for clientID.
func (s *BaseService) AuthorizeClient(ctx context.Context, clientID string) error {
	if s.AccessController == nil || s.AccessController.HasAccessToClient(ctx, clientID) {
		return nil
	}
	s.LogDebug(ctx, "Access to client denied", slog.String("target_client_id", clientID))
	return fmt.Errorf("%w: no access to client %s", apperrors.ErrUnauthorized, clientID)
}
