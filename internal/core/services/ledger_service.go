package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	txManager       portsrepo.TransactionManager
	rates           *domain.RateTable
	locker          *AccountLocker
	publisher       portssvc.TransactionEventPublisher
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerAccessController sets who may move money out of which accounts.
func WithLedgerAccessController(ac portssvc.AccessController) LedgerOption {
	return func(s *ledgerService) {
		s.AccessController = ac
	}
}

// WithEventPublisher announces every saved record.
func WithEventPublisher(p portssvc.TransactionEventPublisher) LedgerOption {
	return func(s *ledgerService) {
		s.publisher = p
	}
}

// WithAccountLocker shares a locker with other balance-mutating services.
func WithAccountLocker(l *AccountLocker) LedgerOption {
	return func(s *ledgerService) {
		s.locker = l
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repos portsrepo.RepositoryProvider, rates *domain.RateTable, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
		txManager:       repos.TxManager,
		rates:           rates,
		locker:          NewAccountLocker(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	target, err := s.accountRepo.FindAccountByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, target); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrInvalidAmount)
	}

	record, err := s.withAccountLocks(func() (*domain.Transaction, error) {
		var record domain.Transaction
		err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			locked, err := s.lockAccounts(ctx, targetID)
			if err != nil {
				return err
			}
			acc := locked[targetID]
			if err := acc.Credit(amount); err != nil {
				return err
			}
			if err := s.persist(ctx, &acc); err != nil {
				return err
			}
			record = domain.NewDepositTransaction(&acc, amount, acc.BaseCurrency, domain.StatusSettled, note)
			return s.transactionRepo.SaveTransaction(ctx, record)
		})
		if err != nil {
			record = domain.NewDepositTransaction(target, amount, target.BaseCurrency, domain.StatusFailed, failureNote(err))
		}
		return s.finish(ctx, record, err)
	}, targetID)

	return s.announce(ctx, record, err)
}

func (s *ledgerService) Withdraw(ctx context.Context, sourceID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	source, err := s.accountRepo.FindAccountByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, source); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrInvalidAmount)
	}

	record, err := s.withAccountLocks(func() (*domain.Transaction, error) {
		var record domain.Transaction
		err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			locked, err := s.lockAccounts(ctx, sourceID)
			if err != nil {
				return err
			}
			acc := locked[sourceID]
			if err := acc.Debit(amount); err != nil {
				return err
			}
			if err := s.persist(ctx, &acc); err != nil {
				return err
			}
			record = domain.NewWithdrawTransaction(&acc, amount, acc.BaseCurrency, domain.StatusSettled, note)
			return s.transactionRepo.SaveTransaction(ctx, record)
		})
		if err != nil {
			record = domain.NewWithdrawTransaction(source, amount, source.BaseCurrency, domain.StatusFailed, failureNote(err))
		}
		return s.finish(ctx, record, err)
	}, sourceID)

	return s.announce(ctx, record, err)
}

func (s *ledgerService) Transfer(ctx context.Context, sourceID, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	source, target, err := s.loadPair(ctx, sourceID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, source); err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, target); err != nil {
		return nil, err
	}
	if err := validateTransfer(source, target, amount); err != nil {
		return nil, err
	}

	return s.transfer(ctx, source, target, amount, note)
}

func (s *ledgerService) TransferToThirdParty(ctx context.Context, sourceID, targetID string, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	source, target, err := s.loadPair(ctx, sourceID, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeAccount(ctx, source); err != nil {
		return nil, err
	}
	if err := validateTransfer(source, target, amount); err != nil {
		return nil, err
	}
	if source.BaseCurrency != target.BaseCurrency {
		return nil, fmt.Errorf("%w: third-party transfers need matching currencies (%s -> %s)",
			apperrors.ErrCurrencyMismatch, source.BaseCurrency, target.BaseCurrency)
	}

	return s.transfer(ctx, source, target, amount, note)
}

// transfer debits source and credits target in one unit of work. The credit
// amount is converted before anything changes, so a missing rate leaves both
// balances untouched.
func (s *ledgerService) transfer(ctx context.Context, source, target *domain.Account, amount decimal.Decimal, note string) (*domain.Transaction, error) {
	record, err := s.withAccountLocks(func() (*domain.Transaction, error) {
		var record domain.Transaction
		err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
			locked, err := s.lockAccounts(ctx, source.AccountID, target.AccountID)
			if err != nil {
				return err
			}
			src, dst := locked[source.AccountID], locked[target.AccountID]

			credit, err := s.rates.Convert(amount, src.BaseCurrency, dst.BaseCurrency)
			if err != nil {
				return err
			}
			if err := src.Debit(amount); err != nil {
				return err
			}
			if err := dst.Credit(credit); err != nil {
				return err
			}
			if err := s.persist(ctx, &src); err != nil {
				return err
			}
			if err := s.persist(ctx, &dst); err != nil {
				return err
			}

			record = domain.NewTransferTransaction(&src, &dst, amount, src.BaseCurrency, domain.StatusSettled, note)
			return s.transactionRepo.SaveTransaction(ctx, record)
		})
		if err != nil {
			record = domain.NewTransferTransaction(source, target, amount, source.BaseCurrency, domain.StatusFailed, failureNote(err))
		}
		return s.finish(ctx, record, err)
	}, source.AccountID, target.AccountID)

	return s.announce(ctx, record, err)
}

func validateTransfer(source, target *domain.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrInvalidAmount)
	}
	if source.SameAs(target) {
		return apperrors.ErrSameAccount
	}
	return nil
}

func (s *ledgerService) loadPair(ctx context.Context, sourceID, targetID string) (*domain.Account, *domain.Account, error) {
	source, err := s.accountRepo.FindAccountByID(ctx, sourceID)
	if err != nil {
		return nil, nil, err
	}
	target, err := s.accountRepo.FindAccountByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

// lockAccounts rereads the accounts inside the unit of work so the mutation
// starts from the latest stored balances.
func (s *ledgerService) lockAccounts(ctx context.Context, ids ...string) (map[string]domain.Account, error) {
	locked, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	return locked, nil
}

func (s *ledgerService) persist(ctx context.Context, acc *domain.Account) error {
	acc.Touch(s.CallerID(ctx), time.Now().UTC())
	if err := s.accountRepo.UpdateAccount(ctx, *acc); err != nil {
		return fmt.Errorf("failed to update account %s: %w", acc.AccountID, err)
	}
	return nil
}

// withAccountLocks runs fn while holding the locks of the given accounts.
func (s *ledgerService) withAccountLocks(fn func() (*domain.Transaction, error), accountIDs ...string) (*domain.Transaction, error) {
	unlock := s.locker.Lock(accountIDs...)
	defer unlock()
	return fn()
}

// finish stores the FAILED record when the mutation did not go through.
func (s *ledgerService) finish(ctx context.Context, record domain.Transaction, mutationErr error) (*domain.Transaction, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("transaction_id", record.TransactionID),
		slog.String("type", string(record.Type)),
	)

	if mutationErr != nil {
		logger.Warn("Ledger operation failed", slog.String("error", mutationErr.Error()))
		if err := s.transactionRepo.SaveTransaction(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to save failed transaction record")
			return nil, fmt.Errorf("failed to record transaction: %w", err)
		}
	} else {
		logger.Info("Ledger operation settled", slog.String("amount", record.Amount.String()))
	}
	return &record, nil
}

// announce publishes a saved record once the account locks are released.
func (s *ledgerService) announce(ctx context.Context, record *domain.Transaction, err error) (*domain.Transaction, error) {
	if err != nil {
		return nil, err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishTransactionRecorded(ctx, *record); err != nil {
			s.LogError(ctx, err, "Failed to publish transaction event", slog.String("transaction_id", record.TransactionID))
		}
	}
	return record, nil
}

func failureNote(err error) string {
	return "Error: " + err.Error()
}
