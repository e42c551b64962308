package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_sim/internal/models"
	"github.com/SscSPs/bank_ledger_sim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, owner_id, kind, base_currency, balance, credit_limit, last_update_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OwnerID,
		&m.Kind,
		&m.BaseCurrency,
		&m.Balance,
		&m.CreditLimit,
		&m.LastUpdateDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account together with any history it carries.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.AccountID,
		m.OwnerID,
		m.Kind,
		m.BaseCurrency,
		m.Balance,
		m.CreditLimit,
		m.LastUpdateDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return r.saveHistory(ctx, account)
}

// UpdateAccount writes the mutable state of an account. History rows are
// append-only, so entries already stored are left untouched.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET balance = $2, last_update_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, m.AccountID, m.Balance, m.LastUpdateDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return r.saveHistory(ctx, account)
}

func (r *PgxAccountRepository) saveHistory(ctx context.Context, account domain.Account) error {
	if len(account.History) == 0 {
		return nil
	}
	query := `
		INSERT INTO investment_history (account_id, history_date, daily_rate, balance_before, balance_after)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, history_date) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, h := range mapping.ToModelInvestmentHistory(account.AccountID, account.History) {
		batch.Queue(query, h.AccountID, h.Date, h.DailyRate, h.BalanceBefore, h.BalanceAfter)
	}
	if err := r.db(ctx).SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save investment history for account %s: %w", account.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.db(ctx).QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	accounts, err := r.withHistory(ctx, []models.Account{m})
	if err != nil {
		return nil, err
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 ORDER BY created_at, account_id;`
	return r.list(ctx, query, ownerID)
}

func (r *PgxAccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at, account_id;`
	return r.list(ctx, query)
}

func (r *PgxAccountRepository) LatestInvestmentUpdate(ctx context.Context) (time.Time, error) {
	query := `SELECT MAX(last_update_date) FROM accounts WHERE kind = $1;`
	var latest sql.NullTime
	if err := r.db(ctx).QueryRow(ctx, query, string(domain.KindInvestment)).Scan(&latest); err != nil {
		return time.Time{}, fmt.Errorf("failed to read latest investment update: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return domain.DateOf(latest.Time), nil
}

// FindAccountsByIDsForUpdate locks the rows in id order so concurrent
// transfers over the same pair cannot deadlock.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`
	accounts, err := r.list(ctx, query, accountIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		out[acc.AccountID] = acc
	}
	for _, id := range accountIDs {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return out, nil
}

func (r *PgxAccountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return r.withHistory(ctx, ms)
}

// withHistory loads the history of every investment account in ms with one query.
func (r *PgxAccountRepository) withHistory(ctx context.Context, ms []models.Account) ([]domain.Account, error) {
	var ids []string
	for _, m := range ms {
		if domain.AccountKind(m.Kind) == domain.KindInvestment {
			ids = append(ids, m.AccountID)
		}
	}

	byAccount := make(map[string][]models.InvestmentHistory, len(ids))
	if len(ids) > 0 {
		query := `
			SELECT account_id, history_date, daily_rate, balance_before, balance_after
			FROM investment_history
			WHERE account_id = ANY($1)
			ORDER BY account_id, history_date;
		`
		rows, err := r.db(ctx).Query(ctx, query, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to query investment history: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var h models.InvestmentHistory
			if err := rows.Scan(&h.AccountID, &h.Date, &h.DailyRate, &h.BalanceBefore, &h.BalanceAfter); err != nil {
				return nil, fmt.Errorf("failed to scan investment history row: %w", err)
			}
			byAccount[h.AccountID] = append(byAccount[h.AccountID], h)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating investment history rows: %w", err)
		}
	}

	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainAccount(m, byAccount[m.AccountID])
	}
	return out, nil
}
