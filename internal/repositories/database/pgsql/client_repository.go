package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_sim/internal/models"
	"github.com/SscSPs/bank_ledger_sim/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, name, alias, pin_hash, created_at, created_by, last_updated_at, last_updated_by`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient inserts a client. Aliases are unique regardless of case.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ClientID, m.Name, m.Alias, m.PINHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: alias '%s' is already taken", apperrors.ErrDuplicate, m.Alias)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return r.findOne(ctx, query, clientID, "client "+clientID)
}

func (r *PgxClientRepository) FindClientByAlias(ctx context.Context, alias string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE lower(alias) = lower(trim($1));`
	return r.findOne(ctx, query, alias, fmt.Sprintf("client with alias '%s'", alias))
}

func (r *PgxClientRepository) findOne(ctx context.Context, query, arg, what string) (*domain.Client, error) {
	var m models.Client
	err := r.db(ctx).QueryRow(ctx, query, arg).Scan(
		&m.ClientID,
		&m.Name,
		&m.Alias,
		&m.PINHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
		}
		return nil, fmt.Errorf("failed to find %s: %w", what, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}
