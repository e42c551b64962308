package pgsql

import (
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		TxManager:       newTxManager(dbPool),
	}
}
