package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo portsrepo.RepositoryProvider
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewRepositoryProvider()
}

func (s *MemoryRepositoryTestSuite) newSavings(owner string, balance string) domain.Account {
	acc, err := domain.NewSavingsAccount(owner, domain.USD, decimal.RequireFromString(balance))
	s.Require().NoError(err)
	s.Require().NoError(s.repo.AccountRepo.SaveAccount(s.ctx, *acc))
	return *acc
}

func (s *MemoryRepositoryTestSuite) TestAccounts_ReturnCopies() {
	acc := s.newSavings("client-1", "10")

	found, err := s.repo.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	found.Balance = decimal.NewFromInt(999)

	again, err := s.repo.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(10).Equal(again.Balance))

	found.Touch("client-1", time.Now())
	s.Require().NoError(s.repo.AccountRepo.UpdateAccount(s.ctx, *found))
	again, _ = s.repo.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.True(decimal.NewFromInt(999).Equal(again.Balance))
}

func (s *MemoryRepositoryTestSuite) TestAccounts_NotFoundAndDuplicate() {
	_, err := s.repo.AccountRepo.FindAccountByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)

	acc := s.newSavings("client-1", "0")
	s.ErrorIs(s.repo.AccountRepo.SaveAccount(s.ctx, acc), apperrors.ErrDuplicate)

	_, err = s.repo.AccountRepo.FindAccountsByIDsForUpdate(s.ctx, []string{acc.AccountID, "missing"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	missing, _ := domain.NewSavingsAccount("client-1", domain.USD, decimal.Zero)
	s.ErrorIs(s.repo.AccountRepo.UpdateAccount(s.ctx, *missing), apperrors.ErrNotFound)
}

func (s *MemoryRepositoryTestSuite) TestAccounts_ListByOwnerAndAll() {
	a := s.newSavings("client-1", "1")
	s.newSavings("client-2", "2")
	c := s.newSavings("client-1", "3")

	owned, err := s.repo.AccountRepo.ListAccountsByOwner(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Require().Len(owned, 2)
	s.Equal(a.AccountID, owned[0].AccountID)
	s.Equal(c.AccountID, owned[1].AccountID)

	all, err := s.repo.AccountRepo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	none, err := s.repo.AccountRepo.ListAccountsByOwner(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *MemoryRepositoryTestSuite) TestTransactions_IndexedUnderEveryAccount() {
	src := s.newSavings("client-1", "100")
	dst := s.newSavings("client-2", "0")

	deposit := domain.NewDepositTransaction(&src, decimal.NewFromInt(5), domain.USD, domain.StatusSettled, "")
	transfer := domain.NewTransferTransaction(&src, &dst, decimal.NewFromInt(5), domain.USD, domain.StatusSettled, "")
	s.Require().NoError(s.repo.TransactionRepo.SaveTransaction(s.ctx, deposit))
	s.Require().NoError(s.repo.TransactionRepo.SaveTransaction(s.ctx, transfer))

	srcTxs, next, err := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, src.AccountID, 0, nil)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(srcTxs, 2)
	s.Equal(transfer.TransactionID, srcTxs[0].TransactionID, "newest first")
	s.Equal(deposit.TransactionID, srcTxs[1].TransactionID)

	dstTxs, _, err := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, dst.AccountID, 0, nil)
	s.Require().NoError(err)
	s.Require().Len(dstTxs, 1)
	s.Equal(transfer.TransactionID, dstTxs[0].TransactionID)

	found, err := s.repo.TransactionRepo.FindTransactionByID(s.ctx, deposit.TransactionID)
	s.Require().NoError(err)
	s.Equal(domain.Deposit, found.Type)
}

func (s *MemoryRepositoryTestSuite) TestTransactions_Pagination() {
	acc := s.newSavings("client-1", "0")
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		tx := domain.NewDepositTransaction(&acc, decimal.NewFromInt(int64(i+1)), domain.USD, domain.StatusSettled, "")
		s.Require().NoError(s.repo.TransactionRepo.SaveTransaction(s.ctx, tx))
		ids = append(ids, tx.TransactionID)
	}

	page1, next, err := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, nil)
	s.Require().NoError(err)
	s.Require().NotNil(next)
	s.Equal([]string{ids[4], ids[3]}, txIDs(page1))

	page2, next, err := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, next)
	s.Require().NoError(err)
	s.Require().NotNil(next)
	s.Equal([]string{ids[2], ids[1]}, txIDs(page2))

	page3, next, err := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, next)
	s.Require().NoError(err)
	s.Nil(next)
	s.Equal([]string{ids[0]}, txIDs(page3))

	bad := "%%%"
	_, _, err = s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, acc.AccountID, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *MemoryRepositoryTestSuite) TestClients_AliasIsUnique() {
	c := domain.Client{ClientID: "c1", Name: "Ana", Alias: "ana.pay"}
	s.Require().NoError(s.repo.ClientRepo.SaveClient(s.ctx, c))

	dup := domain.Client{ClientID: "c2", Name: "Other", Alias: " ANA.PAY "}
	s.ErrorIs(s.repo.ClientRepo.SaveClient(s.ctx, dup), apperrors.ErrDuplicate)

	found, err := s.repo.ClientRepo.FindClientByAlias(s.ctx, "Ana.Pay")
	s.Require().NoError(err)
	s.Equal("c1", found.ClientID)

	_, err = s.repo.ClientRepo.FindClientByID(s.ctx, "c2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemoryRepositoryTestSuite) TestWithTransaction_RollsBackEveryWrite() {
	src := s.newSavings("client-1", "100")
	boom := errors.New("boom")

	err := s.repo.TxManager.WithTransaction(s.ctx, func(ctx context.Context) error {
		src.Balance = decimal.NewFromInt(40)
		s.Require().NoError(s.repo.AccountRepo.UpdateAccount(ctx, src))

		created, _ := domain.NewSavingsAccount("client-1", domain.USD, decimal.Zero)
		s.Require().NoError(s.repo.AccountRepo.SaveAccount(ctx, *created))

		tx := domain.NewWithdrawTransaction(&src, decimal.NewFromInt(60), domain.USD, domain.StatusSettled, "")
		s.Require().NoError(s.repo.TransactionRepo.SaveTransaction(ctx, tx))

		s.Require().NoError(s.repo.ClientRepo.SaveClient(ctx, domain.Client{ClientID: "c9", Alias: "late"}))
		return boom
	})
	s.ErrorIs(err, boom)

	after, err := s.repo.AccountRepo.FindAccountByID(s.ctx, src.AccountID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(after.Balance))

	all, _ := s.repo.AccountRepo.FindAll(s.ctx)
	s.Len(all, 1)

	txs, _, _ := s.repo.TransactionRepo.ListTransactionsByAccountID(s.ctx, src.AccountID, 0, nil)
	s.Empty(txs)

	_, err = s.repo.ClientRepo.FindClientByAlias(s.ctx, "late")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemoryRepositoryTestSuite) TestWithTransaction_CommitsOnSuccess() {
	src := s.newSavings("client-1", "100")

	err := s.repo.TxManager.WithTransaction(s.ctx, func(ctx context.Context) error {
		src.Balance = decimal.NewFromInt(70)
		return s.repo.AccountRepo.UpdateAccount(ctx, src)
	})
	s.Require().NoError(err)

	after, _ := s.repo.AccountRepo.FindAccountByID(s.ctx, src.AccountID)
	s.True(decimal.NewFromInt(70).Equal(after.Balance))
}

func txIDs(txs []domain.Transaction) []string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.TransactionID
	}
	return ids
}
