package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/core/services"
	"github.com/SscSPs/bank_ledger_sim/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	clock   *services.SimulatedClock
	service portssvc.AccountSvcFacade
	ledger  portssvc.LedgerSvcFacade
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.repos = memory.NewRepositoryProvider()
	s.clock = services.NewSimulatedClock(simStart)
	access := services.NewAccessController()
	s.service = services.NewAccountService(s.repos,
		services.WithAccountAccessController(access),
		services.WithClock(s.clock))
	s.ledger = services.NewLedgerService(s.repos, domain.DefaultRateTable(),
		services.WithLedgerAccessController(access))
}

func (s *AccountServiceTestSuite) TestCreateAccounts_OwnedByCaller() {
	ctx := asClient(alice)

	savings, err := s.service.CreateSavingsAccount(ctx, domain.USD, dec("10"))
	s.Require().NoError(err)
	s.Equal(alice, savings.OwnerID)
	s.Equal(domain.KindSavings, savings.Kind)

	credit, err := s.service.CreateCreditAccount(ctx, domain.ARS, decimal.Zero, dec("5000"))
	s.Require().NoError(err)
	s.True(dec("5000").Equal(credit.CreditLimit))

	s.clock.AdvanceOneDay()
	inv, err := s.service.CreateInvestmentAccount(ctx, domain.EUR, dec("100"))
	s.Require().NoError(err)
	s.Equal(s.clock.Today(), inv.LastUpdateDate)

	accounts, err := s.service.ListAccountsOfClient(ctx, alice)
	s.Require().NoError(err)
	s.Len(accounts, 3)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Errors() {
	_, err := s.service.CreateSavingsAccount(context.Background(), domain.USD, decimal.Zero)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.CreateSavingsAccount(asClient(alice), domain.Currency("BTC"), decimal.Zero)
	s.ErrorIs(err, apperrors.ErrInvalidArgument)

	_, err = s.service.CreateCreditAccount(asClient(alice), domain.USD, decimal.Zero, dec("-1"))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *AccountServiceTestSuite) TestGetAccount_AccessChecked() {
	acc, err := s.service.CreateSavingsAccount(asClient(alice), domain.USD, decimal.Zero)
	s.Require().NoError(err)

	got, err := s.service.GetAccount(asClient(alice), acc.AccountID)
	s.Require().NoError(err)
	s.Equal(acc.AccountID, got.AccountID)

	_, err = s.service.GetAccount(asClient(bob), acc.AccountID)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.ListAccountsOfClient(asClient(bob), alice)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.GetAccount(asClient(alice), "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestListTransactions_NewestFirst() {
	ctx := asClient(alice)
	acc, err := s.service.CreateSavingsAccount(ctx, domain.USD, decimal.Zero)
	s.Require().NoError(err)

	first, err := s.ledger.Deposit(ctx, acc.AccountID, dec("10"), "first")
	s.Require().NoError(err)
	second, err := s.ledger.Withdraw(ctx, acc.AccountID, dec("3"), "second")
	s.Require().NoError(err)

	txs, next, err := s.service.ListTransactions(ctx, acc.AccountID, 0, nil)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(txs, 2)
	s.Equal(second.TransactionID, txs[0].TransactionID)
	s.Equal(first.TransactionID, txs[1].TransactionID)

	_, _, err = s.service.ListTransactions(asClient(bob), acc.AccountID, 0, nil)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AccountServiceTestSuite) TestFindCompatibleAccountsByAlias() {
	s.Require().NoError(s.repos.ClientRepo.SaveClient(context.Background(), domain.Client{ClientID: bob, Name: "Bob", Alias: "bob.pay"}))
	ars, err := s.service.CreateSavingsAccount(asClient(bob), domain.ARS, decimal.Zero)
	s.Require().NoError(err)
	_, err = s.service.CreateSavingsAccount(asClient(bob), domain.USD, decimal.Zero)
	s.Require().NoError(err)

	found, err := s.service.FindCompatibleAccountsByAlias(asClient(alice), "bob.pay", domain.ARS)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(ars.AccountID, found[0].AccountID)

	found, err = s.service.FindCompatibleAccountsByAlias(asClient(alice), "bob.pay", domain.EUR)
	s.Require().NoError(err)
	s.Empty(found)

	_, err = s.service.FindCompatibleAccountsByAlias(asClient(alice), "nobody", domain.ARS)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.FindCompatibleAccountsByAlias(asClient(alice), "bob.pay", domain.Currency("XYZ"))
	s.ErrorIs(err, apperrors.ErrValidation)
}
