package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/SscSPs/bank_ledger_sim/internal/core/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/handlers"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/SscSPs/bank_ledger_sim/internal/platform/config"
	"github.com/SscSPs/bank_ledger_sim/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "ledger-test",
		JWTExpiryDuration: time.Hour,
	}
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(), services.Dependencies{
		Rates:  domain.DefaultRateTable(),
		Clock:  services.NewSimulatedClock(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
		Market: services.NewMarketSimulator(services.NewSeededRandomSource(42)),
	})

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container))
}

func (s *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// signUp registers a client and logs in, returning the bearer token.
func (s *HandlersTestSuite) signUp(name, alias string) string {
	w := s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: name, Alias: alias, PIN: "1234"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Alias: alias, PIN: "1234"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var login dto.LoginResponse
	s.decode(w, &login)
	return login.Token
}

func (s *HandlersTestSuite) openAccount(token string, kind domain.AccountKind, currency domain.Currency, initial string) dto.AccountResponse {
	req := gin.H{"kind": kind, "currency": currency, "initialBalance": initial}
	if kind == domain.KindCredit {
		req["creditLimit"] = "1000"
	}
	w := s.do(http.MethodPost, "/api/v1/accounts", token, req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var acc dto.AccountResponse
	s.decode(w, &acc)
	return acc
}

func (s *HandlersTestSuite) balanceOf(token, accountID string) decimal.Decimal {
	w := s.do(http.MethodGet, "/api/v1/accounts/"+accountID, token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var acc dto.AccountResponse
	s.decode(w, &acc)
	return acc.Balance
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestRegisterAndLogin() {
	s.signUp("Ana", "ana.pay")

	w := s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "Other", Alias: "ANA.PAY", PIN: "0000"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "Short", Alias: "short", PIN: "12"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Alias: "ana.pay", PIN: "9999"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestAPIRequiresToken() {
	w := s.do(http.MethodGet, "/api/v1/accounts", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestDepositAndWithdraw() {
	token := s.signUp("Ana", "ana.pay")
	acc := s.openAccount(token, domain.KindSavings, domain.USD, "100")

	w := s.do(http.MethodPost, "/api/v1/accounts/"+acc.AccountID+"/deposit", token, gin.H{"amount": "50", "note": "salary"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var deposit dto.TransactionResponse
	s.decode(w, &deposit)
	s.Equal(domain.StatusSettled, deposit.Status)
	s.Equal(domain.Deposit, deposit.Type)

	w = s.do(http.MethodPost, "/api/v1/accounts/"+acc.AccountID+"/withdraw", token, gin.H{"amount": "500"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var failed dto.TransactionResponse
	s.decode(w, &failed)
	s.Equal(domain.StatusFailed, failed.Status)
	s.Contains(failed.Note, "insufficient funds")

	w = s.do(http.MethodPost, "/api/v1/accounts/"+acc.AccountID+"/deposit", token, gin.H{"amount": "-5"})
	s.Equal(http.StatusBadRequest, w.Code)

	s.True(decimal.NewFromInt(150).Equal(s.balanceOf(token, acc.AccountID)))

	w = s.do(http.MethodGet, "/api/v1/accounts/"+acc.AccountID+"/transactions", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListTransactionsResponse
	s.decode(w, &page)
	s.Require().Len(page.Transactions, 2)
	s.Equal(failed.TransactionID, page.Transactions[0].TransactionID)
	s.Equal(deposit.TransactionID, page.Transactions[1].TransactionID)
}

func (s *HandlersTestSuite) TestTransferConvertsCurrency() {
	token := s.signUp("Ana", "ana.pay")
	usd := s.openAccount(token, domain.KindSavings, domain.USD, "100")
	eur := s.openAccount(token, domain.KindSavings, domain.EUR, "0")

	w := s.do(http.MethodPost, "/api/v1/transfers", token, gin.H{
		"sourceAccountID": usd.AccountID,
		"targetAccountID": eur.AccountID,
		"amount":          "100",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var record dto.TransactionResponse
	s.decode(w, &record)
	s.Equal(domain.StatusSettled, record.Status)
	s.Equal(domain.USD, record.Currency)

	s.True(decimal.Zero.Equal(s.balanceOf(token, usd.AccountID)))
	s.True(decimal.RequireFromString("86.00").Equal(s.balanceOf(token, eur.AccountID)))

	w = s.do(http.MethodPost, "/api/v1/transfers", token, gin.H{
		"sourceAccountID": usd.AccountID,
		"targetAccountID": usd.AccountID,
		"amount":          "1",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestThirdPartyTransfer() {
	ana := s.signUp("Ana", "ana.pay")
	bob := s.signUp("Bob", "bob.pay")
	from := s.openAccount(ana, domain.KindSavings, domain.ARS, "5000")
	to := s.openAccount(bob, domain.KindSavings, domain.ARS, "0")
	s.openAccount(bob, domain.KindSavings, domain.USD, "0")

	w := s.do(http.MethodGet, "/api/v1/clients/bob.pay/accounts?currency=ARS", ana, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var compatible dto.ListPayeeAccountsResponse
	s.decode(w, &compatible)
	s.Require().Len(compatible.Accounts, 1)
	s.Equal(to.AccountID, compatible.Accounts[0].AccountID)

	body := gin.H{"sourceAccountID": from.AccountID, "targetAccountID": to.AccountID, "amount": "1200", "note": "dinner"}

	// A plain transfer needs access to both accounts.
	w = s.do(http.MethodPost, "/api/v1/transfers", ana, body)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/transfers/third-party", ana, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.True(decimal.NewFromInt(1200).Equal(s.balanceOf(bob, to.AccountID)))

	w = s.do(http.MethodGet, "/api/v1/accounts/"+to.AccountID, ana, nil)
	s.Equal(http.StatusForbidden, w.Code)
	w = s.do(http.MethodGet, "/api/v1/accounts/missing", ana, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestPayeeLookupHidesFunds() {
	eve := s.signUp("Eve", "eve.pay")
	victim := s.signUp("Victim", "victim.pay")
	s.openAccount(victim, domain.KindSavings, domain.USD, "987654.32")
	s.openAccount(victim, domain.KindCredit, domain.USD, "0")

	w := s.do(http.MethodGet, "/api/v1/clients/victim.pay/accounts?currency=USD", eve, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var raw struct {
		Accounts []map[string]any `json:"accounts"`
	}
	s.decode(w, &raw)
	s.Require().Len(raw.Accounts, 2)
	for _, acc := range raw.Accounts {
		s.NotContains(acc, "balance")
		s.NotContains(acc, "formattedBalance")
		s.NotContains(acc, "creditLimit")
		s.NotContains(acc, "ownerID")
		s.NotContains(acc["label"], "Limit")
	}
	s.NotContains(w.Body.String(), "987654")
	s.NotContains(w.Body.String(), "1,000")
}

func (s *HandlersTestSuite) TestCreateAccount_Validation() {
	token := s.signUp("Ana", "ana.pay")

	w := s.do(http.MethodPost, "/api/v1/accounts", token, gin.H{"kind": "SAVINGS", "currency": "GBP"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/accounts", token, gin.H{"kind": "CHECKING", "currency": "USD"})
	s.Equal(http.StatusBadRequest, w.Code)

	credit := s.openAccount(token, domain.KindCredit, domain.USD, "0")
	s.Require().NotNil(credit.CreditLimit)
	s.True(decimal.NewFromInt(1000).Equal(*credit.CreditLimit))
}

func (s *HandlersTestSuite) TestSummary() {
	token := s.signUp("Ana", "ana.pay")
	s.openAccount(token, domain.KindSavings, domain.USD, "100")
	credit := s.openAccount(token, domain.KindCredit, domain.USD, "0")
	w := s.do(http.MethodPost, "/api/v1/accounts/"+credit.AccountID+"/withdraw", token, gin.H{"amount": "40"})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/v1/summary?currency=USD", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var summary dto.SummaryResponse
	s.decode(w, &summary)
	s.True(decimal.NewFromInt(100).Equal(summary.TotalAssets))
	s.True(decimal.NewFromInt(40).Equal(summary.TotalDebts))
	s.True(decimal.NewFromInt(60).Equal(summary.NetWorth))
	s.Len(summary.Accounts, 2)

	w = s.do(http.MethodGet, "/api/v1/summary?currency=GBP", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCurrenciesAndConvert() {
	token := s.signUp("Ana", "ana.pay")

	w := s.do(http.MethodGet, "/api/v1/currencies", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListCurrenciesResponse
	s.decode(w, &list)
	s.Len(list.Currencies, 3)

	w = s.do(http.MethodGet, "/api/v1/rates/convert?from=USD&to=ARS&amount=2", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var quote dto.ConvertResponse
	s.decode(w, &quote)
	s.True(decimal.NewFromInt(2820).Equal(quote.ConvertedAmount))

	w = s.do(http.MethodGet, "/api/v1/rates/convert?from=USD&to=XXX&amount=2", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	w = s.do(http.MethodGet, "/api/v1/rates/convert?from=USD&to=EUR&amount=abc", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestAdvanceDayAndInvestmentReport() {
	token := s.signUp("Ana", "ana.pay")
	inv := s.openAccount(token, domain.KindInvestment, domain.USD, "1000")
	savings := s.openAccount(token, domain.KindSavings, domain.USD, "1000")

	w := s.do(http.MethodPost, "/api/v1/market/advance-day", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var day dto.AdvanceDayResponse
	s.decode(w, &day)
	s.Equal(1, day.Sweep.Updated)
	s.Equal(time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), day.Today.UTC())

	w = s.do(http.MethodGet, "/api/v1/accounts/"+inv.AccountID+"/investment", token, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var report domain.InvestmentReport
	s.decode(w, &report)
	s.Require().Len(report.History, 1)
	s.True(day.Sweep.Rate.Equal(report.History[0].DailyRate))

	w = s.do(http.MethodGet, "/api/v1/accounts/"+savings.AccountID+"/investment", token, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}
