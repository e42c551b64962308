package mapping

import (
	"database/sql"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/SscSPs/bank_ledger_sim/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
// History is stored in its own table, see ToModelInvestmentHistory.
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:    d.AccountID,
		OwnerID:      d.OwnerID,
		Kind:         string(d.Kind),
		BaseCurrency: string(d.BaseCurrency),
		Balance:      d.Balance,
		CreditLimit:  d.CreditLimit,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if !d.LastUpdateDate.IsZero() {
		m.LastUpdateDate = sql.NullTime{Time: d.LastUpdateDate, Valid: true}
	}
	return m
}

// ToDomainAccount converts a model Account and its history rows to a domain Account
func ToDomainAccount(m models.Account, history []models.InvestmentHistory) domain.Account {
	d := domain.Account{
		AccountID:    m.AccountID,
		OwnerID:      m.OwnerID,
		Kind:         domain.AccountKind(m.Kind),
		BaseCurrency: domain.Currency(m.BaseCurrency),
		Balance:      m.Balance,
		CreditLimit:  m.CreditLimit,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.LastUpdateDate.Valid {
		d.LastUpdateDate = domain.DateOf(m.LastUpdateDate.Time)
	}
	if len(history) > 0 {
		d.History = make([]domain.InvestmentHistory, len(history))
		for i, h := range history {
			d.History[i] = ToDomainInvestmentHistory(h)
		}
	}
	return d
}

// ToModelInvestmentHistory converts an account's history to rows.
func ToModelInvestmentHistory(accountID string, history []domain.InvestmentHistory) []models.InvestmentHistory {
	ms := make([]models.InvestmentHistory, len(history))
	for i, h := range history {
		ms[i] = models.InvestmentHistory{
			AccountID:     accountID,
			Date:          h.Date,
			DailyRate:     h.DailyRate,
			BalanceBefore: h.BalanceBefore,
			BalanceAfter:  h.BalanceAfter,
		}
	}
	return ms
}

func ToDomainInvestmentHistory(m models.InvestmentHistory) domain.InvestmentHistory {
	return domain.InvestmentHistory{
		Date:          domain.DateOf(m.Date),
		DailyRate:     m.DailyRate,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
	}
}
