package dto

import (
	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	"github.com/SscSPs/bank_ledger_sim/internal/utils"
)

// SummaryParams selects the currency a summary is expressed in.
type SummaryParams struct {
	Currency domain.Currency `form:"currency,default=USD" binding:"currency"`
}

// SummaryResponse is a client's position with display strings for each total.
type SummaryResponse struct {
	domain.ClientSummary
	FormattedAssets   string `json:"formattedAssets"`
	FormattedDebts    string `json:"formattedDebts"`
	FormattedNetWorth string `json:"formattedNetWorth"`
}

func ToSummaryResponse(s *domain.ClientSummary) SummaryResponse {
	symbol := s.Currency.Symbol()
	return SummaryResponse{
		ClientSummary:     *s,
		FormattedAssets:   utils.FormatWithSymbol(symbol, s.TotalAssets),
		FormattedDebts:    utils.FormatWithSymbol(symbol, s.TotalDebts),
		FormattedNetWorth: utils.FormatWithSymbol(symbol, s.NetWorth),
	}
}
