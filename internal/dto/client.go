package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
)

// ClientResponse defines the data returned for a client. The PIN hash never leaves the service.
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Alias     string    `json:"alias"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Alias:     c.Alias,
		CreatedAt: c.CreatedAt,
	}
}
