package domain

// Client is a bank customer. The alias is the public handle other clients use
// to find compatible accounts for third-party transfers.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Alias    string `json:"alias"` // Unique
	PINHash  string `json:"-"`
	AuditFields
}
