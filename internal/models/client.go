package models

// Client is a row of the clients table.
type Client struct {
	ClientID string `db:"client_id"`
	Name     string `db:"name"`
	Alias    string `db:"alias"`
	PINHash  string `db:"pin_hash"`
	AuditFields
}
