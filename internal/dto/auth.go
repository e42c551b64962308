package dto

import "time"

// RegisterRequest defines the data needed to register a new client.
type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Alias string `json:"alias" binding:"required,max=100"`
	PIN   string `json:"pin" binding:"required,len=4,numeric"`
}

// LoginRequest defines the credentials a client signs in with.
type LoginRequest struct {
	Alias string `json:"alias" binding:"required"`
	PIN   string `json:"pin" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	ClientID  string    `json:"clientID"`
}
