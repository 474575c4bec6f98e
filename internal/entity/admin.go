package entity

import "time"

// AdminCredential is the stored login of the single admin identity.
type AdminCredential struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminSession is the response to a successful login.
type AdminSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
