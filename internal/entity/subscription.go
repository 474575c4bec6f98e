package entity

import "time"

type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Active       bool      `json:"active"`
}

type SubscriptionInput struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}
