package models

import "time"

// Subscriber is a newsletter signup. Email is unique.
type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt time.Time
}
