package models

import "time"

// ChatMessage is one user turn and the model reply it produced.
type ChatMessage struct {
	ID        string
	UserID    string
	Message   string
	Response  string
	Timestamp time.Time
}
