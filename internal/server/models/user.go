// Package models holds the row types shared by repositories and services.
package models

import "time"

// User is a registered account. PasswordHash is the opaque salted PBKDF2
// string produced by auth.HashPassword; nothing outside the auth package
// interprets its contents.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
