// Package models defines server-side data models persisted in the database.
package models

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordDigest string `json:"-"`
	Admin          bool   `json:"admin"`
}
