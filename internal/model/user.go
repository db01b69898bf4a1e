package model

// User is the identity extracted from a successful login, persisted
// alongside the bearer token and rebuilt on every session check.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
