package models

// User is the single admin identity of the association site.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
