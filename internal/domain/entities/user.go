package entities

import "time"

// User is the account behind an entrepreneur or a student group.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	UserType     string    `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}
