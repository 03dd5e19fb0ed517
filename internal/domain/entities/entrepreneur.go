package entities

import "time"

// Entrepreneur posts project demands.
type Entrepreneur struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
}
