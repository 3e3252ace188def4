package entity

import "time"

// Admin represents an upload owner for data transfer between layers.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
