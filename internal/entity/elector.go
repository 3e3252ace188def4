package entity

import "time"

// Elector represents one validated registrant row for data transfer between layers.
type Elector struct {
	ID                  string    `json:"id"`
	AdminID             string    `json:"admin_id"`
	Email               string    `json:"email"`
	MatriculationNumber string    `json:"matriculation_number"`
	FullName            string    `json:"full_name"`
	Gender              string    `json:"gender"`
	Department          string    `json:"department"`
	CreatedAt           time.Time `json:"created_at"`
}
