package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model. Snapshot holds point-in-time copies of the shared jobs,
// so later edits to a job never leak into an already issued link.
type ShareLink struct {
	Id        uuid.UUID `json:"id" db:"id"`
	Day       string    `json:"day" db:"day"` // set for day-bucketed shares
	Snapshot  []Job     `json:"snapshot" db:"snapshot"`
	Comment   string    `json:"comment" db:"comment"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// controller model for the public view
type ShareOutputModel struct {
	Id        string           `json:"id"`
	Day       string           `json:"day,omitempty"`
	Jobs      []JobOutputModel `json:"jobs"`
	Comment   string           `json:"comment"`
	ExpiresAt string           `json:"expiresAt"`
}
