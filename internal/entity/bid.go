package entity

import (
	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	Amount       float64   `json:"amount" db:"amount"`
	StartDate    string    `json:"startDate" db:"start_date"`
	Duration     string    `json:"duration" db:"duration"`
	Notes        string    `json:"notes" db:"notes"`
	Status       string    `json:"status" db:"status"`
	AcceptedDate string    `json:"acceptedDate" db:"accepted_date"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateBidInput struct {
	Name      string // given
	Email     string // given
	Phone     string // given
	Address   string // given
	Amount    float64
	StartDate string
	Duration  string
	Notes     string
	Status    string // should be set: "pending"
	// Id is assigned by the service
	// CreatedAt sets automatically
}

// partial edit model; nil fields are left as is
type EditBidInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	Amount    *float64
	StartDate *string
	Duration  *string
	Notes     *string
}

// controller model
type BidOutputModel struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Amount       float64 `json:"amount"`
	StartDate    string  `json:"startDate"`
	Duration     string  `json:"duration"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status"`
	AcceptedDate string  `json:"acceptedDate,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}
