package entity

import (
	"github.com/google/uuid"
)

// db model
type Job struct {
	Id        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	Date      string    `json:"date" db:"date"`
	Info      string    `json:"info" db:"info"`
	Price     float64   `json:"price" db:"price"`
	Completed bool      `json:"completed" db:"completed"`
	Archived  bool      `json:"archived" db:"archived"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateJobInput struct {
	Id      uuid.UUID // assigned by the service
	Name    string    // given, natural key
	Email   string
	Phone   string
	Address string
	Date    string
	Info    string
	Price   float64
	// Completed and Archived default to false
	// CreatedAt sets automatically
}

// partial edit model; nil fields are left as is
type EditJobInput struct {
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	Date      *string
	Info      *string
	Price     *float64
	Completed *bool
	Archived  *bool
}

// controller model
type JobOutputModel struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Date      string  `json:"date"`
	Info      string  `json:"info"`
	Price     float64 `json:"price"`
	Completed bool    `json:"completed"`
	Archived  bool    `json:"archived"`
	CreatedAt string  `json:"createdAt"`
}
