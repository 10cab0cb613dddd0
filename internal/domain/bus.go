package domain

import "time"

type Bus struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Name       string    `json:"name"`
	TotalSeats int       `json:"total_seats"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateBusInput struct {
	Number     string
	Name       string
	TotalSeats int
}
