package domain

import "time"

type Route struct {
	ID           string    `json:"id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	DistanceKM   float64   `json:"distance_km"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateRouteInput struct {
	FromLocation string
	ToLocation   string
	DistanceKM   float64
}
