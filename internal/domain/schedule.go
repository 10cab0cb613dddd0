package domain

import "time"

type Schedule struct {
	ID            string    `json:"id"`
	RouteID       string    `json:"route_id"`
	BusID         string    `json:"bus_id"`
	DepartureTime time.Time `json:"departure_time"`
	Price         float64   `json:"price"`
	// Capacity is the seat count of the assigned bus. Seats are not stored
	// as rows: a seat exists iff its number is in [1, Capacity].
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ScheduleDetails struct {
	Schedule       Schedule `json:"schedule"`
	Route          Route    `json:"route"`
	Bus            Bus      `json:"bus"`
	AvailableSeats []int    `json:"available_seats"`
}

type CreateScheduleInput struct {
	RouteID       string
	BusID         string
	DepartureTime time.Time
	Price         float64
}

// AvailableSeats returns the ascending complement of taken within
// [1, capacity]. Seat numbers outside the capacity range are ignored, so the
// result never exposes seats a smaller bus does not have.
func AvailableSeats(capacity int, taken []int) []int {
	held := make(map[int]struct{}, len(taken))
	for _, n := range taken {
		held[n] = struct{}{}
	}

	free := make([]int, 0, capacity)
	for n := 1; n <= capacity; n++ {
		if _, ok := held[n]; !ok {
			free = append(free, n)
		}
	}
	return free
}
