package dto

import (
	"time"

	"github.com/stpnv0/BusBooker/internal/domain"
)

type RouteResponse struct {
	ID           string  `json:"id"`
	FromLocation string  `json:"from_location"`
	ToLocation   string  `json:"to_location"`
	DistanceKM   float64 `json:"distance_km"`
	CreatedAt    string  `json:"created_at"`
}

type BusResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats"`
	CreatedAt  string `json:"created_at"`
}

type ScheduleResponse struct {
	ID            string  `json:"id"`
	RouteID       string  `json:"route_id"`
	BusID         string  `json:"bus_id"`
	DepartureTime string  `json:"departure_time"`
	Price         float64 `json:"price"`
	Capacity      int     `json:"capacity"`
}

type ScheduleDetailsResponse struct {
	Schedule       ScheduleResponse `json:"schedule"`
	Route          RouteResponse    `json:"route"`
	Bus            BusResponse      `json:"bus"`
	AvailableSeats []int            `json:"available_seats"`
}

type AvailableSeatsResponse struct {
	ScheduleID     string `json:"schedule_id"`
	AvailableSeats []int  `json:"available_seats"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	ScheduleID  string  `json:"schedule_id"`
	UserID      string  `json:"user_id"`
	SeatNumber  int     `json:"seat_number"`
	Status      string  `json:"status"`
	BookedAt    string  `json:"booked_at"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRouteResponse(r *domain.Route) RouteResponse {
	return RouteResponse{
		ID:           r.ID,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		DistanceKM:   r.DistanceKM,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBusResponse(b *domain.Bus) BusResponse {
	return BusResponse{
		ID:         b.ID,
		Number:     b.Number,
		Name:       b.Name,
		TotalSeats: b.TotalSeats,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		RouteID:       s.RouteID,
		BusID:         s.BusID,
		DepartureTime: s.DepartureTime.Format(time.RFC3339),
		Price:         s.Price,
		Capacity:      s.Capacity,
	}
}

func ToScheduleDetailsResponse(d *domain.ScheduleDetails) ScheduleDetailsResponse {
	return ScheduleDetailsResponse{
		Schedule:       ToScheduleResponse(&d.Schedule),
		Route:          ToRouteResponse(&d.Route),
		Bus:            ToBusResponse(&d.Bus),
		AvailableSeats: d.AvailableSeats,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		ScheduleID: b.ScheduleID,
		UserID:     b.UserID,
		SeatNumber: b.SeatNumber,
		Status:     string(b.Status),
		BookedAt:   b.BookedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
