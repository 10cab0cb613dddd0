package dto

type CreateRouteRequest struct {
	FromLocation string  `json:"from_location" binding:"required"`
	ToLocation   string  `json:"to_location" binding:"required"`
	DistanceKM   float64 `json:"distance_km" binding:"required,gt=0"`
}

type CreateBusRequest struct {
	Number     string `json:"number" binding:"required"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats" binding:"required,gt=0"`
}

type CreateScheduleRequest struct {
	RouteID       string  `json:"route_id" binding:"required,uuid"`
	BusID         string  `json:"bus_id" binding:"required,uuid"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
}

type CreateBookingRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	ScheduleID string `json:"schedule_id" binding:"required,uuid"`
	SeatNumber int    `json:"seat_number" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	RequesterID string `json:"requester_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
