package domain

import "errors"

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrBusNotFound      = errors.New("bus not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrInvalidSeat         = errors.New("invalid seat number")
	ErrSeatTaken           = errors.New("seat is already booked")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrForbidden           = errors.New("operation not allowed for this user")
	ErrScheduleHasBookings = errors.New("schedule has bookings on record")
	ErrRouteInUse          = errors.New("route is referenced by schedules")
	ErrBusInUse            = errors.New("bus is referenced by schedules")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
