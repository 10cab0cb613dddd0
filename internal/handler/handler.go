package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateRoute(ctx context.Context, input domain.CreateRouteInput) (*domain.Route, error)
	ListRoutes(ctx context.Context) ([]*domain.Route, error)
	DeleteRoute(ctx context.Context, id string) error
	CreateBus(ctx context.Context, input domain.CreateBusInput) (*domain.Bus, error)
	ListBuses(ctx context.Context) ([]*domain.Bus, error)
	DeleteBus(ctx context.Context, id string) error
}

type ScheduleSvc interface {
	Create(ctx context.Context, input domain.CreateScheduleInput) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	GetDetails(ctx context.Context, id string) (*domain.ScheduleDetails, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Book(ctx context.Context, userID, scheduleID string, seatNumber int) (*domain.Booking, error)
	Cancel(ctx context.Context, requesterID, bookingID string) error
	AvailableSeats(ctx context.Context, scheduleID string) ([]int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	catalogService  CatalogSvc
	scheduleService ScheduleSvc
	bookingService  BookingSvc
	userService     UserSvc
}

func NewHandler(catalogService CatalogSvc, scheduleService ScheduleSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		catalogService:  catalogService,
		scheduleService: scheduleService,
		bookingService:  bookingService,
		userService:     userService,
	}
}

// Routes

func (h *Handler) CreateRoute(c *ginext.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	route, err := h.catalogService.CreateRoute(c.Request.Context(), domain.CreateRouteInput{
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		DistanceKM:   req.DistanceKM,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRouteResponse(route))
}

func (h *Handler) ListRoutes(c *ginext.Context) {
	routes, err := h.catalogService.ListRoutes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, dto.ToRouteResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteRoute(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid route id"})
		return
	}

	if err := h.catalogService.DeleteRoute(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Buses

func (h *Handler) CreateBus(c *ginext.Context) {
	var req dto.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bus, err := h.catalogService.CreateBus(c.Request.Context(), domain.CreateBusInput{
		Number:     req.Number,
		Name:       req.Name,
		TotalSeats: req.TotalSeats,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusResponse(bus))
}

func (h *Handler) ListBuses(c *ginext.Context) {
	buses, err := h.catalogService.ListBuses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BusResponse, 0, len(buses))
	for _, b := range buses {
		resp = append(resp, dto.ToBusResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteBus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid bus id"})
		return
	}

	if err := h.catalogService.DeleteBus(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Schedules

func (h *Handler) CreateSchedule(c *ginext.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid departure_time format, expected RFC3339",
		})
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), domain.CreateScheduleInput{
		RouteID:       req.RouteID,
		BusID:         req.BusID,
		DepartureTime: departure,
		Price:         req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

func (h *Handler) ListSchedules(c *ginext.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ToScheduleResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSchedule(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	details, err := h.scheduleService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleDetailsResponse(details))
}

func (h *Handler) GetAvailableSeats(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	seats, err := h.bookingService.AvailableSeats(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailableSeatsResponse{
		ScheduleID:     id,
		AvailableSeats: seats,
	})
}

func (h *Handler) GetScheduleBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	bookings, err := h.bookingService.ListBySchedule(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteSchedule(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), req.UserID, req.ScheduleID, req.SeatNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), req.RequesterID, bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		IsAdmin:        req.IsAdmin,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRouteNotFound),
		errors.Is(err, domain.ErrBusNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSeatTaken),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrScheduleHasBookings),
		errors.Is(err, domain.ErrRouteInUse),
		errors.Is(err, domain.ErrBusInUse),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSeat),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
