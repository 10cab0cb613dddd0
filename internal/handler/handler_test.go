package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/BusBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCatalogSvc, *hmocks.MockScheduleSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	scheduleSvc := hmocks.NewMockScheduleSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(catalogSvc, scheduleSvc, bookingSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/routes", h.CreateRoute)
		api.GET("/routes", h.ListRoutes)
		api.DELETE("/routes/:id", h.DeleteRoute)
		api.POST("/buses", h.CreateBus)
		api.GET("/buses", h.ListBuses)
		api.DELETE("/buses/:id", h.DeleteBus)
		api.POST("/schedules", h.CreateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.GET("/schedules/:id/seats", h.GetAvailableSeats)
		api.GET("/schedules/:id/bookings", h.GetScheduleBookings)
		api.DELETE("/schedules/:id", h.DeleteSchedule)
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return catalogSvc, scheduleSvc, bookingSvc, userSvc, r
}

// --- Routes ---

func TestHandler_CreateRoute_Success(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	route := &domain.Route{
		ID:           uuid.New().String(),
		FromLocation: "Moscow",
		ToLocation:   "Kazan",
		DistanceKM:   820,
		CreatedAt:    time.Now(),
	}
	catalogSvc.EXPECT().CreateRoute(mock.Anything, mock.Anything).Return(route, nil)

	body, _ := json.Marshal(dto.CreateRouteRequest{
		FromLocation: "Moscow",
		ToLocation:   "Kazan",
		DistanceKM:   820,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/routes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Moscow", resp.FromLocation)
}

func TestHandler_CreateRoute_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"from_location":"Moscow"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/routes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteRoute_InUse(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	routeID := uuid.New().String()
	catalogSvc.EXPECT().DeleteRoute(mock.Anything, routeID).Return(domain.ErrRouteInUse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/routes/"+routeID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Buses ---

func TestHandler_CreateBus_Success(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	bus := &domain.Bus{
		ID:         uuid.New().String(),
		Number:     "A123BC",
		Name:       "Volvo 9700",
		TotalSeats: 49,
		CreatedAt:  time.Now(),
	}
	catalogSvc.EXPECT().CreateBus(mock.Anything, mock.Anything).Return(bus, nil)

	body, _ := json.Marshal(dto.CreateBusRequest{
		Number:     "A123BC",
		Name:       "Volvo 9700",
		TotalSeats: 49,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/buses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 49, resp.TotalSeats)
}

func TestHandler_CreateBus_NoSeats(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"number":"A123BC","total_seats":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/buses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Schedules ---

func TestHandler_CreateSchedule_Success(t *testing.T) {
	_, scheduleSvc, _, _, r := setupRouter(t)

	departure := time.Now().Add(48 * time.Hour)
	schedule := &domain.Schedule{
		ID:            uuid.New().String(),
		RouteID:       uuid.New().String(),
		BusID:         uuid.New().String(),
		DepartureTime: departure,
		Price:         499.50,
		Capacity:      40,
	}
	scheduleSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(schedule, nil)

	body, _ := json.Marshal(dto.CreateScheduleRequest{
		RouteID:       schedule.RouteID,
		BusID:         schedule.BusID,
		DepartureTime: departure.Format(time.RFC3339),
		Price:         499.50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.Capacity)
}

func TestHandler_CreateSchedule_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"route_id":"` + uuid.New().String() + `","bus_id":"` + uuid.New().String() + `","departure_time":"not-a-date","price":100}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSchedule_Success(t *testing.T) {
	_, scheduleSvc, _, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	details := &domain.ScheduleDetails{
		Schedule:       domain.Schedule{ID: scheduleID, DepartureTime: time.Now(), Capacity: 4},
		Route:          domain.Route{ID: uuid.New().String(), FromLocation: "Moscow", ToLocation: "Kazan"},
		Bus:            domain.Bus{ID: uuid.New().String(), Number: "A123BC", TotalSeats: 4},
		AvailableSeats: []int{2, 3},
	}

	scheduleSvc.EXPECT().GetDetails(mock.Anything, scheduleID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+scheduleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ScheduleDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{2, 3}, resp.AvailableSeats)
}

func TestHandler_GetSchedule_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSchedule_NotFound(t *testing.T) {
	_, scheduleSvc, _, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	scheduleSvc.EXPECT().GetDetails(mock.Anything, scheduleID).Return(nil, domain.ErrScheduleNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+scheduleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetAvailableSeats_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	bookingSvc.EXPECT().AvailableSeats(mock.Anything, scheduleID).Return([]int{1, 3, 5}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+scheduleID+"/seats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailableSeatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 3, 5}, resp.AvailableSeats)
	assert.Equal(t, scheduleID, resp.ScheduleID)
}

func TestHandler_GetScheduleBookings_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ScheduleID: scheduleID, UserID: "u1", SeatNumber: 1, Status: domain.BookingStatusConfirmed, BookedAt: time.Now()},
		{ID: "b2", ScheduleID: scheduleID, UserID: "u2", SeatNumber: 2, Status: domain.BookingStatusCancelled, BookedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListBySchedule(mock.Anything, scheduleID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+scheduleID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_DeleteSchedule_HasBookings(t *testing.T) {
	_, scheduleSvc, _, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	scheduleSvc.EXPECT().Delete(mock.Anything, scheduleID).Return(domain.ErrScheduleHasBookings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/schedules/"+scheduleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	userID := uuid.New().String()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ScheduleID: scheduleID,
		UserID:     userID,
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
		BookedAt:   time.Now(),
	}

	bookingSvc.EXPECT().Book(mock.Anything, userID, scheduleID, 7).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		UserID:     userID,
		ScheduleID: scheduleID,
		SeatNumber: 7,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 7, resp.SeatNumber)
}

func TestHandler_CreateBooking_SeatTaken(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, scheduleID, 7).Return(nil, domain.ErrSeatTaken)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		UserID:     userID,
		ScheduleID: scheduleID,
		SeatNumber: 7,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_InvalidSeat(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	userID := uuid.New().String()

	bookingSvc.EXPECT().Book(mock.Anything, userID, scheduleID, 99).Return(nil, domain.ErrInvalidSeat)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		UserID:     userID,
		ScheduleID: scheduleID,
		SeatNumber: 99,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SeatZeroRejectedByBinding(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","schedule_id":"` + uuid.New().String() + `","seat_number":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	requesterID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, requesterID, bookingID).Return(nil)

	body, _ := json.Marshal(dto.CancelBookingRequest{RequesterID: requesterID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"requester_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bad-id/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	requesterID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, requesterID, bookingID).Return(domain.ErrAlreadyCancelled)

	body, _ := json.Marshal(dto.CancelBookingRequest{RequesterID: requesterID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	requesterID := uuid.New().String()

	bookingSvc.EXPECT().Cancel(mock.Anything, requesterID, bookingID).Return(domain.ErrForbidden)

	body, _ := json.Marshal(dto.CancelBookingRequest{RequesterID: requesterID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, _, bookingSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", ScheduleID: "s1", UserID: userID, SeatNumber: 3, Status: domain.BookingStatusConfirmed, BookedAt: time.Now()},
	}

	bookingSvc.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, scheduleSvc, _, _, r := setupRouter(t)

	scheduleID := uuid.New().String()
	scheduleSvc.EXPECT().GetDetails(mock.Anything, scheduleID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+scheduleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
