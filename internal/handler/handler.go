package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type CategorySvc interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

type RideSvc interface {
	Cancel(ctx context.Context, id string) (*domain.Ride, error)
	Create(ctx context.Context, input domain.CreateRideInput) (*domain.Ride, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Ride, error)
	List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error)
	ListGrouped(ctx context.Context, filter domain.RideFilter) ([]domain.RouteGroup, error)
}

type BookingSvc interface {
	Book(ctx context.Context, rideID, userID string) (*domain.Booking, error)
	Cancel(ctx context.Context, rideID, bookingID string) error
	ListByRider(ctx context.Context, userID string) ([]domain.RiderBooking, error)
	SetCheckInStatus(ctx context.Context, rideID, bookingID string, status domain.CheckInStatus) (*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	categoryService CategorySvc
	rideService     RideSvc
	bookingService  BookingSvc
	userService     UserSvc
}

func NewHandler(
	categoryService CategorySvc,
	rideService RideSvc,
	bookingService BookingSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		categoryService: categoryService,
		rideService:     rideService,
		bookingService:  bookingService,
		userService:     userService,
	}
}

// Categories

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), domain.CreateCategoryInput{
		Name:        req.Name,
		AverageTime: time.Duration(req.AverageTimeMinutes) * time.Minute,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Rides

func (h *Handler) CreateRide(c *ginext.Context) {
	var req dto.CreateRideRequest
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

	input := domain.CreateRideInput{
		CategoryID:    req.CategoryID,
		AgencyID:      req.AgencyID,
		From:          req.From,
		To:            req.To,
		DepartureTime: departure,
		Seats:         req.Seats,
		Price:         req.Price,
	}

	ride, err := h.rideService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRideResponse(ride))
}

func (h *Handler) ListRides(c *ginext.Context) {
	filter, ok := h.bindRideFilter(c)
	if !ok {
		return
	}

	rides, err := h.rideService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRideResponses(rides))
}

func (h *Handler) ListGroupedRides(c *ginext.Context) {
	filter, ok := h.bindRideFilter(c)
	if !ok {
		return
	}

	groups, err := h.rideService.ListGrouped(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RouteGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, dto.ToRouteGroupResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRide(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}

	ride, err := h.rideService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRideResponse(ride))
}

func (h *Handler) CancelRide(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}

	ride, err := h.rideService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRideResponse(ride))
}

func (h *Handler) DeleteRide(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}

	if err := h.rideService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Bookings

func (h *Handler) BookRide(c *ginext.Context) {
	rideID, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), rideID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) SetCheckInStatus(c *ginext.Context) {
	rideID, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "bookingId", "invalid booking id")
	if !ok {
		return
	}

	var req dto.SetCheckInStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := domain.ParseCheckInStatus(req.CheckInStatus)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.SetCheckInStatus(c.Request.Context(), rideID, bookingID, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	rideID, ok := pathUUID(c, "id", "invalid ride id")
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "bookingId", "invalid booking id")
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), rideID, bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := pathUUID(c, "id", "invalid user id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByRider(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RiderBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToRiderBookingResponse(b))
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

	input := domain.CreateUserInput{
		Username:       req.Username,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
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

func (h *Handler) bindRideFilter(c *ginext.Context) (domain.RideFilter, bool) {
	var q dto.ListRidesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.RideFilter{}, false
	}

	filter := domain.RideFilter{From: q.From, To: q.To}

	if q.Status != "" {
		status, err := domain.ParseRideStatus(q.Status)
		if err != nil {
			h.handleError(c, err)
			return domain.RideFilter{}, false
		}
		filter.Status = status
	}

	if q.Date != "" {
		date, err := time.Parse(domain.DateKeyLayout, q.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return domain.RideFilter{}, false
		}
		filter.Date = date
	}

	return filter, true
}

func pathUUID(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRideNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrDuplicateBooking),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrRideNotActive),
		errors.Is(err, domain.ErrRideHasBookings),
		errors.Is(err, domain.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrCategoryExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
