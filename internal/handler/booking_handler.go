package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/dto"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/Kingsavannah44/savannah-events-api/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// RegisterRoutes wires booking intake onto the public group and management
// onto the admin-gated group.
func (h *BookingHandler) RegisterRoutes(public, admin *echo.Group) {
	public.POST("/bookings", h.CreateBooking)

	admin.GET("/bookings", h.ListBookings)
	admin.GET("/bookings/:id", h.GetBooking)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	admin.PATCH("/bookings/:id/payment", h.UpdatePayment)
	admin.GET("/stats", h.GetStats)
	admin.GET("/clients", h.ListClients)
}

// parseEventDate accepts plain dates from the public booking form and full
// timestamps from API clients.
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// storageError logs the underlying fault and returns an opaque 500.
func storageError(op string, err error) error {
	log.Printf("%s: %v", op, err)
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to "+op)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	eventType := models.EventCategory(req.EventType)
	if !eventType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "event_type is invalid")
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_date is invalid")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		EventID:     req.EventID,
		EventType:   eventType,
		EventDate:   eventDate,
		GuestCount:  req.GuestCount,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "event not found")
		}
		return storageError("create booking", err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	var filter repository.BookingFilter
	if s := c.QueryParam("status"); s != "" {
		status := models.BookingStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		filter.Status = &status
	}
	filter.Search = c.QueryParam("search")

	page := atoiDefault(c.QueryParam("page"), 1)
	limit := atoiDefault(c.QueryParam("limit"), service.DefaultPageSize)

	result, err := h.svc.ListBookings(c.Request().Context(), filter, page, limit)
	if err != nil {
		return storageError("fetch bookings", err)
	}

	resp := dto.BookingListResponse{
		Bookings: make([]dto.BookingResponse, len(result.Bookings)),
		Pagination: dto.Pagination{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.Pages,
		},
	}
	for i, b := range result.Bookings {
		resp.Bookings[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return storageError("fetch booking", err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	next := models.BookingStatus(req.Status)
	if !next.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), uint(id), next)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return storageError("update booking status", err)
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdatePayment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.UpdatePayment(c.Request().Context(), uint(id), req.PaidAmount, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		case errors.Is(err, service.ErrPaymentExceedsTotal):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return storageError("update booking payment", err)
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return storageError("fetch stats", err)
	}

	return c.JSON(http.StatusOK, dto.StatsResponse{
		TotalBookings:   stats.TotalBookings,
		PendingBookings: stats.PendingBookings,
		Revenue:         stats.Revenue,
		Clients:         stats.Clients,
		UpcomingEvents:  stats.UpcomingEvents,
	})
}

func (h *BookingHandler) ListClients(c echo.Context) error {
	clients, err := h.svc.ListClients(c.Request().Context())
	if err != nil {
		return storageError("fetch clients", err)
	}
	return c.JSON(http.StatusOK, clients)
}
