package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kingsavannah44/savannah-events-api/internal/dto"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/Kingsavannah44/savannah-events-api/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/events", h.ListPublicEvents)
	public.GET("/events/:id", h.GetPublicEvent)

	admin.GET("/events", h.ListEvents)
	admin.POST("/events", h.CreateEvent)
	admin.PUT("/events/:id", h.UpdateEvent)
	admin.DELETE("/events/:id", h.DeleteEvent)
	admin.PATCH("/events/:id/publish", h.SetPublished)
	admin.PATCH("/events/:id/feature", h.SetFeatured)
}

func eventFilterFromQuery(c echo.Context) (repository.EventFilter, error) {
	var filter repository.EventFilter
	if v := c.QueryParam("category"); v != "" {
		category := models.EventCategory(v)
		if !category.Valid() {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid category filter")
		}
		filter.Category = &category
	}
	if v := c.QueryParam("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid featured filter")
		}
		filter.Featured = &featured
	}
	return filter, nil
}

// ListPublicEvents serves the marketing site; only published events appear.
func (h *EventHandler) ListPublicEvents(c echo.Context) error {
	filter, err := eventFilterFromQuery(c)
	if err != nil {
		return err
	}
	published := true
	filter.Published = &published

	events, err := h.svc.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return storageError("fetch events", err)
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *EventHandler) GetPublicEvent(c echo.Context) error {
	return h.getEvent(c, false)
}

func (h *EventHandler) getEvent(c echo.Context, includeUnpublished bool) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	event, err := h.svc.GetEvent(c.Request().Context(), uint(id), includeUnpublished)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return storageError("fetch event", err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	filter, err := eventFilterFromQuery(c)
	if err != nil {
		return err
	}

	events, err := h.svc.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return storageError("fetch events", err)
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	event, err := bindEvent(c)
	if err != nil {
		return err
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return storageError("create event", err)
	}
	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	existing, err := h.svc.GetEvent(c.Request().Context(), uint(id), true)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return storageError("fetch event", err)
	}

	event, err := bindEvent(c)
	if err != nil {
		return err
	}
	event.ID = existing.ID
	event.IsPublished = existing.IsPublished
	event.CreatedAt = existing.CreatedAt

	if err := h.svc.UpdateEvent(c.Request().Context(), event); err != nil {
		return storageError("update event", err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	if err := h.svc.DeleteEvent(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return storageError("delete event", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) SetPublished(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.SetPublishedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.svc.SetPublished(c.Request().Context(), uint(id), *req.Published)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return storageError("update event", err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) SetFeatured(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var req dto.SetFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.svc.SetFeatured(c.Request().Context(), uint(id), *req.Featured)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return storageError("update event", err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func bindEvent(c echo.Context) (*models.Event, error) {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	category := models.EventCategory(req.Category)
	if !category.Valid() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "category is invalid")
	}

	return &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Category:    category,
		Price:       req.Price,
		IsFeatured:  req.IsFeatured,
	}, nil
}

func toEventResponses(events []models.Event) []dto.EventResponse {
	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}
	return resp
}
