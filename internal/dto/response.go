package dto

import (
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type BookingResponse struct {
	ID            uint                 `json:"id"`
	ClientName    string               `json:"client_name"`
	ClientEmail   *string              `json:"client_email"`
	ClientPhone   string               `json:"client_phone"`
	EventID       *uint                `json:"event_id,omitempty"`
	EventType     models.EventCategory `json:"event_type"`
	EventDate     time.Time            `json:"event_date"`
	GuestCount    *int                 `json:"guest_count"`
	TotalAmount   *float64             `json:"total_amount"`
	PaidAmount    float64              `json:"paid_amount"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	Event         *EventResponse       `json:"event,omitempty"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

type EventResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Date        time.Time            `json:"date"`
	Location    string               `json:"location"`
	Category    models.EventCategory `json:"category"`
	Price       float64              `json:"price"`
	IsPublished bool                 `json:"is_published"`
	IsFeatured  bool                 `json:"is_featured"`
	CreatedAt   time.Time            `json:"created_at"`
}

type UserResponse struct {
	ID    uint            `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type StatsResponse struct {
	TotalBookings   int64   `json:"total_bookings"`
	PendingBookings int64   `json:"pending_bookings"`
	Revenue         float64 `json:"revenue"`
	Clients         int64   `json:"clients"`
	UpcomingEvents  int64   `json:"upcoming_events"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		ClientPhone:   b.ClientPhone,
		EventID:       b.EventID,
		EventType:     b.EventType,
		EventDate:     b.EventDate,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
	if b.Event != nil {
		ev := ToEventResponse(b.Event)
		resp.Event = &ev
	}
	return resp
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Category:    e.Category,
		Price:       e.Price,
		IsPublished: e.IsPublished,
		IsFeatured:  e.IsFeatured,
		CreatedAt:   e.CreatedAt,
	}
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
