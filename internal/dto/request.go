package dto

import "time"

type CreateBookingRequest struct {
	ClientName  string   `json:"client_name" validate:"required"`
	ClientEmail *string  `json:"client_email" validate:"omitempty,email"`
	ClientPhone string   `json:"client_phone" validate:"required"`
	EventID     *uint    `json:"event_id"`
	EventType   string   `json:"event_type" validate:"required"`
	EventDate   string   `json:"event_date" validate:"required"`
	GuestCount  *int     `json:"guest_count" validate:"omitempty,gte=0"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	Notes       string   `json:"notes"`

	// Ignored on purpose: lifecycle state is server-controlled.
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateBookingPaymentRequest struct {
	PaidAmount  float64  `json:"paid_amount" validate:"gte=0"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
}

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location"`
	Category    string    `json:"category" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	IsFeatured  bool      `json:"is_featured"`
}

type SetPublishedRequest struct {
	Published *bool `json:"published" validate:"required"`
}

type SetFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
