package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ClientName    string        `gorm:"not null" json:"client_name"`
	ClientEmail   *string       `json:"client_email,omitempty"`
	ClientPhone   string        `gorm:"not null" json:"client_phone"`
	EventID       *uint         `json:"event_id,omitempty"`
	EventType     EventCategory `gorm:"type:varchar(30);not null" json:"event_type"`
	EventDate     time.Time     `gorm:"not null" json:"event_date"`
	GuestCount    *int          `json:"guest_count"`
	TotalAmount   *float64      `json:"total_amount"`
	PaidAmount    float64       `gorm:"not null;default:0" json:"paid_amount"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL" json:"event,omitempty"`
}
