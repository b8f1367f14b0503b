package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/Kingsavannah44/savannah-events-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrPaymentExceedsTotal = errors.New("paid amount exceeds total amount")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type CreateBookingInput struct {
	ClientName  string
	ClientEmail *string
	ClientPhone string
	EventID     *uint
	EventType   models.EventCategory
	EventDate   time.Time
	GuestCount  *int
	TotalAmount *float64
	Notes       string
}

type BookingPage struct {
	Bookings []models.Booking
	Page     int
	Limit    int
	Total    int64
	Pages    int
}

type DashboardStats struct {
	TotalBookings   int64
	PendingBookings int64
	Revenue         float64
	Clients         int64
	UpcomingEvents  int64
}

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter, page, limit int) (*BookingPage, error)
	UpdateStatus(ctx context.Context, id uint, next models.BookingStatus) (*models.Booking, error)
	UpdatePayment(ctx context.Context, id uint, paid float64, total *float64) (*models.Booking, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	ListClients(ctx context.Context) ([]repository.ClientSummary, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
	}
}

// CreateBooking persists a new booking request. Status and payment status are
// always forced to their initial values; callers cannot self-confirm.
func (s *bookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.EventID != nil {
		if _, err := s.eventRepo.FindByID(ctx, *input.EventID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEventNotFound
			}
			return nil, fmt.Errorf("look up event: %w", err)
		}
	}

	booking := &models.Booking{
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientPhone:   input.ClientPhone,
		EventID:       input.EventID,
		EventType:     input.EventType,
		EventDate:     input.EventDate,
		GuestCount:    input.GuestCount,
		TotalAmount:   input.TotalAmount,
		PaidAmount:    0,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
		Notes:         input.Notes,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyBookingCreated, booking)
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter, page, limit int) (*BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookings, err := s.bookingRepo.FindPage(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &BookingPage{
		Bookings: bookings,
		Page:     page,
		Limit:    limit,
		Total:    total,
		Pages:    pages,
	}, nil
}

// allowedTransitions encodes the booking lifecycle: pending bookings get
// confirmed or cancelled, confirmed ones completed or cancelled.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uint, next models.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(booking.Status, next) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = next

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyBookingStatusChanged, booking)
	}

	return booking, nil
}

func (s *bookingService) UpdatePayment(ctx context.Context, id uint, paid float64, total *float64) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	effectiveTotal := booking.TotalAmount
	if total != nil {
		effectiveTotal = total
	}
	if effectiveTotal != nil && paid > *effectiveTotal {
		return nil, ErrPaymentExceedsTotal
	}

	status := models.PaymentPartial
	switch {
	case paid <= 0:
		status = models.PaymentUnpaid
	case effectiveTotal != nil && paid >= *effectiveTotal:
		status = models.PaymentPaid
	}

	if err := s.bookingRepo.UpdatePayment(ctx, id, paid, total, status); err != nil {
		return nil, fmt.Errorf("update booking payment: %w", err)
	}

	booking.PaidAmount = paid
	booking.TotalAmount = effectiveTotal
	booking.PaymentStatus = status
	return booking, nil
}

func (s *bookingService) Stats(ctx context.Context) (*DashboardStats, error) {
	total, err := s.bookingRepo.Count(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	pending, err := s.bookingRepo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}
	revenue, err := s.bookingRepo.SumPaidAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum paid amounts: %w", err)
	}
	clients, err := s.bookingRepo.CountDistinctClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	upcoming, err := s.eventRepo.CountUpcomingPublished(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming events: %w", err)
	}

	return &DashboardStats{
		TotalBookings:   total,
		PendingBookings: pending,
		Revenue:         revenue,
		Clients:         clients,
		UpcomingEvents:  upcoming,
	}, nil
}

func (s *bookingService) ListClients(ctx context.Context) ([]repository.ClientSummary, error) {
	return s.bookingRepo.ListClients(ctx)
}
