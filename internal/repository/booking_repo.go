package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"gorm.io/gorm"
)

// BookingFilter narrows list and count queries. Search matches
// case-insensitively against client name, email and phone.
type BookingFilter struct {
	Status *models.BookingStatus
	Search string
}

// ClientSummary is one row of the bookings-grouped-by-client roll-up.
type ClientSummary struct {
	ClientName    string     `json:"client_name"`
	ClientEmail   *string    `json:"client_email,omitempty"`
	ClientPhone   string     `json:"client_phone"`
	BookingCount  int64      `json:"booking_count"`
	TotalPaid     float64    `json:"total_paid"`
	LastEventDate *time.Time `json:"last_event_date,omitempty"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindPage(ctx context.Context, filter BookingFilter, offset, limit int) ([]models.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error
	UpdatePayment(ctx context.Context, id uint, paid float64, total *float64, status models.PaymentStatus) error
	SumPaidAmount(ctx context.Context) (float64, error)
	CountDistinctClients(ctx context.Context) (int64, error)
	ListClients(ctx context.Context) ([]ClientSummary, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("Event").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func applyFilter(q *gorm.DB, filter BookingFilter) *gorm.DB {
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + s + "%"
		q = q.Where(
			"client_name ILIKE ? OR client_email ILIKE ? OR client_phone ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return q
}

func (r *bookingRepository) FindPage(ctx context.Context, filter BookingFilter, offset, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	q := applyFilter(r.db.WithContext(ctx), filter)
	err := q.Preload("Event").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	var count int64
	q := applyFilter(r.db.WithContext(ctx).Model(&models.Booking{}), filter)
	err := q.Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) UpdatePayment(ctx context.Context, id uint, paid float64, total *float64, status models.PaymentStatus) error {
	updates := map[string]any{
		"paid_amount":    paid,
		"payment_status": status,
	}
	if total != nil {
		updates["total_amount"] = *total
	}
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *bookingRepository) SumPaidAmount(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *bookingRepository) CountDistinctClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("client_phone").
		Count(&count).Error
	return count, err
}

// ListClients groups bookings by phone number; name and email come from the
// most recent booking for that client.
func (r *bookingRepository) ListClients(ctx context.Context) ([]ClientSummary, error) {
	var clients []ClientSummary
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(
			"client_phone",
			"MAX(client_name) AS client_name",
			"MAX(client_email) AS client_email",
			"COUNT(*) AS booking_count",
			"COALESCE(SUM(paid_amount), 0) AS total_paid",
			"MAX(event_date) AS last_event_date",
		).
		Group("client_phone").
		Order("MAX(created_at) DESC").
		Scan(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
