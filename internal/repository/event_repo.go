package repository

import (
	"context"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"gorm.io/gorm"
)

type EventFilter struct {
	Published *bool
	Featured  *bool
	Category  *models.EventCategory
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	SetPublished(ctx context.Context, id uint, published bool) error
	SetFeatured(ctx context.Context, id uint, featured bool) error
	CountUpcomingPublished(ctx context.Context, from time.Time) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx)
	if filter.Published != nil {
		q = q.Where("is_published = ?", *filter.Published)
	}
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if err := q.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("is_published", published).Error
}

func (r *eventRepository) SetFeatured(ctx context.Context, id uint, featured bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("is_featured", featured).Error
}

func (r *eventRepository) CountUpcomingPublished(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("is_published = ? AND date >= ?", true, from).
		Count(&count).Error
	return count, err
}
