package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sampleEvent() *models.Event {
	return &models.Event{
		Title:       "Spring Wedding Expo",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Location:    "Nairobi Convention Center",
		Category:    models.CategoryWedding,
		Price:       150000,
		IsPublished: true,
		IsFeatured:  true,
	}
}

func TestCreateEvent_Success(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = 1
			return nil
		},
	}

	svc := NewEventService(repo, nil) // nil publisher = skip RabbitMQ
	event := sampleEvent()

	err := svc.CreateEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), event.ID)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, nil)
	err := svc.CreateEvent(context.Background(), sampleEvent())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestGetEvent_HidesUnpublishedFromPublic(t *testing.T) {
	event := sampleEvent()
	event.ID = 4
	event.IsPublished = false

	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return event, nil
		},
	}

	svc := NewEventService(repo, nil)

	_, err := svc.GetEvent(context.Background(), 4, false)
	assert.ErrorIs(t, err, ErrEventNotFound)

	got, err := svc.GetEvent(context.Background(), 4, true)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), got.ID)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil)
	_, err := svc.GetEvent(context.Background(), 999, true)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEvents_PassesFilter(t *testing.T) {
	var captured repository.EventFilter
	repo := &mockEventRepo{
		findAllFn: func(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
			captured = filter
			return []models.Event{*sampleEvent()}, nil
		},
	}

	svc := NewEventService(repo, nil)
	published := true
	category := models.CategoryWedding

	events, err := svc.ListEvents(context.Background(), repository.EventFilter{
		Published: &published,
		Category:  &category,
	})

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NotNil(t, captured.Published)
	assert.True(t, *captured.Published)
	assert.Equal(t, category, *captured.Category)
}

func TestSetPublished_Success(t *testing.T) {
	event := sampleEvent()
	event.ID = 2
	event.IsPublished = false

	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return event, nil
		},
		setPublishedFn: func(ctx context.Context, id uint, published bool) error {
			assert.True(t, published)
			return nil
		},
	}

	svc := NewEventService(repo, nil)
	got, err := svc.SetPublished(context.Background(), 2, true)

	assert.NoError(t, err)
	assert.True(t, got.IsPublished)
}

func TestSetPublished_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil)
	_, err := svc.SetPublished(context.Background(), 999, true)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		deleteFn: func(ctx context.Context, id uint) error {
			return gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil)
	err := svc.DeleteEvent(context.Background(), 999)

	assert.ErrorIs(t, err, ErrEventNotFound)
}
