package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"github.com/Kingsavannah44/savannah-events-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint, includeUnpublished bool) (*models.Event, error)
	ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id uint) error
	SetPublished(ctx context.Context, id uint, published bool) (*models.Event, error)
	SetFeatured(ctx context.Context, id uint, featured bool) (*models.Event, error)
}

type eventService struct {
	repo      repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetEvent hides unpublished events from public callers; they read as absent.
func (s *eventService) GetEvent(ctx context.Context, id uint, includeUnpublished bool) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if !event.IsPublished && !includeUnpublished {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *eventService) UpdateEvent(ctx context.Context, event *models.Event) error {
	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) SetPublished(ctx context.Context, id uint, published bool) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	}
	event.IsPublished = published

	if published && s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.KeyEventPublished, event)
	}

	return event, nil
}

func (s *eventService) SetFeatured(ctx context.Context, id uint, featured bool) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetFeatured(ctx, id, featured); err != nil {
		return nil, fmt.Errorf("set featured: %w", err)
	}
	event.IsFeatured = featured
	return event, nil
}
