package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gracechapel/api/internal/model"
	"github.com/gracechapel/api/internal/pagination"
	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/validation"
)

// EventInput carries the fields of a create or update request. Nil pointers
// mean the field was absent from the form and is left unchanged on update.
type EventInput struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
}

type EventService struct {
	eventRepository repository.EventRepository
	attachments     *AttachmentService
}

func NewEventService(eventRepository repository.EventRepository, attachments *AttachmentService) *EventService {
	return &EventService{
		eventRepository: eventRepository,
		attachments:     attachments,
	}
}

func (s *EventService) Create(in EventInput, image *Upload) (*model.Event, error) {
	event := &model.Event{}
	applyEventInput(event, in)

	err := validateEvent(event)
	if err != nil {
		return nil, err
	}
	if image != nil {
		err = validation.ValidateFile(image.Header, validation.ImageConstraints)
		if err != nil {
			return nil, invalid(err.Error())
		}
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if image != nil {
		path, err := s.attachments.Store(AttachmentEventImage, image)
		if err != nil {
			return nil, err
		}
		event.ImagePath = &path
	}

	err = s.eventRepository.Create(event)
	if err != nil {
		s.removeAsset(event.ImagePath)
		return nil, err
	}

	return event, nil
}

func (s *EventService) ByID(id int64) (*model.Event, error) {
	return s.eventRepository.ByID(id)
}

func (s *EventService) Update(id int64, in EventInput, image *Upload, removeImage bool) (*model.Event, error) {
	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	applyEventInput(event, in)

	err = validateEvent(event)
	if err != nil {
		return nil, err
	}
	if image != nil {
		err = validation.ValidateFile(image.Header, validation.ImageConstraints)
		if err != nil {
			return nil, invalid(err.Error())
		}
	}

	var superseded string

	if image != nil {
		path, err := s.attachments.Store(AttachmentEventImage, image)
		if err != nil {
			return nil, err
		}
		if event.ImagePath != nil {
			superseded = *event.ImagePath
		}
		event.ImagePath = &path
	} else if removeImage && event.ImagePath != nil {
		superseded = *event.ImagePath
		event.ImagePath = nil
	}

	err = s.eventRepository.Update(event)
	if err != nil {
		return nil, err
	}

	if superseded != "" {
		removeErr := s.attachments.Remove(superseded)
		if removeErr != nil {
			slog.Warn("failed to remove superseded event image", "path", superseded, "error", removeErr)
		}
	}

	return event, nil
}

func (s *EventService) Delete(id int64) error {
	event, err := s.eventRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.eventRepository.Delete(id)
	if err != nil {
		return err
	}

	s.removeAsset(event.ImagePath)

	return nil
}

func (s *EventService) List(page, pageSize int) ([]*model.Event, pagination.Meta, error) {
	offset := (page - 1) * pageSize
	events, total, err := s.eventRepository.List(pageSize, offset)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	effective, clampedOffset := pagination.Window(page, total, pageSize)
	if effective != page {
		events, total, err = s.eventRepository.List(pageSize, clampedOffset)
		if err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return events, pagination.NewMeta(effective, total, pageSize), nil
}

func (s *EventService) removeAsset(path *string) {
	if path == nil {
		return
	}
	err := s.attachments.Remove(*path)
	if err != nil {
		slog.Warn("failed to remove event asset", "path", *path, "error", err)
	}
}

func applyEventInput(event *model.Event, in EventInput) {
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.Time != nil {
		event.Time = *in.Time
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
}

func validateEvent(event *model.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return invalid("title is required")
	}
	if strings.TrimSpace(event.Description) == "" {
		return invalid("description is required")
	}
	if event.Date == "" {
		return invalid("date is required")
	}
	_, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return invalid("date must be in YYYY-MM-DD format")
	}
	if event.Time == "" {
		return invalid("time is required")
	}
	_, err = time.Parse("15:04", event.Time)
	if err != nil {
		return invalid("time must be in HH:MM format")
	}
	if strings.TrimSpace(event.Location) == "" {
		return invalid("location is required")
	}
	return nil
}
