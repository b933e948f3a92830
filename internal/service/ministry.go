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

// MinistryInput carries the fields of a create or update request. Nil pointers
// mean the field was absent from the form and is left unchanged on update.
type MinistryInput struct {
	Title        *string
	Description  *string
	Schedule     *string
	Icon         *string
	Coordinator  *string
	ContactEmail *string
	Active       *bool
}

type MinistryService struct {
	ministryRepository repository.MinistryRepository
	attachments        *AttachmentService
}

func NewMinistryService(ministryRepository repository.MinistryRepository, attachments *AttachmentService) *MinistryService {
	return &MinistryService{
		ministryRepository: ministryRepository,
		attachments:        attachments,
	}
}

func (s *MinistryService) Create(in MinistryInput, image *Upload) (*model.Ministry, error) {
	ministry := &model.Ministry{Active: true}
	applyMinistryInput(ministry, in)

	err := validateMinistry(ministry)
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
	ministry.CreatedAt = now
	ministry.UpdatedAt = now

	if image != nil {
		path, err := s.attachments.Store(AttachmentMinistryImage, image)
		if err != nil {
			return nil, err
		}
		ministry.ImagePath = &path
	}

	err = s.ministryRepository.Create(ministry)
	if err != nil {
		s.removeAsset(ministry.ImagePath)
		return nil, err
	}

	return ministry, nil
}

func (s *MinistryService) ByID(id int64) (*model.Ministry, error) {
	return s.ministryRepository.ByID(id)
}

func (s *MinistryService) Update(id int64, in MinistryInput, image *Upload, removeImage bool) (*model.Ministry, error) {
	ministry, err := s.ministryRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	applyMinistryInput(ministry, in)

	err = validateMinistry(ministry)
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
		path, err := s.attachments.Store(AttachmentMinistryImage, image)
		if err != nil {
			return nil, err
		}
		if ministry.ImagePath != nil {
			superseded = *ministry.ImagePath
		}
		ministry.ImagePath = &path
	} else if removeImage && ministry.ImagePath != nil {
		superseded = *ministry.ImagePath
		ministry.ImagePath = nil
	}

	err = s.ministryRepository.Update(ministry)
	if err != nil {
		return nil, err
	}

	if superseded != "" {
		removeErr := s.attachments.Remove(superseded)
		if removeErr != nil {
			slog.Warn("failed to remove superseded ministry image", "path", superseded, "error", removeErr)
		}
	}

	return ministry, nil
}

func (s *MinistryService) Delete(id int64) error {
	ministry, err := s.ministryRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.ministryRepository.Delete(id)
	if err != nil {
		return err
	}

	s.removeAsset(ministry.ImagePath)

	return nil
}

// List supports an optional active filter; nil means all ministries.
func (s *MinistryService) List(active *bool, page, pageSize int) ([]*model.Ministry, pagination.Meta, error) {
	offset := (page - 1) * pageSize
	ministries, total, err := s.ministryRepository.List(active, pageSize, offset)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	effective, clampedOffset := pagination.Window(page, total, pageSize)
	if effective != page {
		ministries, total, err = s.ministryRepository.List(active, pageSize, clampedOffset)
		if err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return ministries, pagination.NewMeta(effective, total, pageSize), nil
}

func (s *MinistryService) removeAsset(path *string) {
	if path == nil {
		return
	}
	err := s.attachments.Remove(*path)
	if err != nil {
		slog.Warn("failed to remove ministry asset", "path", *path, "error", err)
	}
}

func applyMinistryInput(ministry *model.Ministry, in MinistryInput) {
	if in.Title != nil {
		ministry.Title = *in.Title
	}
	if in.Description != nil {
		ministry.Description = *in.Description
	}
	if in.Schedule != nil {
		ministry.Schedule = normalizeOptional(*in.Schedule)
	}
	if in.Icon != nil {
		ministry.Icon = normalizeOptional(*in.Icon)
	}
	if in.Coordinator != nil {
		ministry.Coordinator = normalizeOptional(*in.Coordinator)
	}
	if in.ContactEmail != nil {
		// Empty string normalizes to NULL before validation, never stored
		ministry.ContactEmail = normalizeOptional(*in.ContactEmail)
	}
	if in.Active != nil {
		ministry.Active = *in.Active
	}
}

func validateMinistry(ministry *model.Ministry) error {
	if strings.TrimSpace(ministry.Title) == "" {
		return invalid("title is required")
	}
	if strings.TrimSpace(ministry.Description) == "" {
		return invalid("description is required")
	}
	if ministry.ContactEmail != nil {
		err := validation.ValidateEmail(*ministry.ContactEmail)
		if err != nil {
			return invalid("contact email: " + err.Error())
		}
	}
	return nil
}
