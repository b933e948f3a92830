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

// SermonInput carries the fields of a create or update request. Nil pointers
// mean the field was absent from the form and is left unchanged on update.
type SermonInput struct {
	Title       *string
	Speaker     *string
	Date        *string
	Scripture   *string
	Duration    *string
	Description *string
	VideoURL    *string
	Featured    *bool
}

type SermonService struct {
	sermonRepository repository.SermonRepository
	attachments      *AttachmentService
}

func NewSermonService(sermonRepository repository.SermonRepository, attachments *AttachmentService) *SermonService {
	return &SermonService{
		sermonRepository: sermonRepository,
		attachments:      attachments,
	}
}

func (s *SermonService) Create(in SermonInput, image, audio *Upload) (*model.Sermon, error) {
	sermon := &model.Sermon{}
	applySermonInput(sermon, in)

	// Validate everything before any row is written or file is persisted
	err := validateSermon(sermon)
	if err != nil {
		return nil, err
	}
	err = validateUploads(image, audio)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sermon.CreatedAt = now
	sermon.UpdatedAt = now

	if image != nil {
		path, err := s.attachments.Store(AttachmentSermonImage, image)
		if err != nil {
			return nil, err
		}
		sermon.ImagePath = &path
	}
	if audio != nil {
		path, err := s.attachments.Store(AttachmentSermonAudio, audio)
		if err != nil {
			s.removeStored(sermon.ImagePath)
			return nil, err
		}
		sermon.AudioPath = &path
	}

	err = s.sermonRepository.Create(sermon)
	if err != nil {
		// Row never landed; don't leave orphaned assets behind
		s.removeStored(sermon.ImagePath)
		s.removeStored(sermon.AudioPath)
		return nil, err
	}

	return sermon, nil
}

func (s *SermonService) ByID(id int64) (*model.Sermon, error) {
	return s.sermonRepository.ByID(id)
}

// Update merges the provided fields onto the existing row. A new upload is
// written before the row points at it, and the superseded file is deleted only
// after the row update succeeds.
func (s *SermonService) Update(id int64, in SermonInput, image, audio *Upload, removeImage bool) (*model.Sermon, error) {
	sermon, err := s.sermonRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	applySermonInput(sermon, in)

	err = validateSermon(sermon)
	if err != nil {
		return nil, err
	}
	err = validateUploads(image, audio)
	if err != nil {
		return nil, err
	}

	var supersededImage, supersededAudio string

	if image != nil {
		path, err := s.attachments.Store(AttachmentSermonImage, image)
		if err != nil {
			return nil, err
		}
		if sermon.ImagePath != nil {
			supersededImage = *sermon.ImagePath
		}
		sermon.ImagePath = &path
	} else if removeImage && sermon.ImagePath != nil {
		supersededImage = *sermon.ImagePath
		sermon.ImagePath = nil
	}

	if audio != nil {
		path, err := s.attachments.Store(AttachmentSermonAudio, audio)
		if err != nil {
			return nil, err
		}
		if sermon.AudioPath != nil {
			supersededAudio = *sermon.AudioPath
		}
		sermon.AudioPath = &path
	}

	err = s.sermonRepository.Update(sermon)
	if err != nil {
		return nil, err
	}

	s.removeSuperseded(supersededImage)
	s.removeSuperseded(supersededAudio)

	return sermon, nil
}

// Delete removes the row and then its assets.
func (s *SermonService) Delete(id int64) error {
	sermon, err := s.sermonRepository.ByID(id)
	if err != nil {
		return err
	}

	err = s.sermonRepository.Delete(id)
	if err != nil {
		return err
	}

	s.removeStored(sermon.ImagePath)
	s.removeStored(sermon.AudioPath)

	return nil
}

// List fetches the requested window, re-querying with a clamped page when the
// request points past the last page.
func (s *SermonService) List(page, pageSize int) ([]*model.Sermon, pagination.Meta, error) {
	offset := (page - 1) * pageSize
	sermons, total, err := s.sermonRepository.List(pageSize, offset)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	effective, clampedOffset := pagination.Window(page, total, pageSize)
	if effective != page {
		sermons, total, err = s.sermonRepository.List(pageSize, clampedOffset)
		if err != nil {
			return nil, pagination.Meta{}, err
		}
	}

	return sermons, pagination.NewMeta(effective, total, pageSize), nil
}

func (s *SermonService) removeStored(path *string) {
	if path == nil {
		return
	}
	err := s.attachments.Remove(*path)
	if err != nil {
		slog.Warn("failed to remove sermon asset", "path", *path, "error", err)
	}
}

func (s *SermonService) removeSuperseded(path string) {
	if path == "" {
		return
	}
	err := s.attachments.Remove(path)
	if err != nil {
		slog.Warn("failed to remove superseded sermon asset", "path", path, "error", err)
	}
}

func applySermonInput(sermon *model.Sermon, in SermonInput) {
	if in.Title != nil {
		sermon.Title = *in.Title
	}
	if in.Speaker != nil {
		sermon.Speaker = *in.Speaker
	}
	if in.Date != nil {
		sermon.Date = *in.Date
	}
	if in.Scripture != nil {
		sermon.Scripture = normalizeOptional(*in.Scripture)
	}
	if in.Duration != nil {
		sermon.Duration = normalizeOptional(*in.Duration)
	}
	if in.Description != nil {
		sermon.Description = *in.Description
	}
	if in.VideoURL != nil {
		sermon.VideoURL = normalizeOptional(*in.VideoURL)
	}
	if in.Featured != nil {
		sermon.Featured = *in.Featured
	}
}

func validateSermon(sermon *model.Sermon) error {
	if strings.TrimSpace(sermon.Title) == "" {
		return invalid("title is required")
	}
	if strings.TrimSpace(sermon.Speaker) == "" {
		return invalid("speaker is required")
	}
	if sermon.Date == "" {
		return invalid("date is required")
	}
	_, err := time.Parse("2006-01-02", sermon.Date)
	if err != nil {
		return invalid("date must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(sermon.Description) == "" {
		return invalid("description is required")
	}
	return nil
}

func validateUploads(image, audio *Upload) error {
	if image != nil {
		err := validation.ValidateFile(image.Header, validation.ImageConstraints)
		if err != nil {
			return invalid(err.Error())
		}
	}
	if audio != nil {
		err := validation.ValidateFile(audio.Header, validation.AudioConstraints)
		if err != nil {
			return invalid(err.Error())
		}
	}
	return nil
}

// normalizeOptional maps empty or whitespace-only input to NULL rather than
// storing empty strings.
func normalizeOptional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
