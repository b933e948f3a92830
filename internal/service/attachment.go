package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	gopath "path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/gracechapel/api/internal/storage"
)

// Asset categories map to directories under the storage root. The category is
// part of the stored reference path, which doubles as the download URL.
const (
	AttachmentSermonImage   = "images/sermons"
	AttachmentEventImage    = "images/events"
	AttachmentMinistryImage = "images/ministries"
	AttachmentSermonAudio   = "audio/sermons"
)

// Upload carries one file from a parsed multipart form.
type Upload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// AttachmentService owns the binary asset lifecycle, decoupled from row
// lifecycle. Unique names mean concurrent uploads never collide and no
// cross-request locking is needed.
type AttachmentService struct {
	storage storage.Storage
}

func NewAttachmentService(storage storage.Storage) *AttachmentService {
	return &AttachmentService{storage: storage}
}

// Store writes the upload under its category directory and returns the
// reference path the caller persists on the entity. Filenames are
// collision-resistant: nanosecond timestamp plus a random suffix, keeping the
// original extension (or .bin when there is none).
func (s *AttachmentService) Store(category string, up *Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Header.Filename))
	if ext == "" {
		ext = ".bin"
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)
	path := category + "/" + name

	// Multipart files are seekable; rewind in case a validator read ahead
	_, err := up.File.Seek(0, io.SeekStart)
	if err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	err = s.storage.Save(path, up.File)
	if err != nil {
		return "", fmt.Errorf("failed to store attachment: %w", err)
	}

	if strings.HasPrefix(category, "images/") {
		s.makeThumbnail(path, up)
	}

	return "/" + path, nil
}

// Remove deletes the asset behind a reference path. A missing file is not an
// error, so removal is idempotent.
func (s *AttachmentService) Remove(assetPath string) error {
	if assetPath == "" {
		return nil
	}

	path := strings.TrimPrefix(assetPath, "/")
	if strings.HasPrefix(path, "images/") {
		// Thumbnail is best effort on the way out too
		err := s.storage.Delete(thumbnailPath(path))
		if err != nil {
			slog.Warn("failed to delete thumbnail", "path", path, "error", err)
		}
	}

	return s.storage.Delete(path)
}

// URL resolves a reference path to the public URL of the backing file.
func (s *AttachmentService) URL(assetPath string) string {
	return s.storage.URL(strings.TrimPrefix(assetPath, "/"))
}

// makeThumbnail renders a small JPEG variant next to the original. The
// original bytes are never touched; a decode failure only costs the variant.
func (s *AttachmentService) makeThumbnail(path string, up *Upload) {
	file, err := up.Header.Open()
	if err != nil {
		slog.Warn("thumbnail: failed to reopen upload", "path", path, "error", err)
		return
	}
	defer func() { _ = file.Close() }()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		slog.Warn("thumbnail: failed to decode image", "path", path, "error", err)
		return
	}

	thumb := imaging.Fit(img, 480, 480, imaging.Lanczos)

	var buf bytes.Buffer
	err = imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80))
	if err != nil {
		slog.Warn("thumbnail: failed to encode", "path", path, "error", err)
		return
	}

	err = s.storage.Save(thumbnailPath(path), &buf)
	if err != nil {
		slog.Warn("thumbnail: failed to save", "path", path, "error", err)
	}
}

func thumbnailPath(path string) string {
	dir, name := gopath.Split(path)
	return dir + "thumbs/" + name
}
