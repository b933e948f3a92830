package handler

import (
	"net/http"

	"github.com/gracechapel/api/internal/pagination"
	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/service"
)

type SermonHandler struct {
	sermonService *service.SermonService
	maxUploadSize int64
}

func NewSermonHandler(sermonService *service.SermonService, maxUploadSize int64) *SermonHandler {
	return &SermonHandler{
		sermonService: sermonService,
		maxUploadSize: maxUploadSize,
	}
}

func (h *SermonHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination.ParseQuery(r.URL.Query())

	sermons, meta, err := h.sermonService.List(page, pageSize)
	if err != nil {
		respondFailure(w, err, nil, "sermons")
		return
	}

	respondList(w, sermons, meta)
}

func (h *SermonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	sermon, err := h.sermonService.ByID(id)
	if err != nil {
		respondFailure(w, err, repository.ErrSermonNotFound, "sermon")
		return
	}

	respondData(w, http.StatusOK, sermon)
}

func (h *SermonHandler) Create(w http.ResponseWriter, r *http.Request) {
	f, err := parseRequestForm(r, h.maxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	image, err := f.File("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid image upload")
		return
	}
	defer closeUpload(image)

	audio, err := f.File("audio")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid audio upload")
		return
	}
	defer closeUpload(audio)

	sermon, err := h.sermonService.Create(sermonInput(f), image, audio)
	if err != nil {
		respondFailure(w, err, nil, "sermon")
		return
	}

	respondData(w, http.StatusCreated, sermon)
}

func (h *SermonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	f, err := parseRequestForm(r, h.maxUploadSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	image, err := f.File("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid image upload")
		return
	}
	defer closeUpload(image)

	audio, err := f.File("audio")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid audio upload")
		return
	}
	defer closeUpload(audio)

	sermon, err := h.sermonService.Update(id, sermonInput(f), image, audio, f.Flag("removeImage"))
	if err != nil {
		respondFailure(w, err, repository.ErrSermonNotFound, "sermon")
		return
	}

	respondData(w, http.StatusOK, sermon)
}

func (h *SermonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	err := h.sermonService.Delete(id)
	if err != nil {
		respondFailure(w, err, repository.ErrSermonNotFound, "sermon")
		return
	}

	respondMessage(w, http.StatusOK, "sermon deleted")
}

func sermonInput(f *form) service.SermonInput {
	return service.SermonInput{
		Title:       f.String("title"),
		Speaker:     f.String("speaker"),
		Date:        f.String("date"),
		Scripture:   f.String("scripture"),
		Duration:    f.String("duration"),
		Description: f.String("description"),
		VideoURL:    f.String("videoUrl"),
		Featured:    f.Bool("featured"),
	}
}
