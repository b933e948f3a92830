package handler

import (
	"net/http"
	"strconv"

	"github.com/gracechapel/api/internal/pagination"
	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/service"
)

type MinistryHandler struct {
	ministryService *service.MinistryService
	maxUploadSize   int64
}

func NewMinistryHandler(ministryService *service.MinistryService, maxUploadSize int64) *MinistryHandler {
	return &MinistryHandler{
		ministryService: ministryService,
		maxUploadSize:   maxUploadSize,
	}
}

func (h *MinistryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination.ParseQuery(r.URL.Query())

	// Optional active filter; absent or unparsable means all ministries
	var active *bool
	if v := r.URL.Query().Get("active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			active = &b
		}
	}

	ministries, meta, err := h.ministryService.List(active, page, pageSize)
	if err != nil {
		respondFailure(w, err, nil, "ministries")
		return
	}

	respondList(w, ministries, meta)
}

func (h *MinistryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	ministry, err := h.ministryService.ByID(id)
	if err != nil {
		respondFailure(w, err, repository.ErrMinistryNotFound, "ministry")
		return
	}

	respondData(w, http.StatusOK, ministry)
}

func (h *MinistryHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	ministry, err := h.ministryService.Create(ministryInput(f), image)
	if err != nil {
		respondFailure(w, err, nil, "ministry")
		return
	}

	respondData(w, http.StatusCreated, ministry)
}

func (h *MinistryHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	ministry, err := h.ministryService.Update(id, ministryInput(f), image, f.Flag("removeImage"))
	if err != nil {
		respondFailure(w, err, repository.ErrMinistryNotFound, "ministry")
		return
	}

	respondData(w, http.StatusOK, ministry)
}

func (h *MinistryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	err := h.ministryService.Delete(id)
	if err != nil {
		respondFailure(w, err, repository.ErrMinistryNotFound, "ministry")
		return
	}

	respondMessage(w, http.StatusOK, "ministry deleted")
}

func ministryInput(f *form) service.MinistryInput {
	return service.MinistryInput{
		Title:        f.String("title"),
		Description:  f.String("description"),
		Schedule:     f.String("schedule"),
		Icon:         f.String("icon"),
		Coordinator:  f.String("coordinator"),
		ContactEmail: f.String("contactEmail"),
		Active:       f.Bool("active"),
	}
}
