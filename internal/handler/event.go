package handler

import (
	"net/http"

	"github.com/gracechapel/api/internal/pagination"
	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/service"
)

type EventHandler struct {
	eventService  *service.EventService
	maxUploadSize int64
}

func NewEventHandler(eventService *service.EventService, maxUploadSize int64) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		maxUploadSize: maxUploadSize,
	}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination.ParseQuery(r.URL.Query())

	events, meta, err := h.eventService.List(page, pageSize)
	if err != nil {
		respondFailure(w, err, nil, "events")
		return
	}

	respondList(w, events, meta)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	event, err := h.eventService.ByID(id)
	if err != nil {
		respondFailure(w, err, repository.ErrEventNotFound, "event")
		return
	}

	respondData(w, http.StatusOK, event)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	event, err := h.eventService.Create(eventInput(f), image)
	if err != nil {
		respondFailure(w, err, nil, "event")
		return
	}

	respondData(w, http.StatusCreated, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	event, err := h.eventService.Update(id, eventInput(f), image, f.Flag("removeImage"))
	if err != nil {
		respondFailure(w, err, repository.ErrEventNotFound, "event")
		return
	}

	respondData(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid identifier")
		return
	}

	err := h.eventService.Delete(id)
	if err != nil {
		respondFailure(w, err, repository.ErrEventNotFound, "event")
		return
	}

	respondMessage(w, http.StatusOK, "event deleted")
}

func eventInput(f *form) service.EventInput {
	return service.EventInput{
		Title:       f.String("title"),
		Description: f.String("description"),
		Date:        f.String("date"),
		Time:        f.String("time"),
		Location:    f.String("location"),
	}
}
