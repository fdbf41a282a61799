package controllers

import (
	"log/slog"
	"net/http"

	"jugsite/internal/delivery/http/helpers"
	"jugsite/internal/domain"
)

// EventSuccessResponse is the success envelope for GET /events/{id}.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpeakerSuccessResponse is the success envelope for GET /speakers/{id}.
type SpeakerSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkSuccessResponse is the success envelope for GET /talks/{id}.
type TalkSuccessResponse struct {
	Data  *domain.Talk      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalksSuccessResponse is the success envelope for the resolved talk lists.
type TalksSuccessResponse struct {
	Data  []*domain.Talk    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SponsorSuccessResponse is the success envelope for GET /sponsors/{id}.
type SponsorSuccessResponse struct {
	Data  *domain.Sponsor   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ContentController struct {
	Logger *slog.Logger
	Reader domain.ContentReader
}

func NewContentController(logger *slog.Logger, reader domain.ContentReader) *ContentController {
	return &ContentController{
		Logger: logger,
		Reader: reader,
	}
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event document with its talk identifiers in document order.
// @Tags events
// @Produce json
// @Param id path string true "Event identifier, e.g. 20170214-jigsaw"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *ContentController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	event, ok, err := c.Reader.ReadEvent(r.Context(), id)
	c.reply(w, r, "event", event, ok, err)
}

// GetEventTalks godoc
// @Summary List an event's talks
// @Description Resolves the event's talk identifiers in order. Identifiers without a talk document are skipped.
// @Tags events
// @Produce json
// @Param id path string true "Event identifier"
// @Success 200 {object} controllers.TalksSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id}/talks [get]
func (c *ContentController) GetEventTalks(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	talks, ok, err := c.Reader.EventTalks(r.Context(), id)
	c.reply(w, r, "event", talks, ok, err)
}

// GetSpeaker godoc
// @Summary Get a speaker
// @Tags speakers
// @Produce json
// @Param id path string true "Speaker identifier, e.g. forax-remi"
// @Success 200 {object} controllers.SpeakerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id} [get]
func (c *ContentController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	speaker, ok, err := c.Reader.ReadSpeaker(r.Context(), id)
	c.reply(w, r, "speaker", speaker, ok, err)
}

// GetSpeakerTalks godoc
// @Summary List a speaker's talks
// @Tags speakers
// @Produce json
// @Param id path string true "Speaker identifier"
// @Success 200 {object} controllers.TalksSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{id}/talks [get]
func (c *ContentController) GetSpeakerTalks(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	talks, ok, err := c.Reader.SpeakerTalks(r.Context(), id)
	c.reply(w, r, "speaker", talks, ok, err)
}

// GetTalk godoc
// @Summary Get a talk
// @Tags talks
// @Produce json
// @Param id path string true "Talk identifier"
// @Success 200 {object} controllers.TalkSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /talks/{id} [get]
func (c *ContentController) GetTalk(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	talk, ok, err := c.Reader.ReadTalk(r.Context(), id)
	c.reply(w, r, "talk", talk, ok, err)
}

// GetSponsor godoc
// @Summary Get a sponsor
// @Tags sponsors
// @Produce json
// @Param id path string true "Sponsor identifier, e.g. arolla"
// @Success 200 {object} controllers.SponsorSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sponsors/{id} [get]
func (c *ContentController) GetSponsor(w http.ResponseWriter, r *http.Request) {
	id, valid := c.pathID(w, r)
	if !valid {
		return
	}
	sponsor, ok, err := c.Reader.ReadSponsor(r.Context(), id)
	c.reply(w, r, "sponsor", sponsor, ok, err)
}

// pathID returns the {id} path value, writing a 400 when it cannot name a document.
// Only the request's own identifier is a client error; invalid identifiers met
// while reading stored content surface from the reader as server errors.
func (c *ContentController) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if err := domain.ValidateID(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return "", false
	}
	return id, true
}

// reply maps a read result onto the response envelope.
func (c *ContentController) reply(w http.ResponseWriter, r *http.Request, kind string, data any, ok bool, err error) {
	switch {
	case err != nil:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	case !ok:
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, kind+" not found")
	default:
		helpers.WriteJSONSuccess(w, http.StatusOK, data)
	}
}
