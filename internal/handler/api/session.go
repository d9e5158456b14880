package api

import (
	"errors"
	"net/http"
	"strconv"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessions *session.Registry
}

func NewSessionHandler(sessions *session.Registry) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// @Summary Open session
// @Description Mount a booking view: a fresh draft and a reservation list that loads once in the background
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) Open(c *gin.Context) {
	s := h.sessions.Open(c.Request.Context())
	c.Header("Location", "/api/sessions/"+s.ID.String())
	c.JSON(http.StatusCreated, resdto.FromSession(s))
}

// @Summary Close session
// @Description Tear the view down; results of requests still in flight are dropped
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	if err := h.sessions.Close(id); err != nil {
		abortSessionErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get draft
// @Tags draft
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/draft [get]
func (h *SessionHandler) GetDraft(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(s.Draft.Draft()))
}

// @Summary Update draft field
// @Description Replace one field of the draft; every other field is kept
// @Tags draft
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateFieldRequest true "Field and value"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/draft [patch]
func (h *SessionHandler) UpdateField(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid request", nil)
		return
	}
	field, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidField, "Unknown field", gin.H{"field": req.Field})
		return
	}
	draft, err := s.Draft.UpdateField(field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrFieldTypeMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidField, "Value does not match the field type", gin.H{"field": req.Field})
		default:
			abortSessionErr(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Reset draft
// @Tags draft
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/draft/reset [post]
func (h *SessionHandler) ResetDraft(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	s.Draft.ResetDraft()
	c.JSON(http.StatusOK, resdto.FromDraft(s.Draft.Draft()))
}

// @Summary Submit draft
// @Description Send the draft to the reservation service. Success resets the draft, failure keeps it.
// @Tags draft
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /sessions/{id}/draft/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	// validated against the same snapshot Submit sends
	outcome, err := s.Draft.Submit(c.Request.Context(), commands.WithPrecheck(reqdto.CheckSubmittable))
	var missing *reqdto.MissingFieldsError
	if errors.As(err, &missing) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			httperr.CodeMissingFields, "Please fill in every required field", resdto.InvalidFieldsDetail{Fields: missing.Fields})
		return
	}
	notes := s.Inbox.Drain()
	if err != nil || outcome != commands.OutcomeSaved {
		if err == nil {
			err = errs.ErrControllerClosed
		}
		detail := resdto.SubmitFailureDetail{Outcome: string(outcome), Notifications: resdto.FromNotifications(notes)}
		switch {
		case outcome == commands.OutcomeRejected:
			httperr.AbortWithError(c, http.StatusBadGateway, err, httperr.CodeServiceRejected, commands.MessageFailed, detail)
		case outcome == commands.OutcomeUnreachable:
			httperr.AbortWithError(c, http.StatusBadGateway, err, httperr.CodeServiceUnreachable, commands.MessageFailed, detail)
		case outcome == commands.OutcomeDiscarded:
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeSessionClosed, "Session closed", detail)
		default:
			abortSessionErr(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmit(outcome, s.Draft.Draft(), notes))
}

// @Summary List reservations
// @Description The list is loaded once when the session opens and never refreshed
// @Tags reservations
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Block until the first load has finished"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/reservations [get]
func (h *SessionHandler) ListReservations(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if wait, _ := strconv.ParseBool(c.Query("wait")); wait {
		select {
		case <-s.Activated():
		case <-c.Request.Context().Done():
		}
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(s.List.Reservations(), s.List.Loaded()))
}

// @Summary Drain notifications
// @Description Return and clear the pending user notifications
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/notifications [get]
func (h *SessionHandler) Notifications(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotifications(s.Inbox.Drain()))
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	id, ok := parseSessionID(c)
	if !ok {
		return nil, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		abortSessionErr(c, err)
		return nil, false
	}
	return s, true
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortSessionErr(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeSessionNotFound, "Session not found", nil)
	case errs.Is(err, errs.ErrControllerClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeSessionClosed, "Session closed", nil)
	case errs.Is(err, errs.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeSubmitInProgress, "A submission is already in progress", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
	}
}
