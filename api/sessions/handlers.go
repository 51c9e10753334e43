package sessions

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
)

// CreateSession opens a new annotation session
// @Summary      Create annotation session
// @Description  Create a new session with a freshly synthesized default waveform
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body types.CreateSessionRequest false "Session options"
// @Success      201 {object} types.SessionResponse "Created session"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sessions [post]
func CreateSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateSessionRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}

		lead := models.Lead(req.Lead)
		session, err := deps.SessionService.CreateSession(c.Request.Context(), req.FileName, req.Annotator, lead)
		if err != nil {
			if errors.Is(err, sessionsService.ErrInvalidLead) {
				types.SendBadRequest(c, "Unknown lead: "+req.Lead)
				return
			}
			types.SendInternalError(c, "Failed to create session")
			return
		}

		// Every session starts with a synthesized signal
		samples, err := deps.Synthesizer.Generate(deps.SynthesisDuration, deps.SynthesisSampleRate)
		if err != nil {
			types.SendInternalError(c, "Failed to synthesize waveform")
			return
		}
		waveform, err := deps.SessionService.ReplaceWaveform(
			c.Request.Context(), session.UUID, samples,
			deps.SynthesisDuration, deps.SynthesisSampleRate, models.WaveformSynthesized)
		if err != nil {
			types.SendInternalError(c, "Failed to store waveform")
			return
		}

		types.SendCreated(c, buildSessionResponse(session, waveform, 0))
	}
}

// GetSession returns a session summary
// @Summary      Get session
// @Description  Retrieve session status, waveform metadata, and annotation count
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session UUID"
// @Success      200 {object} types.SessionResponse "Session summary"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/sessions/{id} [get]
func GetSession(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		session, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID)
		if err != nil {
			if errors.Is(err, sessionsService.ErrSessionNotFound) {
				types.SendNotFound(c, "Session not found")
				return
			}
			types.SendInternalError(c, "Failed to retrieve session")
			return
		}

		// A session without a waveform is still presentable
		waveform, err := deps.SessionService.GetWaveform(c.Request.Context(), sessionUUID)
		if err != nil && !errors.Is(err, sessionsService.ErrWaveformNotFound) {
			types.SendInternalError(c, "Failed to retrieve waveform")
			return
		}

		count, err := deps.AnnotationService.Count(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendInternalError(c, "Failed to count annotations")
			return
		}

		types.SendSuccess(c, buildSessionResponse(session, waveform, count))
	}
}

// SelectLead changes the session's active lead
// @Summary      Select lead
// @Description  Switch the session's active lead; annotations are unaffected
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        lead body object{lead=string} true "Lead name"
// @Success      200 {object} types.SessionResponse "Updated session"
// @Failure      400 {object} types.ErrorResponse "Unknown lead"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/lead [put]
func SelectLead(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		var req struct {
			Lead string `json:"lead" binding:"required"`
		}
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.SessionService.SelectLead(c.Request.Context(), sessionUUID, models.Lead(req.Lead))
		if err != nil {
			switch {
			case errors.Is(err, sessionsService.ErrInvalidLead):
				types.SendBadRequest(c, "Unknown lead: "+req.Lead)
			case errors.Is(err, sessionsService.ErrSessionNotFound):
				types.SendNotFound(c, "Session not found")
			default:
				types.SendInternalError(c, "Failed to update session")
			}
			return
		}

		types.SendSuccess(c, buildSessionResponse(session, nil, 0))
	}
}

func buildSessionResponse(session *models.Session, waveform *models.Waveform, annotationCount int64) types.SessionResponse {
	resp := types.SessionResponse{
		UUID:              session.UUID,
		FileName:          session.FileName,
		SelectedLead:      session.SelectedLead,
		Annotator:         session.Annotator,
		Status:            session.Status,
		ReviewRequestedAt: session.ReviewRequestedAt,
		AnnotationCount:   annotationCount,
		CreatedAt:         session.CreatedAt,
	}
	if waveform != nil {
		resp.Waveform = &types.WaveformMeta{
			Duration:    waveform.Duration,
			SampleRate:  waveform.SampleRate,
			SampleCount: waveform.SampleCount,
			Source:      waveform.Source,
		}
	}
	return resp
}
