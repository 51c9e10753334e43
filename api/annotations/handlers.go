package annotations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	annotationsService "github.com/cardiolab/ecg-annotator-api/internal/services/annotations"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
)

// CreateAnnotation places a manual annotation on the session's waveform
// @Summary      Create annotation
// @Description  Add a manual annotation at a point in time on the current waveform
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        annotation body types.AnnotationRequest true "Annotation data (time, type, optional lead and author)"
// @Success      201 {object} models.Annotation "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Invalid time, type, or lead"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Duplicate annotation id"
// @Router       /api/v1/sessions/{id}/annotations [post]
func CreateAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		session, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		var req types.AnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		annotationID := req.ID
		if annotationID == 0 {
			annotationID, err = deps.SessionService.NextAnnotationID(c.Request.Context(), sessionUUID)
			if err != nil {
				types.SendInternalError(c, "Failed to assign annotation id")
				return
			}
		}

		lead := session.SelectedLead
		if req.Lead != "" {
			lead = models.Lead(req.Lead)
		}

		annotation := models.Annotation{
			SessionID:    sessionUUID,
			AnnotationID: annotationID,
			Time:         *req.Time,
			Type:         models.AnnotationType(req.Type),
			Lead:         lead,
			Source:       models.SourceManual,
			Author:       req.Author,
		}

		if err := deps.AnnotationService.Add(c.Request.Context(), &annotation); err != nil {
			switch {
			case errors.Is(err, annotationsService.ErrDuplicateID):
				types.SendConflict(c, "Annotation id already in use")
			case errors.Is(err, annotationsService.ErrOutOfRangeTime):
				types.SendBadRequest(c, "Time is outside the waveform")
			case errors.Is(err, annotationsService.ErrInvalidType):
				types.SendBadRequest(c, "Unknown annotation type: "+req.Type)
			case errors.Is(err, annotationsService.ErrInvalidLead):
				types.SendBadRequest(c, "Unknown lead: "+req.Lead)
			case errors.Is(err, annotationsService.ErrInvalidID):
				types.SendBadRequest(c, "Annotation id must be positive")
			default:
				types.SendInternalError(c, "Failed to create annotation")
			}
			return
		}

		types.SendCreated(c, annotation)
	}
}

// GetAnnotations lists annotations, optionally restricted to a time range
// @Summary      Get annotations
// @Description  Retrieve annotations sorted by time; pass start and end to restrict to a closed interval
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        start query number false "Range start in seconds"
// @Param        end query number false "Range end in seconds"
// @Success      200 {object} types.AnnotationsResponse "Sorted annotations"
// @Failure      400 {object} types.ErrorResponse "Inverted range"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations [get]
func GetAnnotations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		if _, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		var result []models.Annotation
		var err error
		if c.Query("start") != "" || c.Query("end") != "" {
			start, ok := types.ParseFloatQuery(c, "start", 0)
			if !ok {
				return
			}
			// An omitted end means "to the end of the recording"
			end, ok := types.ParseFloatQuery(c, "end", 0)
			if !ok {
				return
			}
			if c.Query("end") == "" {
				end, err = deps.SessionService.CurrentDuration(c.Request.Context(), sessionUUID)
				if err != nil {
					types.SendInternalError(c, "Failed to resolve waveform duration")
					return
				}
			}
			result, err = deps.AnnotationService.Query(c.Request.Context(), sessionUUID, start, end)
		} else {
			result, err = deps.AnnotationService.AllSorted(c.Request.Context(), sessionUUID)
		}

		if err != nil {
			if errors.Is(err, annotationsService.ErrInvalidRange) {
				types.SendBadRequest(c, "Range start must not exceed end")
				return
			}
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		types.SendSuccess(c, types.AnnotationsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Annotations:  result,
			Count:        len(result),
		})
	}
}

// DeleteAnnotation removes one annotation by id
// @Summary      Delete annotation
// @Description  Remove an annotation; deleting an absent id succeeds silently
// @Tags         annotations
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        annotationId path int64 true "Annotation ID"
// @Success      200 {object} types.BaseResponse "Removed (or already absent)"
// @Failure      400 {object} types.ErrorResponse "Invalid annotation id"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/annotations/{annotationId} [delete]
func DeleteAnnotation(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		annotationID, ok := types.ParseInt64Param(c, "annotationId")
		if !ok {
			return
		}

		if _, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		if err := deps.AnnotationService.Remove(c.Request.Context(), sessionUUID, annotationID); err != nil {
			types.SendInternalError(c, "Failed to remove annotation")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Annotation removed"})
	}
}

// Detect runs the detection engine and merges the candidates
// @Summary      Run detection
// @Description  Propose R-Peak candidates over the current waveform and merge them into the annotation set, reporting per-item failures
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        options body types.DetectRequest false "Detection options"
// @Success      200 {object} types.DetectionResponse "Merge outcome"
// @Failure      400 {object} types.ErrorResponse "Unknown lead"
// @Failure      404 {object} types.ErrorResponse "Session or waveform not found"
// @Router       /api/v1/sessions/{id}/detect [post]
func Detect(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		session, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		var req types.DetectRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}

		lead := session.SelectedLead
		if req.Lead != "" {
			lead = models.Lead(req.Lead)
		}

		waveform, err := deps.SessionService.GetWaveform(c.Request.Context(), sessionUUID)
		if err != nil {
			if errors.Is(err, sessionsService.ErrWaveformNotFound) {
				types.SendNotFound(c, "Waveform not found")
				return
			}
			types.SendInternalError(c, "Failed to retrieve waveform")
			return
		}

		candidates, err := deps.DetectionEngine.Detect(c.Request.Context(), sessionUUID, waveform, lead)
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		result, err := deps.AnnotationService.MergeBatch(c.Request.Context(), sessionUUID, candidates)
		if err != nil {
			types.SendInternalError(c, "Failed to merge detected annotations")
			return
		}

		types.SendSuccess(c, types.DetectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Accepted:     result.Accepted,
			Failed:       result.Failed,
		})
	}
}
