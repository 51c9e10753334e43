package review

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	reviewService "github.com/cardiolab/ecg-annotator-api/internal/services/review"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
)

// RequestReview moves a pending session under review
// @Summary      Request review
// @Description  Start the quality workflow; only a pending session can enter review
// @Tags         review
// @Produce      json
// @Param        id path string true "Session UUID"
// @Success      200 {object} types.ReviewResponse "New status"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      409 {object} types.ErrorResponse "Session is not pending"
// @Router       /api/v1/sessions/{id}/review [post]
func RequestReview(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		status, err := deps.ReviewService.RequestReview(c.Request.Context(), sessionUUID)
		if err != nil {
			switch {
			case errors.Is(err, reviewService.ErrInvalidTransition):
				types.SendConflict(c, "Review can only be requested while pending")
			case errors.Is(err, sessionsService.ErrSessionNotFound):
				types.SendNotFound(c, "Session not found")
			default:
				types.SendInternalError(c, "Failed to request review")
			}
			return
		}

		types.SendSuccess(c, types.ReviewResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			QualityStatus: status,
		})
	}
}

// GetReview reports the current quality status
// @Summary      Get review status
// @Description  Read the quality status; sessions past the review window are promoted to approved here
// @Tags         review
// @Produce      json
// @Param        id path string true "Session UUID"
// @Success      200 {object} types.ReviewResponse "Current status"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/review [get]
func GetReview(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		status, err := deps.ReviewService.Status(c.Request.Context(), sessionUUID)
		if err != nil {
			if errors.Is(err, sessionsService.ErrSessionNotFound) {
				types.SendNotFound(c, "Session not found")
				return
			}
			types.SendInternalError(c, "Failed to read review status")
			return
		}

		types.SendSuccess(c, types.ReviewResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			QualityStatus: status,
		})
	}
}
