package comments

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	commentsService "github.com/cardiolab/ecg-annotator-api/internal/services/comments"
)

// PostComment appends to the session thread
// @Summary      Post comment
// @Description  Add a comment to the session's discussion thread
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        comment body types.CommentRequest true "Comment data"
// @Success      201 {object} models.Comment "Created comment"
// @Failure      400 {object} types.ErrorResponse "Missing author or text"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/comments [post]
func PostComment(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		if _, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		var req types.CommentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		comment, err := deps.CommentService.Post(c.Request.Context(), sessionUUID, req.Author, req.Text)
		if err != nil {
			if errors.Is(err, commentsService.ErrMissingAuthor) || errors.Is(err, commentsService.ErrEmptyComment) {
				types.SendBadRequest(c, err.Error())
				return
			}
			types.SendInternalError(c, "Failed to post comment")
			return
		}

		types.SendCreated(c, comment)
	}
}

// GetComments returns the thread in posting order
// @Summary      Get comments
// @Description  Retrieve the session's discussion thread
// @Tags         comments
// @Produce      json
// @Param        id path string true "Session UUID"
// @Success      200 {object} types.CommentsResponse "Comment thread"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/comments [get]
func GetComments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		if _, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		thread, err := deps.CommentService.List(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve comments")
			return
		}

		types.SendSuccess(c, types.CommentsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Comments:     thread,
			Count:        len(thread),
		})
	}
}
