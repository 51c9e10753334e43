package comments

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers comment routes on the sessions group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/:id/comments", PostComment(deps))
	group.GET("/:id/comments", GetComments(deps))
}
