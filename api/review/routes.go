package review

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers quality workflow routes on the sessions group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/:id/review", RequestReview(deps))
	group.GET("/:id/review", GetReview(deps))
}
