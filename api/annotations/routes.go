package annotations

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers annotation routes on the sessions group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/:id/annotations", CreateAnnotation(deps))
	group.GET("/:id/annotations", GetAnnotations(deps))
	group.DELETE("/:id/annotations/:annotationId", DeleteAnnotation(deps))
	group.POST("/:id/detect", Detect(deps))
}
