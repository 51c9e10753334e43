package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers catalog routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/annotation-types", GetAnnotationTypes())
	group.GET("/leads", GetLeads())
}
