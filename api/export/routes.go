package export

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers export and import routes on the sessions group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:id/export", GetExport(deps))
	group.POST("/:id/import", PostImport(deps))
}
