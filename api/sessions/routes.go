package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers session lifecycle routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", CreateSession(deps))
	group.GET("/:id", GetSession(deps))
	group.PUT("/:id/lead", SelectLead(deps))
}
