package waveform

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
)

// RegisterRoutes registers waveform and viewport routes on the sessions group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:id/waveform", GetWaveform(deps))
	group.POST("/:id/waveform", ReplaceWaveform(deps))
	group.GET("/:id/viewport", GetViewport(deps))
}
