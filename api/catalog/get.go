package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// GetAnnotationTypes lists the supported annotation types
// @Summary      List annotation types
// @Description  Retrieve every supported annotation type with its display color and marker symbol
// @Tags         catalog
// @Produce      json
// @Success      200 {object} object{annotationTypes=[]models.AnnotationTypeInfo} "Annotation type catalog"
// @Router       /api/v1/annotation-types [get]
func GetAnnotationTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"annotationTypes": models.AnnotationTypes,
			"count":           len(models.AnnotationTypes),
		})
	}
}

// GetLeads lists the 12 standard leads
// @Summary      List leads
// @Description  Retrieve the 12-lead set in display order
// @Tags         catalog
// @Produce      json
// @Success      200 {object} object{leads=[]models.Lead} "Lead catalog"
// @Router       /api/v1/leads [get]
func GetLeads() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"leads": models.Leads,
			"count": len(models.Leads),
		})
	}
}
