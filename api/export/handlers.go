package export

import (
	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	exportService "github.com/cardiolab/ecg-annotator-api/internal/services/export"
)

// GetExport serializes the session's annotation set
// @Summary      Export annotations
// @Description  Produce the interchange document: session metadata plus annotations sorted by time
// @Tags         export
// @Produce      json
// @Param        id path string true "Session UUID"
// @Success      200 {object} export.ExportDocument "Export document"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/export [get]
func GetExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		session, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		annotations, err := deps.AnnotationService.AllSorted(c.Request.Context(), sessionUUID)
		if err != nil {
			types.SendInternalError(c, "Failed to retrieve annotations")
			return
		}

		doc, err := deps.ExportService.Export(annotations, exportService.SessionMeta{
			FileName:  session.FileName,
			Lead:      session.SelectedLead,
			Annotator: session.Annotator,
		})
		if err != nil {
			types.SendInternalError(c, "Failed to build export document")
			return
		}

		types.SendSuccess(c, doc)
	}
}

// PostImport loads an export document into the session
// @Summary      Import annotations
// @Description  Reconstruct annotations from an export document, assigning fresh ids; reports per-item failures
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        id path string true "Session UUID"
// @Param        document body export.ExportDocument true "Export document"
// @Success      200 {object} types.DetectionResponse "Merge outcome"
// @Failure      400 {object} types.ErrorResponse "Malformed document"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id}/import [post]
func PostImport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUUID := c.Param("id")

		if _, err := deps.SessionService.GetSession(c.Request.Context(), sessionUUID); err != nil {
			types.SendNotFound(c, "Session not found")
			return
		}

		var doc exportService.ExportDocument
		if !types.BindJSONOrError(c, &doc) {
			return
		}

		candidates, err := deps.ExportService.Import(&doc)
		if err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		// Imported annotations get fresh ids from the session sequence
		for i := range candidates {
			id, err := deps.SessionService.NextAnnotationID(c.Request.Context(), sessionUUID)
			if err != nil {
				types.SendInternalError(c, "Failed to assign annotation ids")
				return
			}
			candidates[i].AnnotationID = id
		}

		result, err := deps.AnnotationService.MergeBatch(c.Request.Context(), sessionUUID, candidates)
		if err != nil {
			types.SendInternalError(c, "Failed to merge imported annotations")
			return
		}

		types.SendSuccess(c, types.DetectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Accepted:     result.Accepted,
			Failed:       result.Failed,
		})
	}
}
