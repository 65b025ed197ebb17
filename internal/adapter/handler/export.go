package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/notulen-team/e-notulen/internal/adapter/dto/minutes"
	"github.com/notulen-team/e-notulen/internal/adapter/export"
	"github.com/notulen-team/e-notulen/internal/infrastructure/storage"
	"github.com/notulen-team/e-notulen/internal/usecase/minutes"
	"github.com/notulen-team/e-notulen/internal/usecase/sheets"
)

// Export handles document export and spreadsheet sync requests.
type Export struct {
	service minutes.Service
	sync    *sheets.Service
	archive *storage.MinIOClient // nil when no archive is configured
	logger  *zap.Logger
}

// NewExportHandler creates a new export handler. archive may be nil.
func NewExportHandler(service minutes.Service, sync *sheets.Service, archive *storage.MinIOClient, logger *zap.Logger) *Export {
	return &Export{
		service: service,
		sync:    sync,
		archive: archive,
		logger:  logger,
	}
}

// ExportPDF handles GET /meetings/:id/export/pdf
// @Summary      Export a meeting as a printable PDF
// @Description  Renders the meeting as a paginated document and streams it as an attachment
// @Tags         Export
// @Produce      application/pdf
// @Param        id  path  string  true  "Meeting ID"
// @Router       /meetings/{id}/export/pdf [get]
func (h *Export) ExportPDF(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.service.GetMeeting(ctx, c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	doc, err := export.RenderPDF(m)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// Archiving is best effort; a storage failure never blocks the download.
	if h.archive != nil {
		objectName := fmt.Sprintf("exports/%s/%s", time.Now().Format("2006-01"), doc.FileName)
		if err := h.archive.UploadDocument(ctx, objectName, doc.Content, "application/pdf"); err != nil {
			h.logger.Warn("export.archive.failed",
				zap.String("meeting_id", m.ID),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("export.pdf.rendered",
		zap.String("meeting_id", m.ID),
		zap.String("file_name", doc.FileName),
		zap.Int("bytes", len(doc.Content)),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, doc.FileName))
	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}

// SyncToSheets handles POST /meetings/:id/sync
// @Summary      Forward a meeting to the configured spreadsheet webhook
// @Tags         Export
// @Produce      json
// @Param        id  path  string  true  "Meeting ID"
// @Router       /meetings/{id}/sync [post]
func (h *Export) SyncToSheets(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.service.GetMeeting(ctx, c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.sync.SyncMeeting(ctx, m); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.SyncResponse{MeetingID: m.ID, Synced: true})
}
