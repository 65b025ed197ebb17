package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/notulen-team/e-notulen/internal/adapter/dto/minutes"
	"github.com/notulen-team/e-notulen/internal/domain/repositories"
)

// Integrations handles integration settings requests.
type Integrations struct {
	settings repositories.SettingsRepository
	logger   *zap.Logger
}

// NewIntegrationsHandler creates a new integrations handler
func NewIntegrationsHandler(settings repositories.SettingsRepository, logger *zap.Logger) *Integrations {
	return &Integrations{
		settings: settings,
		logger:   logger,
	}
}

// GetSheetsWebhook handles GET /integrations/sheets
func (h *Integrations) GetSheetsWebhook(c echo.Context) error {
	url, err := h.settings.GetWebhookURL(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dto.IntegrationResponse{
		WebhookURL: url,
		Configured: url != "",
	})
}

// SetSheetsWebhook handles PUT /integrations/sheets
func (h *Integrations) SetSheetsWebhook(c echo.Context) error {
	var req dto.SetWebhookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.settings.SetWebhookURL(c.Request().Context(), req.URL); err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("integrations.sheets.configured")
	return HandleSuccess(h.logger, c, dto.IntegrationResponse{
		WebhookURL: req.URL,
		Configured: true,
	})
}
