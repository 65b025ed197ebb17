package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/notulen-team/e-notulen/internal/adapter/dto/minutes"
	aiuse "github.com/notulen-team/e-notulen/internal/usecase/ai"
)

// AI handles summarization requests. Model failures never surface as errors
// here; the usecase degrades to placeholder results.
type AI struct {
	service *aiuse.Service
	logger  *zap.Logger
}

// NewAIHandler creates a new AI handler
func NewAIHandler(service *aiuse.Service, logger *zap.Logger) *AI {
	return &AI{
		service: service,
		logger:  logger,
	}
}

// Summarize handles POST /ai/summarize
func (h *AI) Summarize(c echo.Context) error {
	var req dto.NotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	summary := h.service.Summarize(c.Request().Context(), req.Notes)
	return HandleSuccess(h.logger, c, dto.SummaryResponse{Summary: summary})
}

// ExtractActionItems handles POST /ai/action-items
func (h *AI) ExtractActionItems(c echo.Context) error {
	var req dto.NotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	extracted := h.service.ExtractActionItems(c.Request().Context(), req.Notes)
	items := make([]dto.ExtractedItemDTO, 0, len(extracted))
	for _, item := range extracted {
		items = append(items, dto.ExtractedItemDTO{
			Task:     item.Task,
			Assignee: item.Assignee,
			Deadline: item.Deadline,
		})
	}
	return HandleSuccess(h.logger, c, dto.ActionItemsResponse{Items: items})
}
