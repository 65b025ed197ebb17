package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/notulen-team/e-notulen/internal/adapter/dto/minutes"
	"github.com/notulen-team/e-notulen/internal/adapter/presenter"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
	"github.com/notulen-team/e-notulen/internal/usecase/minutes"
)

// Meeting handles meeting record HTTP requests.
type Meeting struct {
	service minutes.Service
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service minutes.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Returns the meeting collection, newest first, optionally filtered by status
// @Tags         Meetings
// @Produce      json
// @Param        status  query  string  false  "Filter by status (Draft|Final|Archived)"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req dto.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings, err := h.service.ListMeetings(c.Request().Context(), entities.MeetingStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get one meeting
// @Tags         Meetings
// @Produce      json
// @Param        id  path  string  true  "Meeting ID"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	m, err := h.service.GetMeeting(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Builds a seeded draft (one empty Pembahasan point), applies the given scalars and prepends it to the collection
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	fields := minutes.ScalarFields{}
	if req.Title != "" {
		fields.Title = &req.Title
	}
	if req.Date != "" {
		fields.Date = &req.Date
	}
	if req.Location != "" {
		fields.Location = &req.Location
	}
	if req.Category != "" {
		fields.Category = &req.Category
	}

	m, err := h.service.CreateMeeting(c.Request().Context(), fields)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary      Save an edited meeting
// @Description  Replaces the entry with the matching id in place; an unknown id is saved as a new entry with a fresh id
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Meeting ID"
// @Router       /meetings/{id} [put]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	var req dto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.SaveMeeting(c.Request().Context(), presenter.FromUpdateRequest(c.Param("id"), req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// AddAttendee handles POST /meetings/:id/attendees
func (h *Meeting) AddAttendee(c echo.Context) error {
	var req dto.AddAttendeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.AddAttendee(c.Request().Context(), c.Param("id"), req.Name, req.Position)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// RemoveAttendee handles DELETE /meetings/:id/attendees/:attendeeID
func (h *Meeting) RemoveAttendee(c echo.Context) error {
	m, err := h.service.RemoveAttendee(c.Request().Context(), c.Param("id"), c.Param("attendeeID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// AddPoint handles POST /meetings/:id/points
func (h *Meeting) AddPoint(c echo.Context) error {
	m, err := h.service.AddPoint(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdatePoint handles PATCH /meetings/:id/points/:pointID
func (h *Meeting) UpdatePoint(c echo.Context) error {
	var req dto.UpdatePointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	upd := minutes.PointUpdate{Content: req.Content}
	if req.Category != nil {
		category := entities.NoteCategory(*req.Category)
		upd.Category = &category
	}

	m, err := h.service.UpdatePoint(c.Request().Context(), c.Param("id"), c.Param("pointID"), upd)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// RemovePoint handles DELETE /meetings/:id/points/:pointID
func (h *Meeting) RemovePoint(c echo.Context) error {
	m, err := h.service.RemovePoint(c.Request().Context(), c.Param("id"), c.Param("pointID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// AddActionItem handles POST /meetings/:id/action-items
func (h *Meeting) AddActionItem(c echo.Context) error {
	m, err := h.service.AddActionItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdateActionItem handles PATCH /meetings/:id/action-items/:itemID
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	var req dto.UpdateActionItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	upd := minutes.ActionItemUpdate{
		Task:     req.Task,
		Assignee: req.Assignee,
		Deadline: req.Deadline,
	}
	if req.Status != nil {
		status := entities.ActionStatus(*req.Status)
		upd.Status = &status
	}

	m, err := h.service.UpdateActionItem(c.Request().Context(), c.Param("id"), c.Param("itemID"), upd)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// RemoveActionItem handles DELETE /meetings/:id/action-items/:itemID
func (h *Meeting) RemoveActionItem(c echo.Context) error {
	m, err := h.service.RemoveActionItem(c.Request().Context(), c.Param("id"), c.Param("itemID"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}
