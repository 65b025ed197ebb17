package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/notulen-team/e-notulen/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                 *config.Config
	meetingHandler      *Meeting
	exportHandler       *Export
	integrationsHandler *Integrations
	aiHandler           *AI
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, exportHandler *Export, integrationsHandler *Integrations, aiHandler *AI) *Router {
	return &Router{
		cfg:                 cfg,
		meetingHandler:      meetingHandler,
		exportHandler:       exportHandler,
		integrationsHandler: integrationsHandler,
		aiHandler:           aiHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupIntegrationRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupMeetingRoutes configures meeting record routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.PUT("/:id", rt.meetingHandler.UpdateMeeting)

	meetings.POST("/:id/attendees", rt.meetingHandler.AddAttendee)
	meetings.DELETE("/:id/attendees/:attendeeID", rt.meetingHandler.RemoveAttendee)

	meetings.POST("/:id/points", rt.meetingHandler.AddPoint)
	meetings.PATCH("/:id/points/:pointID", rt.meetingHandler.UpdatePoint)
	meetings.DELETE("/:id/points/:pointID", rt.meetingHandler.RemovePoint)

	meetings.POST("/:id/action-items", rt.meetingHandler.AddActionItem)
	meetings.PATCH("/:id/action-items/:itemID", rt.meetingHandler.UpdateActionItem)
	meetings.DELETE("/:id/action-items/:itemID", rt.meetingHandler.RemoveActionItem)

	meetings.GET("/:id/export/pdf", rt.exportHandler.ExportPDF)
	meetings.POST("/:id/sync", rt.exportHandler.SyncToSheets)
}

// setupIntegrationRoutes configures integration settings routes
func (rt *Router) setupIntegrationRoutes(g *echo.Group) {
	integrations := g.Group("/integrations")

	integrations.GET("/sheets", rt.integrationsHandler.GetSheetsWebhook)
	integrations.PUT("/sheets", rt.integrationsHandler.SetSheetsWebhook)
}

// setupAIRoutes configures summarization routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	ai := g.Group("/ai")

	ai.POST("/summarize", rt.aiHandler.Summarize)
	ai.POST("/action-items", rt.aiHandler.ExtractActionItems)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
