package export

import (
	"fmt"
	"strings"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// SheetRow is one meeting flattened to a single spreadsheet row. Field order
// matches the column order the receiving Apps Script appends.
type SheetRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Attendees   string `json:"attendees"`
	Summary     string `json:"summary"`
	Points      string `json:"points"`
	FollowUp    string `json:"followUp"`
	ActionItems string `json:"actionItems"`
	Scribe      string `json:"scribe"`
	Approver    string `json:"approver"`
}

// FlattenMeeting turns a meeting into its spreadsheet row. Deterministic: the
// same meeting value always yields the same row. Performs no I/O.
func FlattenMeeting(m entities.Meeting) (SheetRow, error) {
	if err := m.Validate(); err != nil {
		return SheetRow{}, apperrors.ErrInvalidRecord(m.ID, err)
	}

	attendees := make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		attendees = append(attendees, fmt.Sprintf("%s (%s)", a.Name, a.Position))
	}

	points := make([]string, 0, len(m.Points))
	for _, p := range m.Points {
		points = append(points, fmt.Sprintf("[%s] %s", strings.ToUpper(string(p.Category)), p.Content))
	}

	items := make([]string, 0, len(m.ActionItems))
	for _, item := range m.ActionItems {
		items = append(items, fmt.Sprintf("%s (PJ: %s, Deadline: %s)", item.Task, item.Assignee, item.Deadline))
	}

	return SheetRow{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Location:    m.Location,
		Attendees:   strings.Join(attendees, ", "),
		Summary:     m.Summary,
		Points:      strings.Join(points, "\n"),
		FollowUp:    m.FollowUp,
		ActionItems: strings.Join(items, "\n"),
		Scribe:      m.ScribeName,
		Approver:    m.ApproverName,
	}, nil
}
