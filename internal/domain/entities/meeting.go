package entities

import (
	"fmt"
	"time"
)

// NoteCategory classifies one discussion entry.
type NoteCategory string

const (
	NoteCategoryPembahasan NoteCategory = "Pembahasan"
	NoteCategoryKeputusan  NoteCategory = "Keputusan"
	NoteCategoryCatatan    NoteCategory = "Catatan"
	NoteCategoryKendala    NoteCategory = "Kendala"
)

// IsValid reports whether the category is one of the allowed values.
func (c NoteCategory) IsValid() bool {
	switch c {
	case NoteCategoryPembahasan, NoteCategoryKeputusan, NoteCategoryCatatan, NoteCategoryKendala:
		return true
	}
	return false
}

// ActionStatus is the progress state of an action item.
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "Pending"
	ActionStatusInProgress ActionStatus = "In Progress"
	ActionStatusCompleted  ActionStatus = "Completed"
)

// IsValid reports whether the status is one of the allowed values.
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusCompleted:
		return true
	}
	return false
}

// MeetingStatus is purely descriptive; the model enforces no transitions.
type MeetingStatus string

const (
	MeetingStatusDraft    MeetingStatus = "Draft"
	MeetingStatusFinal    MeetingStatus = "Final"
	MeetingStatusArchived MeetingStatus = "Archived"
)

// IsValid reports whether the status is one of the allowed values.
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusDraft, MeetingStatusFinal, MeetingStatusArchived:
		return true
	}
	return false
}

// Attendee is one meeting participant. Attendees are only ever added and
// removed, never edited in place.
type Attendee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// NotePoint is one categorized discussion entry; slice order is discussion
// order.
type NotePoint struct {
	ID       string       `json:"id"`
	Category NoteCategory `json:"category"`
	Content  string       `json:"content"`
}

// ActionItem is one assigned follow-up task.
type ActionItem struct {
	ID       string       `json:"id"`
	Task     string       `json:"task"`
	Assignee string       `json:"assignee"`
	Deadline string       `json:"deadline"`
	Status   ActionStatus `json:"status"`
}

// Meeting is the root aggregate for one meeting's minutes. ID is empty for an
// unsaved draft and assigned exactly once, at first save.
type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Location     string        `json:"location"`
	Attendees    []Attendee    `json:"attendees"`
	Points       []NotePoint   `json:"points"`
	FollowUp     string        `json:"followUp"`
	Summary      string        `json:"summary,omitempty"`
	ActionItems  []ActionItem  `json:"actionItems"`
	Status       MeetingStatus `json:"status"`
	Category     string        `json:"category"`
	ScribeName   string        `json:"scribeName,omitempty"`
	ApproverName string        `json:"approverName,omitempty"`
}

// NewMeeting constructs an unsaved draft with today's date and a single empty
// Pembahasan point. The seeded point is a UX default, not an invariant; it may
// be removed later.
func NewMeeting() Meeting {
	return Meeting{
		Date:        time.Now().Format("2006-01-02"),
		Attendees:   []Attendee{},
		Points:      []NotePoint{{ID: "1", Category: NoteCategoryPembahasan, Content: ""}},
		ActionItems: []ActionItem{},
		Status:      MeetingStatusDraft,
		Category:    "Rapat Koordinasi",
	}
}

// Normalize replaces nil collections with empty slices. Applied when loading
// stored records so downstream code never branches on nil.
func (m *Meeting) Normalize() {
	if m.Attendees == nil {
		m.Attendees = []Attendee{}
	}
	if m.Points == nil {
		m.Points = []NotePoint{}
	}
	if m.ActionItems == nil {
		m.ActionItems = []ActionItem{}
	}
}

// Validate checks that enum-valued fields carry allowed values. Export
// adapters call this before rendering; a failure aborts export for this
// meeting only.
func (m *Meeting) Validate() error {
	if !m.Status.IsValid() {
		return fmt.Errorf("invalid meeting status %q", m.Status)
	}
	for _, p := range m.Points {
		if !p.Category.IsValid() {
			return fmt.Errorf("point %s: invalid category %q", p.ID, p.Category)
		}
	}
	for _, item := range m.ActionItems {
		if !item.Status.IsValid() {
			return fmt.Errorf("action item %s: invalid status %q", item.ID, item.Status)
		}
	}
	return nil
}
