package minutes

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// Editing operations are pure: they take the current meeting by value and
// return the next version, never mutating the input. Collections that an
// operation does not touch are shared with the input.

// newID returns a fresh entity id, unique for the lifetime of the session.
func newID() string {
	return uuid.NewString()
}

// PointUpdate carries the fields of a note point that may change. Nil fields
// are left untouched.
type PointUpdate struct {
	Category *entities.NoteCategory
	Content  *string
}

// ActionItemUpdate carries the fields of an action item that may change.
type ActionItemUpdate struct {
	Task     *string
	Assignee *string
	Deadline *string
	Status   *entities.ActionStatus
}

// AddAttendee appends a new attendee with a fresh id. An empty name is
// rejected; position may be empty.
func AddAttendee(m entities.Meeting, name, position string) (entities.Meeting, error) {
	if strings.TrimSpace(name) == "" {
		return m, apperrors.ErrInvalidInput("attendee name must not be empty")
	}
	attendees := make([]entities.Attendee, len(m.Attendees), len(m.Attendees)+1)
	copy(attendees, m.Attendees)
	m.Attendees = append(attendees, entities.Attendee{
		ID:       newID(),
		Name:     name,
		Position: position,
	})
	return m, nil
}

// RemoveAttendee removes the attendee with the given id. Removing an absent
// id is a no-op, not an error.
func RemoveAttendee(m entities.Meeting, id string) entities.Meeting {
	idx := -1
	for i, a := range m.Attendees {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m
	}
	attendees := make([]entities.Attendee, 0, len(m.Attendees)-1)
	attendees = append(attendees, m.Attendees[:idx]...)
	attendees = append(attendees, m.Attendees[idx+1:]...)
	m.Attendees = attendees
	return m
}

// AddPoint appends an empty Pembahasan point with a fresh id.
func AddPoint(m entities.Meeting) entities.Meeting {
	points := make([]entities.NotePoint, len(m.Points), len(m.Points)+1)
	copy(points, m.Points)
	m.Points = append(points, entities.NotePoint{
		ID:       newID(),
		Category: entities.NoteCategoryPembahasan,
		Content:  "",
	})
	return m
}

// UpdatePoint merges the given fields into the matching point. An unknown id
// or an out-of-range category is rejected.
func UpdatePoint(m entities.Meeting, id string, upd PointUpdate) (entities.Meeting, error) {
	if upd.Category != nil && !upd.Category.IsValid() {
		return m, apperrors.ErrInvalidInput(fmt.Sprintf("invalid note category %q", *upd.Category))
	}
	idx := -1
	for i, p := range m.Points {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m, apperrors.ErrInvalidInput(fmt.Sprintf("no point with id %q", id))
	}
	points := make([]entities.NotePoint, len(m.Points))
	copy(points, m.Points)
	if upd.Category != nil {
		points[idx].Category = *upd.Category
	}
	if upd.Content != nil {
		points[idx].Content = *upd.Content
	}
	m.Points = points
	return m, nil
}

// RemovePoint removes the point with the given id; absent id is a no-op.
func RemovePoint(m entities.Meeting, id string) entities.Meeting {
	idx := -1
	for i, p := range m.Points {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m
	}
	points := make([]entities.NotePoint, 0, len(m.Points)-1)
	points = append(points, m.Points[:idx]...)
	points = append(points, m.Points[idx+1:]...)
	m.Points = points
	return m
}

// AddActionItem appends an empty action item with status Pending.
func AddActionItem(m entities.Meeting) entities.Meeting {
	items := make([]entities.ActionItem, len(m.ActionItems), len(m.ActionItems)+1)
	copy(items, m.ActionItems)
	m.ActionItems = append(items, entities.ActionItem{
		ID:     newID(),
		Status: entities.ActionStatusPending,
	})
	return m
}

// UpdateActionItem merges the given fields into the matching item. An unknown
// id or an out-of-range status is rejected.
func UpdateActionItem(m entities.Meeting, id string, upd ActionItemUpdate) (entities.Meeting, error) {
	if upd.Status != nil && !upd.Status.IsValid() {
		return m, apperrors.ErrInvalidInput(fmt.Sprintf("invalid action item status %q", *upd.Status))
	}
	idx := -1
	for i, item := range m.ActionItems {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m, apperrors.ErrInvalidInput(fmt.Sprintf("no action item with id %q", id))
	}
	items := make([]entities.ActionItem, len(m.ActionItems))
	copy(items, m.ActionItems)
	if upd.Task != nil {
		items[idx].Task = *upd.Task
	}
	if upd.Assignee != nil {
		items[idx].Assignee = *upd.Assignee
	}
	if upd.Deadline != nil {
		items[idx].Deadline = *upd.Deadline
	}
	if upd.Status != nil {
		items[idx].Status = *upd.Status
	}
	m.ActionItems = items
	return m, nil
}

// RemoveActionItem removes the item with the given id; absent id is a no-op.
func RemoveActionItem(m entities.Meeting, id string) entities.Meeting {
	idx := -1
	for i, item := range m.ActionItems {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m
	}
	items := make([]entities.ActionItem, 0, len(m.ActionItems)-1)
	items = append(items, m.ActionItems[:idx]...)
	items = append(items, m.ActionItems[idx+1:]...)
	m.ActionItems = items
	return m
}

// ScalarFields carries the top-level scalar fields of a meeting. Pointer
// fields left nil are not changed.
type ScalarFields struct {
	Title        *string
	Date         *string
	Location     *string
	Category     *string
	Status       *entities.MeetingStatus
	Summary      *string
	FollowUp     *string
	ScribeName   *string
	ApproverName *string
}

// SetScalars applies top-level scalar updates. Status values outside the
// allowed set are rejected.
func SetScalars(m entities.Meeting, fields ScalarFields) (entities.Meeting, error) {
	if fields.Status != nil && !fields.Status.IsValid() {
		return m, apperrors.ErrInvalidInput(fmt.Sprintf("invalid meeting status %q", *fields.Status))
	}
	if fields.Title != nil {
		m.Title = *fields.Title
	}
	if fields.Date != nil {
		m.Date = *fields.Date
	}
	if fields.Location != nil {
		m.Location = *fields.Location
	}
	if fields.Category != nil {
		m.Category = *fields.Category
	}
	if fields.Status != nil {
		m.Status = *fields.Status
	}
	if fields.Summary != nil {
		m.Summary = *fields.Summary
	}
	if fields.FollowUp != nil {
		m.FollowUp = *fields.FollowUp
	}
	if fields.ScribeName != nil {
		m.ScribeName = *fields.ScribeName
	}
	if fields.ApproverName != nil {
		m.ApproverName = *fields.ApproverName
	}
	return m, nil
}

// Save applies the aggregate-level save contract to a collection: a meeting
// whose id matches an existing entry replaces that entry in place; anything
// else gets a fresh id and is prepended. The input slice is not mutated.
func Save(collection []entities.Meeting, m entities.Meeting) ([]entities.Meeting, entities.Meeting) {
	if m.ID != "" {
		for i, existing := range collection {
			if existing.ID == m.ID {
				next := make([]entities.Meeting, len(collection))
				copy(next, collection)
				next[i] = m
				return next, m
			}
		}
	}
	m.ID = newID()
	next := make([]entities.Meeting, 0, len(collection)+1)
	next = append(next, m)
	next = append(next, collection...)
	return next, m
}
