package presenter

import (
	dto "github.com/notulen-team/e-notulen/internal/adapter/dto/minutes"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// ToMeetingResponse maps a meeting entity to its API shape.
func ToMeetingResponse(m entities.Meeting) dto.MeetingResponse {
	attendees := make([]dto.AttendeeDTO, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		attendees = append(attendees, dto.AttendeeDTO{
			ID:       a.ID,
			Name:     a.Name,
			Position: a.Position,
		})
	}

	points := make([]dto.NotePointDTO, 0, len(m.Points))
	for _, p := range m.Points {
		points = append(points, dto.NotePointDTO{
			ID:       p.ID,
			Category: string(p.Category),
			Content:  p.Content,
		})
	}

	items := make([]dto.ActionItemDTO, 0, len(m.ActionItems))
	for _, item := range m.ActionItems {
		items = append(items, dto.ActionItemDTO{
			ID:       item.ID,
			Task:     item.Task,
			Assignee: item.Assignee,
			Deadline: item.Deadline,
			Status:   string(item.Status),
		})
	}

	return dto.MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Date:         m.Date,
		Location:     m.Location,
		Attendees:    attendees,
		Points:       points,
		FollowUp:     m.FollowUp,
		Summary:      m.Summary,
		ActionItems:  items,
		Status:       string(m.Status),
		Category:     m.Category,
		ScribeName:   m.ScribeName,
		ApproverName: m.ApproverName,
	}
}

// ToMeetingListResponse maps a collection, preserving order.
func ToMeetingListResponse(meetings []entities.Meeting) dto.MeetingListResponse {
	out := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return dto.MeetingListResponse{
		Meetings: out,
		Total:    len(out),
	}
}

// FromUpdateRequest maps an update request back onto a meeting entity.
func FromUpdateRequest(id string, req dto.UpdateMeetingRequest) entities.Meeting {
	attendees := make([]entities.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, entities.Attendee{
			ID:       a.ID,
			Name:     a.Name,
			Position: a.Position,
		})
	}

	points := make([]entities.NotePoint, 0, len(req.Points))
	for _, p := range req.Points {
		points = append(points, entities.NotePoint{
			ID:       p.ID,
			Category: entities.NoteCategory(p.Category),
			Content:  p.Content,
		})
	}

	items := make([]entities.ActionItem, 0, len(req.ActionItems))
	for _, item := range req.ActionItems {
		items = append(items, entities.ActionItem{
			ID:       item.ID,
			Task:     item.Task,
			Assignee: item.Assignee,
			Deadline: item.Deadline,
			Status:   entities.ActionStatus(item.Status),
		})
	}

	return entities.Meeting{
		ID:           id,
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Attendees:    attendees,
		Points:       points,
		FollowUp:     req.FollowUp,
		Summary:      req.Summary,
		ActionItems:  items,
		Status:       entities.MeetingStatus(req.Status),
		Category:     req.Category,
		ScribeName:   req.ScribeName,
		ApproverName: req.ApproverName,
	}
}
