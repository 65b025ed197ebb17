package minutes

// CreateMeetingRequest carries the top-level scalars for a new meeting; the
// server seeds everything else (draft status, one empty Pembahasan point).
type CreateMeetingRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Location string `json:"location"`
	Category string `json:"category"`
}

// UpdateMeetingRequest is the full edited meeting; the id comes from the
// path.
type UpdateMeetingRequest struct {
	Title        string          `json:"title"`
	Date         string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Location     string          `json:"location"`
	Attendees    []AttendeeDTO   `json:"attendees"`
	Points       []NotePointDTO  `json:"points" validate:"dive"`
	FollowUp     string          `json:"followUp"`
	Summary      string          `json:"summary"`
	ActionItems  []ActionItemDTO `json:"actionItems" validate:"dive"`
	Status       string          `json:"status" validate:"required,oneof=Draft Final Archived"`
	Category     string          `json:"category"`
	ScribeName   string          `json:"scribeName"`
	ApproverName string          `json:"approverName"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=Draft Final Archived"`
}

// AddAttendeeRequest represents the request to add an attendee
type AddAttendeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Position string `json:"position" validate:"max=255"`
}

// UpdatePointRequest carries a partial note point update; omitted fields are
// left untouched.
type UpdatePointRequest struct {
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=Pembahasan Keputusan Catatan Kendala"`
	Content  *string `json:"content,omitempty"`
}

// UpdateActionItemRequest carries a partial action item update.
type UpdateActionItemRequest struct {
	Task     *string `json:"task,omitempty"`
	Assignee *string `json:"assignee,omitempty"`
	Deadline *string `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// SetWebhookRequest represents the request to configure the sheets webhook
type SetWebhookRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// NotesRequest carries raw notes for the AI endpoints.
type NotesRequest struct {
	Notes string `json:"notes" validate:"required,min=1"`
}
