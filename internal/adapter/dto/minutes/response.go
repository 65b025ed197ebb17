package minutes

// AttendeeDTO mirrors one meeting participant on the wire.
type AttendeeDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// NotePointDTO mirrors one discussion entry on the wire.
type NotePointDTO struct {
	ID       string `json:"id"`
	Category string `json:"category" validate:"required,oneof=Pembahasan Keputusan Catatan Kendala"`
	Content  string `json:"content"`
}

// ActionItemDTO mirrors one action item on the wire.
type ActionItemDTO struct {
	ID       string `json:"id"`
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Deadline string `json:"deadline"`
	Status   string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

// MeetingResponse is the full meeting record returned by the API.
type MeetingResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Date         string          `json:"date"`
	Location     string          `json:"location"`
	Attendees    []AttendeeDTO   `json:"attendees"`
	Points       []NotePointDTO  `json:"points"`
	FollowUp     string          `json:"followUp"`
	Summary      string          `json:"summary"`
	ActionItems  []ActionItemDTO `json:"actionItems"`
	Status       string          `json:"status"`
	Category     string          `json:"category"`
	ScribeName   string          `json:"scribeName"`
	ApproverName string          `json:"approverName"`
}

// MeetingListResponse wraps the meeting collection.
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}

// IntegrationResponse reports the sheets webhook configuration. The URL is
// echoed back as stored; there is nothing secret about it.
type IntegrationResponse struct {
	WebhookURL string `json:"webhook_url"`
	Configured bool   `json:"configured"`
}

// SummaryResponse carries a generated summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ActionItemsResponse carries extracted action items.
type ActionItemsResponse struct {
	Items []ExtractedItemDTO `json:"items"`
}

// ExtractedItemDTO is one action item found in raw notes.
type ExtractedItemDTO struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// SyncResponse reports a completed spreadsheet sync.
type SyncResponse struct {
	MeetingID string `json:"meeting_id"`
	Synced    bool   `json:"synced"`
}
