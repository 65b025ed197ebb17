package minutes

import (
	"reflect"
	"testing"

	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

func draftWithID(id string) entities.Meeting {
	m := entities.NewMeeting()
	m.ID = id
	m.Title = "Rapat " + id
	return m
}

func TestAddAttendee(t *testing.T) {
	m := entities.NewMeeting()

	next, err := AddAttendee(m, "Budi Santoso", "Kepala Bagian Umum")
	if err != nil {
		t.Fatalf("AddAttendee returned error: %v", err)
	}
	if len(next.Attendees) != 1 {
		t.Fatalf("expected 1 attendee, got %d", len(next.Attendees))
	}
	a := next.Attendees[0]
	if a.ID == "" {
		t.Error("expected a generated attendee id")
	}
	if a.Name != "Budi Santoso" || a.Position != "Kepala Bagian Umum" {
		t.Errorf("unexpected attendee: %+v", a)
	}
	if len(m.Attendees) != 0 {
		t.Error("input meeting was mutated")
	}
}

func TestAddAttendeeRejectsEmptyName(t *testing.T) {
	m := entities.NewMeeting()

	if _, err := AddAttendee(m, "   ", "Staf"); err == nil {
		t.Fatal("expected error for blank attendee name")
	}

	next, err := AddAttendee(m, "Siti", "")
	if err != nil {
		t.Fatalf("empty position should be allowed: %v", err)
	}
	if next.Attendees[0].Position != "" {
		t.Errorf("unexpected position %q", next.Attendees[0].Position)
	}
}

func TestRemoveAttendee(t *testing.T) {
	m := entities.NewMeeting()
	m, _ = AddAttendee(m, "Budi", "Staf")
	m, _ = AddAttendee(m, "Siti", "Auditor")

	next := RemoveAttendee(m, m.Attendees[0].ID)
	if len(next.Attendees) != 1 {
		t.Fatalf("expected 1 attendee after removal, got %d", len(next.Attendees))
	}
	if next.Attendees[0].Name != "Siti" {
		t.Errorf("removed the wrong attendee: %+v", next.Attendees)
	}
	if len(m.Attendees) != 2 {
		t.Error("input meeting was mutated")
	}
}

func TestRemoveAttendeeAbsentIDIsNoOp(t *testing.T) {
	m := entities.NewMeeting()
	m, _ = AddAttendee(m, "Budi", "Staf")

	next := RemoveAttendee(m, "does-not-exist")
	if !reflect.DeepEqual(next, m) {
		t.Errorf("removing an absent id should return the input unchanged")
	}
}

func TestAddPointDefaults(t *testing.T) {
	m := entities.NewMeeting()

	next := AddPoint(m)
	if len(next.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(next.Points))
	}
	p := next.Points[1]
	if p.ID == "" {
		t.Error("expected a generated point id")
	}
	if p.Category != entities.NoteCategoryPembahasan {
		t.Errorf("new point category = %q, want Pembahasan", p.Category)
	}
	if p.Content != "" {
		t.Errorf("new point content = %q, want empty", p.Content)
	}
}

func TestUpdatePoint(t *testing.T) {
	m := entities.NewMeeting()
	pointID := m.Points[0].ID

	category := entities.NoteCategoryKeputusan
	content := "Anggaran disetujui"
	next, err := UpdatePoint(m, pointID, PointUpdate{Category: &category, Content: &content})
	if err != nil {
		t.Fatalf("UpdatePoint returned error: %v", err)
	}
	if next.Points[0].Category != entities.NoteCategoryKeputusan {
		t.Errorf("category = %q, want Keputusan", next.Points[0].Category)
	}
	if next.Points[0].Content != "Anggaran disetujui" {
		t.Errorf("content = %q", next.Points[0].Content)
	}
	if m.Points[0].Content != "" {
		t.Error("input meeting was mutated")
	}
}

func TestUpdatePointPartial(t *testing.T) {
	m := entities.NewMeeting()
	pointID := m.Points[0].ID
	content := "Hanya isi yang berubah"

	next, err := UpdatePoint(m, pointID, PointUpdate{Content: &content})
	if err != nil {
		t.Fatalf("UpdatePoint returned error: %v", err)
	}
	if next.Points[0].Category != entities.NoteCategoryPembahasan {
		t.Errorf("untouched category changed to %q", next.Points[0].Category)
	}
}

func TestUpdatePointRejectsBadInput(t *testing.T) {
	m := entities.NewMeeting()

	if _, err := UpdatePoint(m, "nope", PointUpdate{}); err == nil {
		t.Error("expected error for unknown point id")
	}

	bad := entities.NoteCategory("Gosip")
	if _, err := UpdatePoint(m, m.Points[0].ID, PointUpdate{Category: &bad}); err == nil {
		t.Error("expected error for invalid category")
	}
}

func TestRemovePoint(t *testing.T) {
	m := entities.NewMeeting()
	m = AddPoint(m)
	keep := m.Points[1].ID

	next := RemovePoint(m, m.Points[0].ID)
	if len(next.Points) != 1 || next.Points[0].ID != keep {
		t.Errorf("unexpected points after removal: %+v", next.Points)
	}

	same := RemovePoint(m, "absent")
	if !reflect.DeepEqual(same, m) {
		t.Error("removing an absent id should return the input unchanged")
	}
}

func TestActionItemLifecycle(t *testing.T) {
	m := entities.NewMeeting()

	m = AddActionItem(m)
	if len(m.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(m.ActionItems))
	}
	item := m.ActionItems[0]
	if item.Status != entities.ActionStatusPending {
		t.Errorf("new item status = %q, want Pending", item.Status)
	}

	task := "Menyusun laporan triwulan"
	assignee := "Siti"
	m, err := UpdateActionItem(m, item.ID, ActionItemUpdate{Task: &task, Assignee: &assignee})
	if err != nil {
		t.Fatalf("UpdateActionItem returned error: %v", err)
	}
	if m.ActionItems[0].Task != task || m.ActionItems[0].Assignee != assignee {
		t.Errorf("unexpected item after update: %+v", m.ActionItems[0])
	}
	if m.ActionItems[0].Status != entities.ActionStatusPending {
		t.Errorf("status changed unexpectedly to %q", m.ActionItems[0].Status)
	}

	done := entities.ActionStatusCompleted
	m, err = UpdateActionItem(m, item.ID, ActionItemUpdate{Status: &done})
	if err != nil {
		t.Fatalf("UpdateActionItem returned error: %v", err)
	}
	if m.ActionItems[0].Status != entities.ActionStatusCompleted {
		t.Errorf("status = %q, want Completed", m.ActionItems[0].Status)
	}

	m = RemoveActionItem(m, item.ID)
	if len(m.ActionItems) != 0 {
		t.Errorf("expected no action items, got %+v", m.ActionItems)
	}
}

func TestUpdateActionItemRejectsBadInput(t *testing.T) {
	m := AddActionItem(entities.NewMeeting())

	if _, err := UpdateActionItem(m, "nope", ActionItemUpdate{}); err == nil {
		t.Error("expected error for unknown item id")
	}

	bad := entities.ActionStatus("Selesai")
	if _, err := UpdateActionItem(m, m.ActionItems[0].ID, ActionItemUpdate{Status: &bad}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestSetScalars(t *testing.T) {
	m := entities.NewMeeting()

	title := "Rapat Evaluasi"
	status := entities.MeetingStatusFinal
	next, err := SetScalars(m, ScalarFields{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("SetScalars returned error: %v", err)
	}
	if next.Title != "Rapat Evaluasi" || next.Status != entities.MeetingStatusFinal {
		t.Errorf("unexpected meeting after update: title=%q status=%q", next.Title, next.Status)
	}
	if next.Category != "Rapat Koordinasi" {
		t.Errorf("untouched category changed to %q", next.Category)
	}

	bad := entities.MeetingStatus("Terkubur")
	if _, err := SetScalars(m, ScalarFields{Status: &bad}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestSaveReplacesMatchingIDInPlace(t *testing.T) {
	collection := []entities.Meeting{draftWithID("a"), draftWithID("b"), draftWithID("c")}

	edited := draftWithID("b")
	edited.Title = "Rapat b (revisi)"

	next, saved := Save(collection, edited)

	if saved.ID != "b" {
		t.Errorf("saved id = %q, want b", saved.ID)
	}
	if len(next) != 3 {
		t.Fatalf("collection length = %d, want 3", len(next))
	}
	if next[0].ID != "a" || next[1].ID != "b" || next[2].ID != "c" {
		t.Errorf("ordering changed: %v %v %v", next[0].ID, next[1].ID, next[2].ID)
	}
	if next[1].Title != "Rapat b (revisi)" {
		t.Errorf("entry not replaced: %q", next[1].Title)
	}
	if collection[1].Title != "Rapat b" {
		t.Error("input collection was mutated")
	}
}

func TestSavePrependsNewMeetings(t *testing.T) {
	collection := []entities.Meeting{draftWithID("a")}

	next, saved := Save(collection, entities.NewMeeting())
	if saved.ID == "" {
		t.Fatal("expected a generated meeting id")
	}
	if len(next) != 2 || next[0].ID != saved.ID || next[1].ID != "a" {
		t.Errorf("new meeting should be prepended: %+v", next)
	}

	// An id that matches nothing is discarded in favor of a fresh one.
	ghost := draftWithID("ghost")
	next, saved = Save(next, ghost)
	if saved.ID == "ghost" {
		t.Error("unknown id should be replaced with a fresh one")
	}
	if len(next) != 3 || next[0].ID != saved.ID {
		t.Errorf("unexpected collection after ghost save: %+v", next)
	}
}

func TestEntityIDsStayUnique(t *testing.T) {
	m := entities.NewMeeting()
	for i := 0; i < 20; i++ {
		m, _ = AddAttendee(m, "Peserta", "Staf")
		m = AddPoint(m)
		m = AddActionItem(m)
	}
	m = RemoveAttendee(m, m.Attendees[0].ID)
	m = RemovePoint(m, m.Points[3].ID)
	m = RemoveActionItem(m, m.ActionItems[7].ID)
	m, _ = AddAttendee(m, "Peserta Baru", "")

	seen := map[string]bool{}
	for _, a := range m.Attendees {
		if seen[a.ID] {
			t.Fatalf("duplicate attendee id %q", a.ID)
		}
		seen[a.ID] = true
	}
	seen = map[string]bool{}
	for _, p := range m.Points {
		if seen[p.ID] {
			t.Fatalf("duplicate point id %q", p.ID)
		}
		seen[p.ID] = true
	}
	seen = map[string]bool{}
	for _, item := range m.ActionItems {
		if seen[item.ID] {
			t.Fatalf("duplicate action item id %q", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestSaveGeneratesUniqueIDs(t *testing.T) {
	var collection []entities.Meeting
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		var saved entities.Meeting
		collection, saved = Save(collection, entities.NewMeeting())
		if seen[saved.ID] {
			t.Fatalf("duplicate meeting id %q", saved.ID)
		}
		seen[saved.ID] = true
	}
}
