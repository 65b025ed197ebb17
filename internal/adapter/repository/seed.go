package repository

import "github.com/notulen-team/e-notulen/internal/domain/entities"

// SeedMeetings is the collection written on first start, matching the sample
// record users see before creating anything of their own.
func SeedMeetings() []entities.Meeting {
	return []entities.Meeting{
		{
			ID:       "1",
			Title:    "Rapat Sinkronisasi Program Kerja 2024",
			Date:     "2024-03-20",
			Location: "Ruang Rapat Candi Bentar",
			Attendees: []entities.Attendee{
				{ID: "1", Name: "Dr. Ahmad Subagjo", Position: "Kepala Dinas"},
				{ID: "2", Name: "Siti Rohani, M.Si", Position: "Kabid Administrasi"},
			},
			Points: []entities.NotePoint{
				{ID: "p1", Category: entities.NoteCategoryPembahasan, Content: "Rapat membahas sinkronisasi anggaran antara bidang A dan B."},
				{ID: "p2", Category: entities.NoteCategoryKendala, Content: "Ditemukan adanya overlap pada pos belanja pegawai."},
			},
			FollowUp: "Revisi RKA-SKPD segera dilakukan.",
			Summary:  "Diskusi utama fokus pada efisiensi anggaran belanja pegawai.",
			ActionItems: []entities.ActionItem{
				{ID: "101", Task: "Revisi RKA-SKPD Bidang B", Assignee: "Siti Rohani", Deadline: "2024-03-25", Status: entities.ActionStatusPending},
			},
			Status:   entities.MeetingStatusFinal,
			Category: "Manajemen",
		},
	}
}
