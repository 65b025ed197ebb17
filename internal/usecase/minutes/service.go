package minutes

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
	"github.com/notulen-team/e-notulen/internal/domain/repositories"
)

// Service defines the meeting minutes operations exposed to handlers.
type Service interface {
	// ListMeetings returns the collection, newest first, optionally filtered
	// by status.
	ListMeetings(ctx context.Context, status entities.MeetingStatus) ([]entities.Meeting, error)

	// GetMeeting retrieves one meeting by id.
	GetMeeting(ctx context.Context, id string) (entities.Meeting, error)

	// CreateMeeting builds a seeded draft, applies the given scalars and
	// saves it as a new entry.
	CreateMeeting(ctx context.Context, fields ScalarFields) (entities.Meeting, error)

	// SaveMeeting persists an edited meeting: replace in place when its id
	// matches an existing entry, prepend with a fresh id otherwise.
	SaveMeeting(ctx context.Context, m entities.Meeting) (entities.Meeting, error)

	AddAttendee(ctx context.Context, meetingID, name, position string) (entities.Meeting, error)
	RemoveAttendee(ctx context.Context, meetingID, attendeeID string) (entities.Meeting, error)

	AddPoint(ctx context.Context, meetingID string) (entities.Meeting, error)
	UpdatePoint(ctx context.Context, meetingID, pointID string, upd PointUpdate) (entities.Meeting, error)
	RemovePoint(ctx context.Context, meetingID, pointID string) (entities.Meeting, error)

	AddActionItem(ctx context.Context, meetingID string) (entities.Meeting, error)
	UpdateActionItem(ctx context.Context, meetingID, itemID string, upd ActionItemUpdate) (entities.Meeting, error)
	RemoveActionItem(ctx context.Context, meetingID, itemID string) (entities.Meeting, error)
}

// MinutesService implements Service on top of the persistence gateway. Every
// mutation loads the whole collection, applies a pure editing operation and
// writes the whole collection back.
type MinutesService struct {
	repo   repositories.MeetingRepository
	logger *zap.Logger
}

// NewMinutesService creates the minutes service.
func NewMinutesService(repo repositories.MeetingRepository, logger *zap.Logger) *MinutesService {
	return &MinutesService{
		repo:   repo,
		logger: logger,
	}
}

func (s *MinutesService) ListMeetings(ctx context.Context, status entities.MeetingStatus) ([]entities.Meeting, error) {
	meetings, err := s.repo.LoadCollection(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return meetings, nil
	}
	filtered := make([]entities.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.Status == status {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (s *MinutesService) GetMeeting(ctx context.Context, id string) (entities.Meeting, error) {
	meetings, err := s.repo.LoadCollection(ctx)
	if err != nil {
		return entities.Meeting{}, err
	}
	for _, m := range meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return entities.Meeting{}, apperrors.ErrMeetingNotFound(id)
}

func (s *MinutesService) CreateMeeting(ctx context.Context, fields ScalarFields) (entities.Meeting, error) {
	draft, err := SetScalars(entities.NewMeeting(), fields)
	if err != nil {
		return entities.Meeting{}, err
	}
	return s.SaveMeeting(ctx, draft)
}

func (s *MinutesService) SaveMeeting(ctx context.Context, m entities.Meeting) (entities.Meeting, error) {
	m.Normalize()
	if err := m.Validate(); err != nil {
		return entities.Meeting{}, apperrors.ErrInvalidInput(err.Error())
	}
	meetings, err := s.repo.LoadCollection(ctx)
	if err != nil {
		return entities.Meeting{}, err
	}
	next, saved := Save(meetings, m)
	if err := s.repo.SaveCollection(ctx, next); err != nil {
		return entities.Meeting{}, err
	}
	s.logger.Info("meeting.saved",
		zap.String("meeting_id", saved.ID),
		zap.String("status", string(saved.Status)),
	)
	return saved, nil
}

func (s *MinutesService) AddAttendee(ctx context.Context, meetingID, name, position string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return AddAttendee(m, name, position)
	})
}

func (s *MinutesService) RemoveAttendee(ctx context.Context, meetingID, attendeeID string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return RemoveAttendee(m, attendeeID), nil
	})
}

func (s *MinutesService) AddPoint(ctx context.Context, meetingID string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return AddPoint(m), nil
	})
}

func (s *MinutesService) UpdatePoint(ctx context.Context, meetingID, pointID string, upd PointUpdate) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return UpdatePoint(m, pointID, upd)
	})
}

func (s *MinutesService) RemovePoint(ctx context.Context, meetingID, pointID string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return RemovePoint(m, pointID), nil
	})
}

func (s *MinutesService) AddActionItem(ctx context.Context, meetingID string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return AddActionItem(m), nil
	})
}

func (s *MinutesService) UpdateActionItem(ctx context.Context, meetingID, itemID string, upd ActionItemUpdate) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return UpdateActionItem(m, itemID, upd)
	})
}

func (s *MinutesService) RemoveActionItem(ctx context.Context, meetingID, itemID string) (entities.Meeting, error) {
	return s.apply(ctx, meetingID, func(m entities.Meeting) (entities.Meeting, error) {
		return RemoveActionItem(m, itemID), nil
	})
}

// apply loads the collection, runs a pure editing operation against the
// meeting with the given id and persists the result. Editing errors leave the
// stored collection untouched.
func (s *MinutesService) apply(ctx context.Context, meetingID string, op func(entities.Meeting) (entities.Meeting, error)) (entities.Meeting, error) {
	meetings, err := s.repo.LoadCollection(ctx)
	if err != nil {
		return entities.Meeting{}, err
	}
	idx := -1
	for i, m := range meetings {
		if m.ID == meetingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Meeting{}, apperrors.ErrMeetingNotFound(meetingID)
	}
	edited, err := op(meetings[idx])
	if err != nil {
		return entities.Meeting{}, err
	}
	next := make([]entities.Meeting, len(meetings))
	copy(next, meetings)
	next[idx] = edited
	if err := s.repo.SaveCollection(ctx, next); err != nil {
		return entities.Meeting{}, err
	}
	return edited, nil
}
