package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// Store keys. The whole meeting collection lives under one key as a single
// JSON document; there is no per-record versioning or migration.
const (
	meetingsKey   = "notulen:meetings"
	webhookURLKey = "notulen:sheets_webhook_url"
)

// Store is the key-value surface the repositories run on. Satisfied by
// cache.RedisStore and cache.MemoryStore.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MeetingRepository persists the meeting collection as one JSON blob.
type MeetingRepository struct {
	store  Store
	logger *zap.Logger
}

// NewMeetingRepository creates a meeting repository on the given store.
func NewMeetingRepository(store Store, logger *zap.Logger) *MeetingRepository {
	return &MeetingRepository{
		store:  store,
		logger: logger,
	}
}

// LoadCollection returns the stored collection. An absent key seeds the store
// with the example record and returns it; loaded records get nil collections
// normalized away.
func (r *MeetingRepository) LoadCollection(ctx context.Context) ([]entities.Meeting, error) {
	raw, found, err := r.store.Get(ctx, meetingsKey)
	if err != nil {
		return nil, apperrors.ErrCacheFailed("load meetings", err)
	}
	if !found {
		seed := SeedMeetings()
		if err := r.SaveCollection(ctx, seed); err != nil {
			return nil, err
		}
		r.logger.Info("meetings.store.seeded", zap.Int("count", len(seed)))
		return seed, nil
	}

	var meetings []entities.Meeting
	if err := json.Unmarshal([]byte(raw), &meetings); err != nil {
		return nil, apperrors.ErrCacheFailed("decode meetings", err)
	}
	for i := range meetings {
		meetings[i].Normalize()
	}
	return meetings, nil
}

// SaveCollection replaces the stored collection as a whole.
func (r *MeetingRepository) SaveCollection(ctx context.Context, meetings []entities.Meeting) error {
	raw, err := json.Marshal(meetings)
	if err != nil {
		return apperrors.ErrCacheFailed("encode meetings", err)
	}
	if err := r.store.Set(ctx, meetingsKey, string(raw)); err != nil {
		return apperrors.ErrCacheFailed("save meetings", err)
	}
	return nil
}
