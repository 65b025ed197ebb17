package repositories

import (
	"context"

	"github.com/notulen-team/e-notulen/internal/domain/entities"
)

// MeetingRepository is the persistence gateway for the meeting collection.
// The whole collection is stored as one JSON document under a fixed key and
// always written back as a whole (last-write-wins, single active mutator).
type MeetingRepository interface {
	// LoadCollection returns the stored collection, ordered most recently
	// created first. An absent key yields the seed collection.
	LoadCollection(ctx context.Context) ([]entities.Meeting, error)

	// SaveCollection replaces the stored collection.
	SaveCollection(ctx context.Context, meetings []entities.Meeting) error
}

// SettingsRepository stores integration settings under their own keys.
type SettingsRepository interface {
	// GetWebhookURL returns the configured spreadsheet webhook URL, or ""
	// when none has been set.
	GetWebhookURL(ctx context.Context) (string, error)

	// SetWebhookURL stores the spreadsheet webhook URL.
	SetWebhookURL(ctx context.Context, url string) error
}
