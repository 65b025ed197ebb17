package repository

import (
	"context"

	apperrors "github.com/notulen-team/e-notulen/errors"
)

// SettingsRepository stores integration settings, each under its own key.
type SettingsRepository struct {
	store Store
}

// NewSettingsRepository creates a settings repository on the given store.
func NewSettingsRepository(store Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// GetWebhookURL returns the configured spreadsheet webhook URL, "" when
// unset.
func (r *SettingsRepository) GetWebhookURL(ctx context.Context) (string, error) {
	url, _, err := r.store.Get(ctx, webhookURLKey)
	if err != nil {
		return "", apperrors.ErrCacheFailed("load webhook url", err)
	}
	return url, nil
}

// SetWebhookURL stores the spreadsheet webhook URL.
func (r *SettingsRepository) SetWebhookURL(ctx context.Context, url string) error {
	if err := r.store.Set(ctx, webhookURLKey, url); err != nil {
		return apperrors.ErrCacheFailed("save webhook url", err)
	}
	return nil
}
