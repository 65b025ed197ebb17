package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/adapter/export"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
	"github.com/notulen-team/e-notulen/internal/domain/repositories"
)

// Service forwards meetings to the user-configured spreadsheet webhook.
// Fire-and-forget: a completed HTTP exchange counts as success, the response
// body is never read, and nothing is retried.
type Service struct {
	settings repositories.SettingsRepository
	client   *http.Client
	logger   *zap.Logger
}

// NewService creates the sync service.
func NewService(settings repositories.SettingsRepository, logger *zap.Logger) *Service {
	return &Service{
		settings: settings,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// SyncMeeting flattens the meeting to one row and POSTs it to the configured
// webhook. A missing webhook URL fails with SYNC_NOT_CONFIGURED before any
// network attempt.
func (s *Service) SyncMeeting(ctx context.Context, m entities.Meeting) error {
	url, err := s.settings.GetWebhookURL(ctx)
	if err != nil {
		return err
	}
	if url == "" {
		return apperrors.ErrSyncNotConfigured()
	}

	row, err := export.FlattenMeeting(m)
	if err != nil {
		return err
	}

	body, err := json.Marshal(row)
	if err != nil {
		return apperrors.ErrInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return apperrors.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.ErrTransportFailure("spreadsheet webhook", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body itself is not part of
	// the contract.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		// Delivery is the contract, not acceptance. A rejected request still
		// counts as a completed sync; only the status gets logged.
		s.logger.Warn("sheets.sync.unexpected_status",
			zap.String("meeting_id", m.ID),
			zap.Int("status", resp.StatusCode),
		)
	}

	s.logger.Info("sheets.sync.sent", zap.String("meeting_id", m.ID))
	return nil
}
