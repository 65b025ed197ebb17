package ai

import (
	"context"

	"go.uber.org/zap"
)

// summaryFallback is returned when the model call fails; summarization
// degrades to a placeholder instead of propagating the failure.
const summaryFallback = "Gagal merangkum notulen."

// ExtractedActionItem is one follow-up task the model found in raw notes.
// Task is mandatory; assignee and deadline are filled when mentioned.
type ExtractedActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

// Client is the LLM surface the service needs, satisfied by ai.GroqClient.
type Client interface {
	GenerateSummary(ctx context.Context, notes string) (string, error)
	ExtractActionItems(ctx context.Context, notes string) (string, error)
}

// Service is the summarization gateway. Failures never propagate: a failed
// summary yields a placeholder, a failed extraction yields an empty list, and
// both are logged.
type Service struct {
	client Client
	parser *Parser
	logger *zap.Logger
}

// NewService creates the summarization service.
func NewService(client Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		parser: NewParser(),
		logger: logger,
	}
}

// Summarize condenses raw notes into a formal summary.
func (s *Service) Summarize(ctx context.Context, notes string) string {
	summary, err := s.client.GenerateSummary(ctx, notes)
	if err != nil {
		s.logger.Error("ai.summarize.failed", zap.Error(err))
		return summaryFallback
	}
	return summary
}

// ExtractActionItems pulls follow-up tasks out of raw notes.
func (s *Service) ExtractActionItems(ctx context.Context, notes string) []ExtractedActionItem {
	content, err := s.client.ExtractActionItems(ctx, notes)
	if err != nil {
		s.logger.Error("ai.extract.failed", zap.Error(err))
		return []ExtractedActionItem{}
	}
	items, err := s.parser.ParseActionItems(content)
	if err != nil {
		s.logger.Error("ai.extract.parse_failed", zap.Error(err))
		return []ExtractedActionItem{}
	}
	return items
}
