package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parser handles parsing and validation of model responses.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseActionItems parses the model's JSON array of action items. Entries
// without a task are dropped; a nil result becomes an empty slice.
func (p *Parser) ParseActionItems(content string) ([]ExtractedActionItem, error) {
	content = extractJSON(content)

	var items []ExtractedActionItem
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, fmt.Errorf("failed to parse action items: %w", err)
	}

	valid := make([]ExtractedActionItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Task) == "" {
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
