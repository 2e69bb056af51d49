package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingExtractor implements pagemd.Extractor.
var _ pagemd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagemd.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// wrapped extractor in log records.
func NewLoggingExtractor(next pagemd.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*pagemd.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		e.logger.Debug("extraction",
			"extractor", e.name,
			"duration", time.Since(begin),
			"error", err.Error(),
		)
		return nil, err
	}

	title := result.Title
	if title == "" {
		title = "(none)"
	}
	e.logger.Debug("extraction",
		"extractor", e.name,
		"title", title,
		"content", len(result.ContentHTML),
		"duration", time.Since(begin),
	)
	return result, nil
}
