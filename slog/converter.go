// Package slog decorates pagemd services with structured logging via
// log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingConverter implements pagemd.Converter.
var _ pagemd.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging of each conversion.
type LoggingConverter struct {
	next   pagemd.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next pagemd.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the input size, output
// size and duration. Failures are logged at warn level with their code.
func (c *LoggingConverter) Convert(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
	begin := time.Now()
	markdown, err := c.next.Convert(rawHTML, pageURL, opts)

	attrs := []any{
		"url", pageURL,
		"bytes", len(rawHTML),
		"duration", time.Since(begin),
	}
	if err != nil {
		c.logger.Warn("conversion", append(attrs,
			"code", pagemd.ErrorCode(err),
			"error", err.Error(),
		)...)
		return markdown, err
	}
	c.logger.Info("conversion", append(attrs, "markdown", len(markdown))...)
	return markdown, nil
}
