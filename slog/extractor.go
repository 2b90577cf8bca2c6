package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/palabras"
)

// Ensure LoggingExtractor implements palabras.Extractor.
var _ palabras.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Every dropped segment
// is logged as a warning.
type LoggingExtractor struct {
	next   palabras.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next palabras.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(markup, language string) (result *palabras.WordResult, err error) {
	defer func(begin time.Time) {
		var blocks, skipped int
		if result != nil {
			blocks, skipped = len(result.Blocks), len(result.Skipped)
			for _, s := range result.Skipped {
				e.logger.Warn("segment skipped",
					"language", language,
					"heading", s.Heading,
					"reason", s.Reason(),
				)
			}
		}
		e.logger.Info("extract",
			"language", language,
			"blocks", blocks,
			"skipped", skipped,
			"code", palabras.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(markup, language)
}
