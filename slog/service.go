package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/palabras"
)

// Ensure LoggingWordService implements palabras.WordService.
var _ palabras.WordService = (*LoggingWordService)(nil)

// LoggingWordService wraps a WordService with logging.
type LoggingWordService struct {
	next   palabras.WordService
	logger *slog.Logger
}

// NewLoggingWordService creates a new LoggingWordService.
func NewLoggingWordService(next palabras.WordService, logger *slog.Logger) *LoggingWordService {
	return &LoggingWordService{next: next, logger: logger}
}

// LookupWord delegates to the wrapped service and logs the operation.
func (s *LoggingWordService) LookupWord(ctx context.Context, word string, opts palabras.LookupOptions) (result *palabras.WordResult, err error) {
	defer func(begin time.Time) {
		var definitions int
		if result != nil {
			definitions = len(result.Definitions())
		}
		s.logger.Info("lookup",
			"word", word,
			"revision", opts.Revision,
			"definitions", definitions,
			"code", palabras.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LookupWord(ctx, word, opts)
}
