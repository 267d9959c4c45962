package httpclient

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type restyLogger struct {
	logger zerolog.Logger
}

var _ resty.Logger = restyLogger{}

func newRestyLogger(logger zerolog.Logger) restyLogger {
	return restyLogger{logger: logger.With().Str("source", "resty").Logger()}
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
