package swagger

import "log/slog"

// Logger is the structured logging interface used by the registry and the
// compiler. Attributes are alternating key-value pairs, as in log/slog:
//
//	logger.Debug("duplicate route ignored", "method", "GET", "path", "/pets")
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every entry.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is used when Config.Logger is nil.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter implements Logger on top of a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
