package localize

import "github.com/google/uuid"

// WarningEvent describes a non-fatal advisory surfaced by the override
// machinery, such as the void-context notice or a failed activity hook.
type WarningEvent struct {
	Attr    string
	GuardID uuid.UUID
	Message string
}

// WarningLogger records advisory warnings. Advisories are diagnostics
// only; they never abort execution and are never used to signal errors.
type WarningLogger interface {
	LogWarning(WarningEvent)
}

// WarningLoggerFunc adapts a function to WarningLogger.
type WarningLoggerFunc func(WarningEvent)

// LogWarning implements WarningLogger.
func (f WarningLoggerFunc) LogWarning(event WarningEvent) {
	if f != nil {
		f(event)
	}
}

type noopWarningLogger struct{}

func (noopWarningLogger) LogWarning(WarningEvent) {}

// WithWarningLogger attaches a warning logger to the Overridable.
func WithWarningLogger(logger WarningLogger) Option {
	return func(cfg *config) {
		if logger == nil {
			cfg.logger = noopWarningLogger{}
			return
		}
		cfg.logger = logger
	}
}
