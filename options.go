package localize

import "github.com/goliatone/go-localize/pkg/activity"

// Option configures an Overridable.
type Option func(*config)

type config struct {
	name    string
	logger  WarningLogger
	emitter *activity.Emitter
	trace   bool
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithName sets the attribute name used in warnings, trace provenance,
// and activity events.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithHooks attaches activity hooks notified on every localize, restore
// and void override, using default emitter settings. Use WithEmitter to
// control the channel or disable emission without detaching hooks.
func WithHooks(hooks activity.Hooks) Option {
	emitter := activity.NewEmitter(hooks, activity.Config{Enabled: true})
	return func(cfg *config) {
		cfg.emitter = emitter
	}
}

// WithEmitter attaches a preconfigured activity emitter.
func WithEmitter(emitter *activity.Emitter) Option {
	return func(cfg *config) {
		cfg.emitter = emitter
	}
}

// WithTrace toggles provenance recording. When enabled, every override
// operation appends to the history returned by Trace.
func WithTrace(enabled bool) Option {
	return func(cfg *config) {
		cfg.trace = enabled
	}
}
