// Package activity fans override lifecycle events out to observer
// hooks: one event per localize, restore, and void override. Hooks are
// observational only; hook failures are reported back to the emitter's
// caller and never affect the override itself.
package activity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Verbs emitted by the override machinery.
const (
	VerbLocalized = "attr.localized"
	VerbRestored  = "attr.restored"
	VerbVoided    = "attr.voided"
)

// Event describes one override occurrence. GuardID is stringly-typed to
// avoid coupling hook implementations to a specific UUID type. Depth is
// the value-stack depth observed after the operation.
type Event struct {
	Verb       string
	Attr       string
	GuardID    string
	Channel    string
	Depth      int
	Metadata   map[string]any
	OccurredAt time.Time
}

// Hook receives normalized override events.
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc allows plain functions to satisfy Hook.
type HookFunc func(ctx context.Context, event Event) error

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// Hooks fans out events to zero or more hooks.
type Hooks []Hook

// Enabled reports whether there are any hooks to notify.
func (h Hooks) Enabled() bool {
	return len(h) > 0
}

// Notify forwards the event to all hooks, returning a joined error if
// any fail. It normalizes the event first and short-circuits when the
// verb or guard identifier is missing.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	if len(h) == 0 {
		return nil
	}

	normalized := NormalizeEvent(event)
	if normalized.Verb == "" || normalized.GuardID == "" {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, normalized); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// NormalizeEvent trims whitespace, clones metadata, and ensures a
// timestamp is present.
func NormalizeEvent(event Event) Event {
	normalized := event
	normalized.Verb = strings.TrimSpace(event.Verb)
	normalized.Attr = strings.TrimSpace(event.Attr)
	normalized.GuardID = strings.TrimSpace(event.GuardID)
	normalized.Channel = strings.TrimSpace(event.Channel)
	normalized.Metadata = cloneMap(event.Metadata)
	if normalized.OccurredAt.IsZero() {
		normalized.OccurredAt = time.Now()
	}
	return normalized
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
