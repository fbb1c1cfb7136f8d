package ringtone

import (
	"context"
	"errors"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// SilentLabel is the fixed display name used for the silent choice and as
// the degraded result whenever a title cannot be resolved.
const SilentLabel = "Silent"

// TitleLookup resolves a locator to a human-readable title. The call may be
// slow and may fail; implementations should honor ctx cancellation.
type TitleLookup interface {
	Title(ctx context.Context, locator string) (string, error)
}

// TitleLookupFunc adapts a plain function to the TitleLookup interface.
type TitleLookupFunc func(ctx context.Context, locator string) (string, error)

// Title calls the wrapped function.
func (f TitleLookupFunc) Title(ctx context.Context, locator string) (string, error) {
	return f(ctx, locator)
}

// ResolveTitle returns the display title for an identity.
//
// Silent resolves to SilentLabel without touching the lookup. Every other
// variant is encoded outside the default context and handed to the lookup,
// which runs on its own goroutine so a hanging platform call cannot stall
// the caller. A failed lookup degrades to SilentLabel; the only error ever
// returned is the caller's own cancellation, which is never swallowed.
func ResolveTitle(ctx context.Context, id Identity, defaults DefaultSoundSource, lookup TitleLookup) (string, error) {
	if _, ok := id.(Silent); ok {
		return SilentLabel, nil
	}

	locator, ok := Encode(id, defaults, false)
	if !ok {
		return SilentLabel, nil
	}

	type lookupResult struct {
		title string
		err   error
	}

	// Buffered so an abandoned lookup can still deliver and exit.
	results := make(chan lookupResult, 1)

	go func() {
		title, err := lookup.Title(ctx, locator)
		results <- lookupResult{title: title, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-results:
		if result.err == nil {
			return result.title, nil
		}

		if errors.Is(result.err, context.Canceled) || errors.Is(result.err, context.DeadlineExceeded) {
			return "", result.err
		}

		logger.WarnKV(ctx, "Ringtone title lookup failed, using silent label",
			"locator", locator, "error", result.err)

		return SilentLabel, nil
	}
}
