package tones

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/platform"
	"github.com/oshokin/alarm-clock/internal/ringtone"
)

// Options controls the tones listing command.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Out receives the rendered listing. Defaults to stdout.
	Out io.Writer
}

// maxConcurrentLookups bounds parallel title lookups against the platform.
const maxConcurrentLookups = 4

// row is one rendered line of the listing.
type row struct {
	// locator is the sound's locator in the media folder.
	locator string
	// identity is the decoded ringtone meaning of the locator.
	identity ringtone.Identity
	// title is the resolved display title.
	title string
}

// Run lists every sound in the media folder with its decoded identity and
// resolved title. Titles are looked up concurrently; a failed lookup is
// shown as the silent label, and only caller cancellation aborts the run.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "tones")

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	if server, ok := platform.DetectAudioServer(); ok {
		logger.DebugKV(ctx, "Audio server detected", "executable", server)
	} else {
		logger.Warn(ctx, "No audio server is running; playback will not work")
	}

	// The settings-backed source keeps the default locator fresh even if
	// the settings file changes while titles are resolving.
	defaults := platform.NewSettingsSource(opts.ConfigPath)
	library := platform.NewMediaLibrary(cfg.MediaFolder)

	locators, err := library.List()
	if err != nil {
		return fmt.Errorf("list media folder: %w", err)
	}

	logger.InfoKV(ctx, "Resolving ringtone titles",
		"media_folder", cfg.MediaFolder, "count", len(locators))

	rows := make([]row, len(locators))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentLookups)

	for i, locator := range locators {
		i, locator := i, locator

		group.Go(func() error {
			identity := ringtone.Decode(defaults, locator)

			lookupCtx, cancel := context.WithTimeout(groupCtx, cfg.LookupTimeout)
			defer cancel()

			title, err := ringtone.ResolveTitle(lookupCtx, identity, defaults, library)
			if err != nil {
				// Only cancellation escapes ResolveTitle. If it was the
				// user's, stop; a per-lookup timeout just degrades.
				if groupCtx.Err() != nil {
					return err
				}

				logger.WarnKV(groupCtx, "Title lookup timed out", "locator", locator)

				title = ringtone.SilentLabel
			}

			rows[i] = row{
				locator:  locator,
				identity: identity,
				title:    title,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("resolve titles: %w", err)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(out, "%-60s  %-16s  %s\n", r.locator, r.identity, r.title); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}

	return nil
}
