package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/platform"
	"github.com/oshokin/alarm-clock/internal/ringtone"
	"github.com/oshokin/alarm-clock/internal/service/tones"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for the alarm-clock toolbox.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Inspect the alarm-clock ringtone library and locator codec.",
		Long: `Companion toolbox for the alarm-clock application.

It lists the ringtone media folder with resolved titles, and encodes or
decodes the locator strings exchanged with the native sound picker, using
the same codec the application uses.`,
	}
)

// signalContext returns a context canceled on SIGTERM/SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")

	rootCmd.AddCommand(newTitlesCommand())
	rootCmd.AddCommand(newDecodeCommand())
	rootCmd.AddCommand(newEncodeCommand())
	rootCmd.AddCommand(newInitCommand())
}

// newTitlesCommand lists the media folder with resolved ringtone titles.
func newTitlesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "titles",
		Short: "List every ringtone in the media folder with its resolved title.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return tones.Run(ctx, &tones.Options{
				ConfigPath: configPath,
				Out:        cmd.OutOrStdout(),
			})
		},
	}
}

// newDecodeCommand decodes a picker-result locator into its meaning.
func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [locator]",
		Short: "Decode a picker locator into its ringtone meaning.",
		Long: `Decodes a locator string as returned by the native sound picker.
An omitted or empty locator decodes to the silent choice.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var locator string
			if len(args) > 0 {
				locator = args[0]
			}

			identity := ringtone.Decode(platform.NewSettingsSource(configPath), locator)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), identity)

			return err
		},
	}
}

// errNoLocator is returned when encoding needs a default sound and none is configured.
var errNoLocator = errors.New("no locator can be produced: no default alarm sound is configured")

// newEncodeCommand encodes a ringtone meaning into a picker locator.
func newEncodeCommand() *cobra.Command {
	var (
		silent        bool
		systemDefault bool
		appDefault    bool
		sound         string
		inEditor      bool
	)

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a ringtone meaning into a picker locator.",
		Long: `Encodes one of the four ringtone meanings into the locator string
handed to the native sound picker for preselection. Pass --in-editor when
the locator is meant for the alarm edit form, where the app default keeps
its own identity instead of degrading to the system default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := pickIdentity(silent, systemDefault, appDefault, sound)
			if err != nil {
				return err
			}

			locator, ok := ringtone.Encode(identity, platform.NewSettingsSource(configPath), inEditor)
			if !ok {
				return errNoLocator
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), locator)

			return err
		},
	}

	encodeCmd.Flags().BoolVar(&silent, "silent", false, "encode the explicit no-sound choice")
	encodeCmd.Flags().BoolVar(&systemDefault, "system-default", false, "encode the platform default sound")
	encodeCmd.Flags().BoolVar(&appDefault, "default", false, "encode the application default sound")
	encodeCmd.Flags().StringVar(&sound, "sound", "", "encode an explicit sound locator")
	encodeCmd.Flags().BoolVar(&inEditor, "in-editor", false, "encode for the alarm edit form context")

	return encodeCmd
}

// errAmbiguousIdentity is returned when the encode flags select no or several meanings.
var errAmbiguousIdentity = errors.New("exactly one of --silent, --system-default, --default or --sound must be given")

// pickIdentity maps the encode flags onto exactly one identity.
func pickIdentity(silent, systemDefault, appDefault bool, sound string) (ringtone.Identity, error) {
	var (
		identity ringtone.Identity
		picked   int
	)

	if silent {
		identity = ringtone.Silent{}
		picked++
	}

	if systemDefault {
		identity = ringtone.SystemDefault{}
		picked++
	}

	if appDefault {
		identity = ringtone.Default{}
		picked++
	}

	if sound != "" {
		identity = ringtone.Sound{URI: sound}
		picked++
	}

	if picked != 1 {
		return nil, errAmbiguousIdentity
	}

	return identity, nil
}

// newInitCommand writes a settings file with default values.
func newInitCommand() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("settings file %s already exists, use --force to overwrite", configPath)
				}
			}

			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Settings written to", configPath)

			return err
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing settings file")

	return initCmd
}
