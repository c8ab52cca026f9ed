package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/clippy/internal/clipboard"
	"github.com/ironsheep/clippy/internal/convert"
	"github.com/ironsheep/clippy/internal/errors"
	"github.com/ironsheep/clippy/internal/logger"
)

// execute runs the command line and returns the process exit code. Fatal
// errors are reported once on stdout.
func execute(args []string, p clipboard.Provider, stdin io.Reader, stdout io.Writer) int {
	cmd := newRootCmd(p, stdin, stdout)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		errors.Report(stdout, err)
		return 1
	}
	return 0
}

func newRootCmd(p clipboard.Provider, stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := convert.DefaultOptions()
	var debug bool

	cmd := &cobra.Command{
		Use:   "clippy",
		Short: "Write clipboard bitmap to disk as a file",
		Long: `clippy writes the bitmap on the system clipboard to disk as a PNG or JPEG.

It always writes a copy resized to --max_width (<filename>.<encoder>) and,
with --write_full, an unscaled copy as well (<filename>_full.<encoder>).
With --test_clipboard_has_bitmap it only prints TRUE or FALSE.

Set CLIPPY_LOG_LEVEL=debug or pass --debug for diagnostics on stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.ConfigureFromEnv()
			if debug {
				logger.SetDebug(true)
			}
			logger.Debug("clippy %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convert.Run(cmd.Context(), p, opts, stdout)
			if err != nil {
				return err
			}
			if !opts.Probe {
				logger.Debug("Done: %s", result.Summary())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.MaxWidth, "max_width", opts.MaxWidth, "Maximum width of image")
	f.BoolVar(&opts.WriteFull, "write_full", opts.WriteFull, "Write full sized image in addition to resized image to disk")
	f.StringVarP(&opts.Filename, "filename", "f", opts.Filename, "Filename to write, but without extension")
	f.StringVar(&opts.Encoder, "encoder", opts.Encoder, "Bitmap encoder to use: png|jpeg")
	f.BoolVar(&opts.Probe, "test_clipboard_has_bitmap", opts.Probe,
		"If true, only tests to see if clipboard contains a bitmap. Writes TRUE to stdout if it does")
	f.IntVar(&opts.JPEGQuality, "quality", opts.JPEGQuality, "JPEG quality (1-100)")

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	cmd.SetOut(stdout)
	cmd.SetIn(stdin)
	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.E(errors.Op("main.flags"), errors.KindInvalid, errors.EInvalidArg, "Invalid command line", err)
	})

	cmd.AddCommand(newMCPCmd(p, stdin, stdout))
	return cmd
}

func versionTemplate() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return fmt.Sprintf("clippy %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
	}
	return fmt.Sprintf("clippy %s\n", Version)
}
