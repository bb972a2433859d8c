package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cli-contacts/internal/cli"
	"cli-contacts/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

type options struct {
	quiet   bool
	verbose bool
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("contacts exited with an error")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	// Only -q, -v and -h mean anything; other arguments are ignored
	root := &cobra.Command{
		Use:                "contacts",
		Short:              "Interactive contact book",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.quiet {
				printBanner(cmd.OutOrStdout())
			}
			return runInteractive(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Hides the app information at the start.")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Shows more detail about what's going on in the background.")

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}
		if !opts.quiet {
			printBanner(cmd.OutOrStdout())
		}
		printOptions(cmd.OutOrStdout())
	})

	root.AddCommand(newExportCommand(opts))
	return root
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	cfg := loadConfig(opts)
	log := logrus.StandardLogger().WithField("type", "cmd/contacts")

	st, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	console := cli.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	book, err := cli.LoadBook(ctx, cfg, st, console)
	if err != nil {
		return err
	}

	app := cli.NewApp(cfg, st, book, console, logrus.NewEntry(logrus.StandardLogger()))
	return app.Run(ctx)
}

func loadConfig(opts *options) *config.Config {
	cfg := config.LoadConfig()
	cfg.Quiet = opts.quiet
	cfg.Verbose = opts.verbose
	return cfg
}

func configureLogger(w io.Writer, verbose bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "CLI Contacts %s\n", version)
}

func printOptions(w io.Writer) {
	fmt.Fprintln(w, "=== OPTIONS ===")
	fmt.Fprintln(w, "-q --quiet   --> Hides the app information at the start.")
	fmt.Fprintln(w, "-v --verbose --> Shows more detail about what's going on in the background.")
	fmt.Fprintln(w, "-h --help    --> Shows this screen.")
	fmt.Fprintln(w, "=== COMMANDS ===")
	fmt.Fprintln(w, "export       --> Writes all contacts as CSV.")
}
