// Package cli wires the lunar command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/lunar/internal/config"
	"github.com/idilsaglam/lunar/internal/logging"
	"github.com/idilsaglam/lunar/internal/router"
	"github.com/idilsaglam/lunar/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// usageError marks bad invocations; they exit with 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// state is shared by all subcommands of one invocation.
type state struct {
	configPath string
	theme      string
	verbose    bool

	contentPath string
	noSplash    bool
	start       string
	watch       bool

	cfg config.Config
	log *zap.Logger
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)
	root := newRootCmd(&state{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		ui.Hint("Run `lunar --help` for usage.")
		return 2
	}
	return 1
}

func newRootCmd(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "lunar",
		Short: "Lunar Health - women's health in your terminal",
		Long: `Lunar Health brings articles, news and fun facts about PCOS, PCOD and
breast health to your terminal, with a guide picker for the upcoming chat.

Run without arguments to open the interactive app.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.log != nil {
				_ = st.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, st)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "config file (default ~/.lunar/config.toml)")
	pf.StringVar(&st.theme, "theme", "", "colour theme: classic, lunar or mono")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&st.contentPath, "content", "", "YAML or JSON catalog to use instead of the built-in one")

	f := root.Flags()
	f.BoolVar(&st.noSplash, "no-splash", false, "skip the loading screen")
	f.StringVar(&st.start, "start", "", "path to open first, e.g. /chatbot or /chatbot/bunny")
	f.BoolVar(&st.watch, "watch", false, "reload the --content file when it changes")

	root.AddCommand(
		newArticlesCmd(st),
		newNewsCmd(st),
		newFactsCmd(st),
		newRoutesCmd(),
		newContentCmd(st),
		newVersionCmd(),
	)
	return root
}

// setup loads config and applies flag overrides.
func (st *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.theme != "" {
		cfg.UI.Theme = st.theme
	}
	if st.contentPath != "" {
		cfg.Content.Path = st.contentPath
	}
	if st.noSplash {
		cfg.UI.Splash = false
	}
	if st.start != "" {
		if _, err := router.Parse(st.start); err != nil {
			return usagef("--start: %w", err)
		}
		cfg.UI.Start = st.start
	}
	if st.watch {
		cfg.Content.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	if err := ui.SetTheme(cfg.UI.Theme); err != nil {
		return usageError{err}
	}

	log, err := logging.New(logging.Options{
		Enabled: cfg.Log.Enabled,
		Path:    cfg.Log.Path,
		Level:   cfg.Log.Level,
		Verbose: st.verbose,
	})
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.log = log.With(zap.String("command", cmd.Name()))
	return nil
}
