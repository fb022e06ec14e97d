// Package cli implements the benford command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxgfr/benford-law/internal/config"
	"github.com/maxgfr/benford-law/internal/logging"
)

// ErrNonConformant is returned by analyze --fail-on-nonconformant when at
// least one dataset does not follow Benford's Law.
var ErrNonConformant = errors.New("dataset does not follow Benford's Law")

// Exit codes.
const (
	ExitOK            = 0
	ExitError         = 1
	ExitNonConformant = 2
)

// app is the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg     config.Config
	cfgUsed string
	logger  *slog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "benford",
		Short: "Check numeric datasets against Benford's Law",
		Long: `benford checks whether the leading digits of a dataset follow Benford's Law.

In many natural datasets about 30% of numbers start with 1 and fewer than 5%
start with 9. benford counts leading digits, compares them with the expected
distribution digit by digit, and reports a verdict. It can also generate
synthetic Benford-distributed samples.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/benford/config.yaml)")
	flags.String("format", config.FormatText, "output format: text, json, yaml or markdown")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable colored log output")
	flags.String("history-path", config.DefaultHistoryPath(), "SQLite history database")

	a.bind("format", flags.Lookup("format"))
	a.bind("log.level", flags.Lookup("log-level"))
	a.bind("log.noColor", flags.Lookup("no-color"))
	a.bind("history.path", flags.Lookup("history-path"))

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newAnalyzeCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNonConformant):
		fmt.Fprintln(stderr, err)
		return ExitNonConformant
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return ExitError
	}
}

// bind ties a config key to a flag. Flags only override when set.
func (a *app) bind(key string, flag *pflag.Flag) {
	_ = a.v.BindPFlag(key, flag)
}

// load reads configuration and builds the logger.
func (a *app) load(stderr io.Writer) error {
	cfg, used, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, logging.Options{
		Level:   cfg.Log.Level,
		NoColor: cfg.Log.NoColor,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.cfgUsed = used
	a.logger = logger

	if used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}
