// Package cli implements the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hightemp/isocountry/internal/config"
	"github.com/hightemp/isocountry/internal/logging"
	"github.com/hightemp/isocountry/pkg/country"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func exitWithCode(code int, msg string) error {
	return &exitError{code: code, msg: msg}
}

// app holds the state shared by every command of one invocation.
type app struct {
	cfgFile  string
	v        *viper.Viper
	cfg      config.Config
	logger   *logrus.Logger
	registry *country.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "isocountry [input]",
		Short: "Resolve country identifiers to ISO 3166-1 records",
		Long: `isocountry resolves a country given in any common form - numeric code,
alpha-2, alpha-3, canonical name or a historical alias - to its ISO 3166-1
record.

For a single lookup:
  isocountry usa
  isocountry Swaziland

For batch processing (read from stdin, one input per line):
  cat countries.txt | isocountry --format json

Names and aliases are written without spaces ("UnitedKingdom"). Lookups
ignore case. Former official names such as "Burma" still resolve and are
reported as deprecated.`,
		Version:           Version,
		Args:              invalidInputArgs(cobra.MaximumNArgs(1)),
		PersistentPreRunE: a.setup,
		RunE:              a.runLookup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	defaults := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		fmt.Sprintf("config file (default: %s)", config.DefaultConfigPath()))
	flags.StringP("format", "f", defaults.Format, "output format: text, json or yaml")
	flags.Int("concurrency", defaults.Concurrency,
		fmt.Sprintf("parallel lookups in batch mode (max %d)", config.MaxConcurrency))
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.String("log-format", defaults.LogFormat, "log format: text or json")
	rootCmd.Flags().String("by", "", "key space for lookups: any, numeric, value, alpha2, alpha3, name, identifier or alias")

	// Bind flags to viper
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("concurrency", flags.Lookup("concurrency"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("space", rootCmd.Flags().Lookup("by"))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitWithCode(ExitInvalidInput, err.Error())
	})

	// Add subcommands
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newAliasesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, the logger and the registry before any
// command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
	}

	logger, err := logging.NewWithWriter(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
	}
	a.logger = logger

	a.registry = country.Default()
	a.logger.WithFields(logrus.Fields{
		"countries": a.registry.Len(),
		"aliases":   len(a.registry.Aliases()),
		"config":    a.v.ConfigFileUsed(),
	}).Debug("registry loaded")
	return nil
}

func (a *app) initConfig() error {
	defaults := config.Defaults()
	a.v.SetDefault("format", defaults.Format)
	a.v.SetDefault("concurrency", defaults.Concurrency)
	a.v.SetDefault("log_level", defaults.LogLevel)
	a.v.SetDefault("log_format", defaults.LogFormat)
	a.v.SetDefault("space", defaults.Space)

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(config.DefaultConfigDir())
		a.v.SetConfigName(config.ConfigFileName)
		a.v.SetConfigType(config.ConfigFileType)
	}

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	a.cfg = config.Config{}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return a.cfg.Validate()
}

// invalidInputArgs maps argument validation failures to ExitInvalidInput.
func invalidInputArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return exitWithCode(ExitInvalidInput, fmt.Sprintf("Error: %v", err))
		}
		return nil
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.msg != "" {
			fmt.Fprintln(stderr, exit.msg)
		}
		return exit.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}

// Execute runs the root command and exits the process with its exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
