package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"termcalc/internal/config"
)

var (
	cfgFile string
	debug   bool
	noColor bool

	// Version is set by ldflags during build
	Version = "dev"
)

// AppKey is the context key for the AppContainer
type AppKey struct{}

// rootCmd is the base command; invoked bare it runs one calculation session
var rootCmd = &cobra.Command{
	Use:   "termcalc",
	Short: "Interactive console calculator",
	Long: `Termcalc is a single-pass console calculator.

It reads an operation selector and two numbers from standard input,
performs the chosen operation and prints the result:
  1. Add
  2. Subtract
  3. Multiply
  4. Divide`,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if a, ok := cmd.Context().Value(AppKey{}).(*AppContainer); ok {
			a.Close()
		}
	},
	RunE: runSession,
	// Diagnostics go to stdout in the fixed wording the session
	// prints; cobra must not add its own copy or a usage dump.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("termcalc v{{.Version}}\n")
}

// initApp handles configuration loading and dependency injection for all commands
func initApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if debug {
		cfg.Debug = true
		cfg.Logging.Level = "DEBUG"
	}
	if noColor {
		cfg.UI.Color = "never"
	}

	application := NewApp(cfg)
	// Inject the application container into the command context to avoid global state "lock-in"
	ctx := context.WithValue(cmd.Context(), AppKey{}, application)
	cmd.SetContext(ctx)
	return nil
}

// App extracts the AppContainer from the command context
func App(cmd *cobra.Command) *AppContainer {
	if a, ok := cmd.Context().Value(AppKey{}).(*AppContainer); ok {
		return a
	}
	return nil
}
