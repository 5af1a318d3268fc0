// internal/cli/root.go
package chatfreq

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mwiater/chatfreq/internal/appconfig"
	"github.com/mwiater/chatfreq/internal/inputs"
	"github.com/mwiater/chatfreq/internal/logging"
	"github.com/mwiater/chatfreq/internal/render"
	"github.com/mwiater/chatfreq/internal/wordfreq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *appconfig.Config
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "chatfreq",
		Short:         "Most frequent words in exported chat archives",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			if err := logging.Init(a.cfg.LogFile, a.cfg.Debug); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	flags.Bool("debug", false, "enable debug logging and dumps")
	flags.Bool("jsonMode", false, "print results as JSON")
	flags.String("logFile", "", "path to the log file")
	flags.Int("limit", wordfreq.DefaultLimit, "number of words in the ranked view")
	flags.Int("workers", 1, "inputs extracted concurrently")
	flags.Bool("repairEncoding", false, "repair Latin-1 mojibake in exported message text")

	for _, name := range []string{"debug", "jsonMode", "logFile", "limit", "workers", "repairEncoding"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newSearchCmd(a),
		newStopwordsCmd(a),
		newExploreCmd(a),
		newServeCmd(a),
		newShowCmd(a),
		newListCmd(),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if code := run(NewRootCmd(), os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// run executes root and returns the process exit code. The log file is
// closed on every path, including errors that skip PersistentPostRunE.
func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if closeErr := logging.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		render.Error(stderr, err)
		return 1
	}
	return 0
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// loadConfig reads the config file if present and materializes the merged
// configuration (flags > config > defaults).
func (a *app) loadConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		a.v.SetConfigType("json")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || a.cfgFile != appconfig.DefaultConfigPath {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg appconfig.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ConfigPath = a.v.ConfigFileUsed()
	a.cfg = &cfg
	return nil
}

// collect reads the batch named by paths.
func (a *app) collect(paths []string) ([]wordfreq.RawInput, error) {
	return inputs.Collect(paths, inputs.Options{
		AllowedExtensions: a.cfg.InputExtensions(),
		ExcludeGlobs:      a.cfg.ExcludeGlobs,
	})
}
