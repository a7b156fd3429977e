package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfg        *config.Config
	logCleanup func() error
)

var rootFlags struct {
	logLevel string
	logFile  string
}

var rootCmd = &cobra.Command{
	Use:   "typeforge",
	Short: "Infer named type catalogs from JSON and YAML samples",
	Long: "Typeforge infers record types from sample documents, deduplicates\n" +
		"structurally identical shapes, and emits Go or TypeScript declarations,\n" +
		"JSON Schema, or browsable HTML documentation.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		level := rootFlags.logLevel
		if level == "" {
			level = cfg.LogLevel
		}
		file := rootFlags.logFile
		if file == "" {
			file = cfg.LogFile
		}

		cleanup, err := logging.Setup(logging.Config{
			Level:      level,
			FilePath:   file,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
		})
		if err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}
		logCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $TYPEFORGE_LOG_LEVEL or info)")
	pf.StringVar(&rootFlags.logFile, "log-file", "", "Log file path (default: $TYPEFORGE_LOG_FILE or stderr)")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
