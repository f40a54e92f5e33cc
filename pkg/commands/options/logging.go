package options

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const LogFile = "roster.log"

// LoggingOptions
type LoggingOptions struct {
	Verbose bool
}

func AddLoggingArgs(cmd *cobra.Command, lo *LoggingOptions) {
	cmd.PersistentFlags().BoolVarP(&lo.Verbose, "verbose", "v", false,
		"Log debug detail to the log file in the data directory.")
}

// Logger builds a production logger writing to the log file under dir.
func (lo *LoggingOptions) Logger(dir string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if lo.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{filepath.Join(dir, LogFile)}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
