package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	RawLog = zap.NewNop()
	Log    = RawLog.Sugar()
)

// InitializeLog replaces the no-op loggers with a production logger writing
// to stderr at the given level. Stdout is left to command output.
func InitializeLog(level string) error {

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	RawLog = logger
	Log = RawLog.Sugar()

	return nil

}
