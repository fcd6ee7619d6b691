package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init installs the global zap logger. The CLI defaults to warn so normal
// output stays on stdout; --verbose drops the threshold to debug.
func Init(verbose bool) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)
}
