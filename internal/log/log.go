// Package log provides the command-line tools' zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger. debug selects zap's development
// config (human readable, debug level); otherwise the production JSON config.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// logger returns the initialized logger, falling back to a no-op one.
func logger() *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// Package-level convenience functions
func Debugw(msg string, keysAndValues ...interface{}) {
	logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	logger().Errorw(msg, keysAndValues...)
}
