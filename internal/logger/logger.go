package logger

import "go.uber.org/zap"

// New creates the application logger. Production mode uses the JSON
// encoder and info level; otherwise the human-readable development config.
func New(isProduction bool) (*zap.Logger, error) {
	if isProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
