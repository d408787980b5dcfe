package logging

import (
	"go.uber.org/zap"
)

// Setup builds the process-wide logger and installs it as the zap global.
// It is called once at process start and never reconfigured mid-run. With
// debug enabled the development config is used, which writes human-readable
// console output at debug level; otherwise the production JSON config at
// info level.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
