package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the zap logger and installs it as the global one, so the rest
// of the project can use zap.L() directly.
func Init(mode string) error {
	var cfg zap.Config
	if mode == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	lg, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(lg)
	return nil
}
