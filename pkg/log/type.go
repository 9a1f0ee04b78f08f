package log

import "go.uber.org/zap"

// ZapConfig holds configuration for the Zap logger.
// FilePath enables a rotating file sink next to stderr.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}
