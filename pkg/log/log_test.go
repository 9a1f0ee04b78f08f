package log

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{LevelInfo, zapcore.InfoLevel},
		{LevelError, zapcore.ErrorLevel},
		{"", zapcore.DebugLevel},
		{"verbose", zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := &zapLogger{cfg: &ZapConfig{Level: tt.level}}
			assert.Equal(t, tt.want, l.getLoggerLevel())
		})
	}
}

func TestFileWriterDefaults(t *testing.T) {
	l := &zapLogger{cfg: &ZapConfig{FilePath: filepath.Join(t.TempDir(), "app.log")}}
	w := l.fileWriter()
	assert.Equal(t, defaultMaxSizeMB, w.MaxSize)
	assert.Equal(t, defaultMaxBackups, w.MaxBackups)
	assert.Equal(t, defaultMaxAgeDays, w.MaxAge)
}

func TestWithFields(t *testing.T) {
	l := Init(ZapConfig{Level: LevelDebug, Encoding: EncodingJSON, FilePath: filepath.Join(t.TempDir(), "app.log")})
	ctx := WithFields(context.Background(), l, "alert_id", "a-1")

	zl, ok := l.(*zapLogger)
	require.True(t, ok)
	assert.NotSame(t, zl.sugarLogger, zl.ctx(ctx))
	assert.Same(t, zl.sugarLogger, zl.ctx(context.Background()))

	l.Infof(ctx, "fired %s", "BTC")
}

func TestWithFieldsNop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithFields(ctx, nopLogger{}, "k", "v"))
}

type nopLogger struct{ Logger }
