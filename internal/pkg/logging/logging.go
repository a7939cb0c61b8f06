// Package logging builds the process-wide zap logger. Output always goes to
// stdout; when a log directory is configured, a size-rotated file sink is
// added as well.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "acorta.log"
	rotateSizeMB  = 50
	rotateBackups = 7
	rotateAgeDays = 30
)

// New constructs the application logger. dir may be empty.
func New(dir string) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, logFileName),
			MaxSize:    rotateSizeMB,
			MaxBackups: rotateBackups,
			MaxAge:     rotateAgeDays,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), zap.InfoLevel)
	return zap.New(core), nil
}
