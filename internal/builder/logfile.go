package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewBuildLogger opens a timestamped log file in dir and returns a logger
// writing to it, the file path, and a close function that flushes the file.
// The file name is the run's start time, so consecutive builds never collide.
func NewBuildLogger(dir string, start time.Time) (*zap.Logger, string, func(), error) {
	path := filepath.Join(dir, start.Format(time.RFC3339)+".log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening build log %s: %w", path, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)
	log := zap.New(core)

	closeFn := func() {
		_ = log.Sync()
		_ = file.Close()
	}
	return log, path, closeFn, nil
}
