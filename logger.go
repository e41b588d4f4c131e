package mathnorm

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger 全局日志记录器
var Logger = zerolog.New(os.Stderr).
	Level(zerolog.WarnLevel).
	With().Timestamp().Str("component", "mathnorm").
	Logger()

// SetLogger 设置自定义日志记录器
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}
