package mathnorm

import (
	"sync"

	"github.com/riverfjs/mathnorm-go/internal/types"
)

// 导出类型别名
type Config = types.Config

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton). Treat it as read-only;
// options always work on a copy.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
