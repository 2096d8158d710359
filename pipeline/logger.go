package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mcode/config"
)

// NewLogger builds a zap logger from lc: JSON production output by default,
// console development output when lc.Development is set.
func NewLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("pipeline: log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
