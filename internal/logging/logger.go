// Package logging builds the file-backed zap logger used across the viewer.
package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pokeview/internal/config"
)

// New opens a sugared development logger writing to the configured file.
// The returned func flushes the logger and must be called before exit.
// When the file cannot be opened the logger falls back to a no-op one and the error is returned.
func New(cfg config.Config) (*zap.SugaredLogger, func(), error) {
	path, err := cfg.LogFile()
	if err != nil {
		return Nop(), func() {}, err
	}
	return NewAt(path, cfg.Log.Level)
}

// NewAt is New with an explicit path and level.
func NewAt(path, level string) (*zap.SugaredLogger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Nop(), func() {}, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.InitialFields = map[string]any{"session": uuid.NewString()}

	logger, err := zcfg.Build(zap.AddStacktrace(zap.FatalLevel))
	if err != nil {
		return Nop(), func() {}, err
	}
	sugar := logger.Sugar()
	return sugar, func() { _ = sugar.Sync() }, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}
