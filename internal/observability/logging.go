// Package observability provides the structured logger and the
// recent-action log.
package observability

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/colony/internal/config"
)

// LoggerName names every diagnostic entry the game writes.
const LoggerName = "colony"

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: output goes to cfg.Output, or stderr when it is empty.
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	zapCfg.OutputPaths = []string{output}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named(LoggerName), nil
}

// Session holds the two logs of one play session: the diagnostic logger,
// tagged with the session id and the random mode, and the optional
// recent-action log.
type Session struct {
	ID     uuid.UUID
	Logger *zap.Logger
	Recent *RecentLog
}

// OpenSession builds the session logger from logCfg and opens the
// recent-action log at game.RecentLog when it is set.
//
// Postcondition: Recent is nil when game.RecentLog is empty.
// Postcondition: the caller must Close a returned Session.
func OpenSession(logCfg config.LoggingConfig, game config.GameConfig) (*Session, error) {
	logger, err := NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	id := uuid.New()
	s := &Session{
		ID: id,
		Logger: logger.With(
			zap.Stringer("session", id),
			zap.Bool("deterministic", game.Deterministic),
		),
	}
	if game.RecentLog != "" {
		if s.Recent, err = OpenRecentLog(game.RecentLog); err != nil {
			_ = logger.Sync()
			return nil, err
		}
	}
	return s, nil
}

// Close flushes the logger and closes the recent-action log. Sync errors
// from terminal sinks are ignored.
func (s *Session) Close() error {
	_ = s.Logger.Sync()
	return s.Recent.Close()
}
