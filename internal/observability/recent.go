package observability

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/colony/internal/game/command"
)

// RecentLog appends one bare line per dispatched command:
//
//	<code> <arg>: <OK|ERROR> (<player>)
type RecentLog struct {
	logger *zap.Logger
	close  func()
}

// recentEncoder writes the message and nothing else.
func recentEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
}

// OpenRecentLog appends to the file at path, creating it if needed.
//
// Postcondition: the caller must Close the log.
func OpenRecentLog(path string) (*RecentLog, error) {
	sink, closeFn, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recent log %q: %w", path, err)
	}
	core := zapcore.NewCore(recentEncoder(), sink, zapcore.InfoLevel)
	return &RecentLog{logger: zap.New(core), close: closeFn}, nil
}

// NewRecentLog writes to w.
func NewRecentLog(w io.Writer) *RecentLog {
	core := zapcore.NewCore(recentEncoder(), zapcore.AddSync(w), zapcore.InfoLevel)
	return &RecentLog{logger: zap.New(core), close: func() {}}
}

// FormatRecent renders the recent-log line for cmd issued by player.
func FormatRecent(cmd *command.Command, player string) string {
	outcome := "ERROR"
	if cmd.Succeeded() {
		outcome = "OK"
	}
	code, arg := "", ""
	if cmd != nil {
		code, arg = cmd.Code.String(), cmd.Arg
	}
	return fmt.Sprintf("%s %s: %s (%s)", code, arg, outcome, player)
}

// Record appends the line for cmd. A nil RecentLog discards it.
func (r *RecentLog) Record(cmd *command.Command, player string) {
	if r == nil {
		return
	}
	r.logger.Info(FormatRecent(cmd, player))
}

// Close flushes and closes the underlying file.
func (r *RecentLog) Close() error {
	if r == nil {
		return nil
	}
	err := r.logger.Sync()
	r.close()
	return err
}
