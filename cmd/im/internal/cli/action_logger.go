package cli

import (
	"github.com/lerenn/issue-manager/pkg/logger"
	"github.com/sethvargo/go-githubactions"
)

// actionLogger adapts GitHub Actions workflow commands to the Logger interface.
type actionLogger struct {
	action *githubactions.Action
}

// NewActionLogger creates a logger emitting GitHub Actions workflow commands.
func NewActionLogger(action *githubactions.Action) logger.Logger {
	return &actionLogger{action: action}
}

// Logf logs a formatted message as a workflow log line.
func (l *actionLogger) Logf(format string, args ...interface{}) {
	l.action.Infof(format, args...)
}

// Warnf logs a formatted message as a workflow warning command.
func (l *actionLogger) Warnf(format string, args ...interface{}) {
	l.action.Warningf(format, args...)
}
