package utils

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	eventLoggerMu sync.RWMutex
	eventLogger   = logrus.StandardLogger()
)

// SetEventLogger replaces the logger LogEvent writes to.
func SetEventLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	eventLoggerMu.Lock()
	eventLogger = l
	eventLoggerMu.Unlock()
}

// EventLogger returns the logger shared by LogEvent and the HTTP layer.
func EventLogger() *logrus.Logger {
	eventLoggerMu.RLock()
	defer eventLoggerMu.RUnlock()
	return eventLogger
}

// LogEvent writes a standardized entry with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	EventLogger().WithFields(logrus.Fields{
		"module":     strings.ToLower(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
