package test

import (
	"fmt"
	"strings"
)

// MockLogger is a Logger implementation that captures messages for
// verification instead of writing them anywhere.
type MockLogger struct {
	Messages []string
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{Messages: []string{}}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	l.capture("DEBUG", msg, args...)
}

func (l *MockLogger) Info(msg string, args ...any) {
	l.capture("INFO", msg, args...)
}

func (l *MockLogger) Warn(msg string, args ...any) {
	l.capture("WARN", msg, args...)
}

func (l *MockLogger) Error(msg string, args ...any) {
	l.capture("ERROR", msg, args...)
}

func (l *MockLogger) capture(level, msg string, args ...any) {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteString(": ")
	sb.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, sb.String())
}

// HasMessage reports whether any captured message contains the substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if strings.Contains(msg, substring) {
			return true
		}
	}
	return false
}

// Reset clears all captured messages.
func (l *MockLogger) Reset() {
	l.Messages = []string{}
}
