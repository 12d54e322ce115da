package logger

import (
	"bytes"
	"log"
	"strings"
)

// LogLogger wraps l into a stdlib *log.Logger that pins every emitted line to
// level. Empty lines are dropped; multi-line writes become one entry per
// line.
func LogLogger(l *Logger, level Level) *log.Logger {
	if l == nil {
		l = Noop()
	}
	return log.New(levelPinnedWriter{logger: l, level: level}, "", 0)
}

// LogLoggerDetect wraps l into a stdlib *log.Logger that classifies each
// line's leading level marker ("[warn] ...", "error: ...") to pick the entry
// level, defaulting to info.
func LogLoggerDetect(l *Logger) *log.Logger {
	if l == nil {
		l = Noop()
	}
	return log.New(detectWriter{logger: l}, "", 0)
}

type levelPinnedWriter struct {
	logger *Logger
	level  Level
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	lines := bytes.Split(p, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		_ = w.logger.Log(w.level, string(line))
	}
	return len(p), nil
}

type detectWriter struct {
	logger *Logger
}

func (w detectWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	lines := bytes.Split(p, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		level, msg := classifyLineLevel(trimmed)
		_ = w.logger.Log(level, msg)
	}
	return len(p), nil
}
