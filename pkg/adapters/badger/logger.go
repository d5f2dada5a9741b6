package badger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logger adapts slog to badger.Logger.
type logger struct {
	l *slog.Logger
}

func newLogger(l *slog.Logger) *logger {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &logger{l: l.With("component", "badger")}
}

func (b *logger) Errorf(format string, args ...interface{}) {
	b.l.Error(trim(format, args...))
}

func (b *logger) Warningf(format string, args ...interface{}) {
	b.l.Warn(trim(format, args...))
}

func (b *logger) Infof(format string, args ...interface{}) {
	b.l.Info(trim(format, args...))
}

func (b *logger) Debugf(format string, args ...interface{}) {
	b.l.Debug(trim(format, args...))
}

func trim(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
