package log

import (
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto de logrus usado pela API
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

const correlationIDField = "correlation_id"

// developmentFields são os campos mantidos nos logs de desenvolvimento
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"month":            true,
	"id":               true,
	"job":              true,
}

func isRelevantField(key string) bool {
	return developmentFields[key] || strings.HasPrefix(key, "sync_")
}

var development atomic.Bool

// SetDevelopment liga o formato enxuto de desenvolvimento, que descarta campos de rastreio
func SetDevelopment(enabled bool) {
	development.Store(enabled)
}

func IsDevelopment() bool {
	return development.Load()
}

// keep aplica o filtro de desenvolvimento
func keep(fields Fields) logrus.Fields {
	if !IsDevelopment() {
		return logrus.Fields(fields)
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if isRelevantField(k) {
			kept[k] = v
		}
	}
	return kept
}

type logger struct {
	entry *logrus.Entry
}

// L é o logger base, sem campos de requisição
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := keep(fields)
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}
