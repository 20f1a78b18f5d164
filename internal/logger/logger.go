package logger

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Context keys set by the auth and request id middleware
const (
	ownerKey     = "owner_id"
	emailKey     = "email"
	usernameKey  = "username"
	requestIDKey = "request_id"
)

// Logger wraps a logrus entry carrying request scoped fields
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger: JSON lines to out at the
// named level. Unknown levels fall back to info.
func Setup(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// New creates a new logger
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext creates a logger with owner and request fields taken from ctx.
// A *gin.Context works as ctx because it resolves string keys from its key store.
func WithContext(ctx context.Context) *Logger {
	l := New()
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{"user": "unknown"}
	if owner := stringValue(ctx, ownerKey); owner != "" {
		fields["owner"] = owner
	}
	if email := stringValue(ctx, emailKey); email != "" {
		fields["user"] = email
	} else if username := stringValue(ctx, usernameKey); username != "" {
		fields["user"] = username
	}
	if requestID := stringValue(ctx, requestIDKey); requestID != "" {
		fields["request_id"] = requestID
	}

	l.Entry = l.Entry.WithFields(fields)
	return l
}

func stringValue(ctx context.Context, key string) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError adds err under the standard error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
