package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stdout)
		logrus.SetLevel(logrus.InfoLevel)
	})
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestWithContextAddsUserFields(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), "owner_id", "github:42")
	ctx = context.WithValue(ctx, "email", "rep@example.com")
	ctx = context.WithValue(ctx, "request_id", "req-1")

	WithContext(ctx).Info("visit recorded")

	entry := lastEntry(t, buf)
	assert.Equal(t, "github:42", entry["owner"])
	assert.Equal(t, "rep@example.com", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "visit recorded", entry["msg"])
}

func TestWithContextUnknownUser(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warn("anonymous")

	entry := lastEntry(t, buf)
	assert.Equal(t, "unknown", entry["user"])
	assert.NotContains(t, entry, "owner")
}

func TestWithFields(t *testing.T) {
	buf := captureOutput(t)

	New().WithFields(map[string]interface{}{"lead_id": "abc", "status": "new"}).WithField("count", 2).Debugf("created %d", 1)

	entry := lastEntry(t, buf)
	assert.Equal(t, "abc", entry["lead_id"])
	assert.Equal(t, "new", entry["status"])
	assert.Equal(t, float64(2), entry["count"])
	assert.Equal(t, "created 1", entry["msg"])
}

func TestWithError(t *testing.T) {
	buf := captureOutput(t)

	New().WithError(assert.AnError).Error("upload failed")

	entry := lastEntry(t, buf)
	assert.Equal(t, assert.AnError.Error(), entry["error"])
}

func TestSetup(t *testing.T) {
	testCases := []struct {
		level  string
		expect logrus.Level
	}{
		{level: "debug", expect: logrus.DebugLevel},
		{level: " warn ", expect: logrus.WarnLevel},
		{level: "error", expect: logrus.ErrorLevel},
		{level: "verbose", expect: logrus.InfoLevel},
		{level: "", expect: logrus.InfoLevel},
	}
	t.Cleanup(func() {
		logrus.SetOutput(os.Stdout)
		logrus.SetLevel(logrus.InfoLevel)
	})
	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			Setup(tc.level, buf)

			assert.Equal(t, tc.expect, logrus.GetLevel())
			logrus.Error("probe")
			assert.Contains(t, buf.String(), `"msg":"probe"`)
		})
	}
}
