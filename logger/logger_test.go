package logger_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/logger"
)

// captureLogger records messages so the field helpers' fallback path
// can be observed without a real handler.
type captureLogger struct {
	messages []string
}

func (cl *captureLogger) record(args ...any) {
	cl.messages = append(cl.messages, fmt.Sprint(args...))
}

func (cl *captureLogger) Debug(args ...any) { cl.record(args...) }
func (cl *captureLogger) Info(args ...any)  { cl.record(args...) }
func (cl *captureLogger) Warn(args ...any)  { cl.record(args...) }
func (cl *captureLogger) Error(args ...any) { cl.record(args...) }

func (cl *captureLogger) Debugf(format string, args ...any) { cl.record(fmt.Sprintf(format, args...)) }
func (cl *captureLogger) Infof(format string, args ...any)  { cl.record(fmt.Sprintf(format, args...)) }
func (cl *captureLogger) Warnf(format string, args ...any)  { cl.record(fmt.Sprintf(format, args...)) }
func (cl *captureLogger) Errorf(format string, args ...any) { cl.record(fmt.Sprintf(format, args...)) }

func TestWithFieldsFallsBackToMessageOnly(t *testing.T) {
	orig := logger.Log
	defer func() { logger.Log = orig }()

	cl := &captureLogger{}
	logger.Log = cl

	logger.InfoWithFields("api_request", logger.Fields{"status": 200})
	logger.WarnWithFields("admin request rejected: bad admin key", nil)
	logger.ErrorWithFields("request failed", logger.Fields{"error": "boom"})

	assert.Equal(t, []string{
		"api_request",
		"admin request rejected: bad admin key",
		"request failed",
	}, cl.messages)
}

func TestWithFieldsOnRealLogger(t *testing.T) {
	orig := logger.Log
	defer func() { logger.Log = orig }()

	logger.Log = logger.NewLogger("debug")

	assert.NotPanics(t, func() {
		logger.InfoWithFields("listed items", logger.Fields{"count": 3})
		logger.WarnWithFields("slow request", logger.Fields{"duration_ms": 1200})
		logger.ErrorWithFields("upstream call failed", logger.Fields{"op": "generate"})
	})
}

func TestInitFallsBackToInfo(t *testing.T) {
	orig := logger.Log
	defer func() { logger.Log = orig }()

	logger.Init("")
	assert.NotNil(t, logger.Log)

	logger.Init("nonsense-level")
	assert.NotNil(t, logger.Log)
}
