//go:build unit
// +build unit

package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortex-fintech/postal-lib/logger"
)

func TestInitAndBasicMethods(t *testing.T) {
	log := logger.Init("postal-lib", "development")
	assert.NotNil(t, log)

	log.Info("info")
	log.Warn("warn")
	log.Error("error")
	log.Debug("debug")

	log.Infof("infof: %s", "ok")
	log.Debugf("debugf: %s", "ok")

	log.Infow("infow", "country_code", "GB")
	log.Debugw("debugw", "result", "formatted")

	l2 := log.With("component", "postalsvc")
	assert.NotNil(t, l2)
	l2.Info("with works")

	log.SafeSync()
}

func TestInitEnvs(t *testing.T) {
	for _, env := range []string{"development", "debug", "production", "unknown"} {
		log := logger.Init("postal-lib", env)
		assert.NotNil(t, log)
		log.Info("env:", env)
	}
}

func TestCtxMethods(t *testing.T) {
	log, err := logger.New("postal-lib", "production")
	require.NoError(t, err)

	ctx := logger.ContextWithTraceID(context.Background(), "trace-123")
	ctx = logger.ContextWithRequestID(ctx, "req-456")

	log.InfowCtx(ctx, "message with context", "country_code", "SG")
	log.DebugwCtx(ctx, "debug with context")
	log.WarnwCtx(ctx, "warn with context")
	log.ErrorwCtx(ctx, "error with context")

	log.SafeSync()
}

func TestNilLoggerSafeSync(t *testing.T) {
	var log *logger.Logger
	log.SafeSync()
}
