package logger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"notemark/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	levels := []string{"debug", "info", "warn", "warning", "error", "invalid", ""}

	for _, env := range []logger.Environment{logger.Development, logger.Production} {
		for _, level := range levels {
			t.Run(string(env)+"/level="+level, func(t *testing.T) {
				log, err := logger.NewLogger(env, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	}
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, logger.Production, logger.ParseEnvironment("production"))
	assert.Equal(t, logger.Production, logger.ParseEnvironment(" PRODUCTION "))
	assert.Equal(t, logger.Development, logger.ParseEnvironment("development"))
	assert.Equal(t, logger.Development, logger.ParseEnvironment(""))
}

func TestLoggerMethods(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("With returns a new instance", func(t *testing.T) {
		child := log.With(zap.String("key", "value"))
		assert.NotSame(t, log, child)
	})

	t.Run("logging with and without request id", func(t *testing.T) {
		plain := context.Background()
		withID := logger.NewRequestIDContext(plain, "req-1")

		assert.NotPanics(t, func() {
			for _, ctx := range []context.Context{plain, withID} {
				log.Debug(ctx, "debug", zap.Int("n", 1))
				log.Info(ctx, "info")
				log.Warn(ctx, "warn")
				log.Error(ctx, "error")
			}
			_ = log.Sync()
		})
	})
}

func TestFromContext(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("logger present", func(t *testing.T) {
		ctx := logger.NewContext(context.Background(), log)
		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, log, got)
	})

	t.Run("logger absent", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())
		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
		assert.Nil(t, got)
	})
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	ctxLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	global, err := logger.NewLogger(logger.Production, "error")
	require.NoError(t, err)

	t.Run("fallback is a singleton", func(t *testing.T) {
		first := logger.Log(context.Background())
		require.NotNil(t, first)
		assert.Same(t, first, logger.Log(context.Background()))
	})

	t.Run("global beats fallback", func(t *testing.T) {
		logger.SetGlobalLogger(global)
		assert.Same(t, global, logger.Log(context.Background()))
	})

	t.Run("context beats global", func(t *testing.T) {
		ctx := logger.NewContext(context.Background(), ctxLogger)
		assert.Same(t, ctxLogger, logger.Log(ctx))
	})
}

func TestInitGlobalLogger(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	require.NoError(t, logger.InitGlobalLogger(logger.Production, "info"))
	first := logger.Log(context.Background())

	require.NoError(t, logger.InitGlobalLogger(logger.Development, "debug"))
	assert.Same(t, first, logger.Log(context.Background()))
}

func TestRequestID(t *testing.T) {
	t.Run("generated ids are v4 uuids", func(t *testing.T) {
		id := logger.GenerateRequestID()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.NotEqual(t, id, logger.GenerateRequestID())
	})

	t.Run("empty id is replaced", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("client ids are kept when valid", func(t *testing.T) {
		for _, id := range []string{"abc", "req-1_2.3", "trace:42", strings.Repeat("a", logger.MaxRequestIDLength)} {
			got, ok := logger.GetRequestID(logger.NewRequestIDContext(context.Background(), id))
			require.True(t, ok)
			assert.Equal(t, id, got)
		}
	})

	t.Run("invalid client ids are replaced", func(t *testing.T) {
		for _, id := range []string{"bad id", "line\nbreak", "{json}", "ид", strings.Repeat("a", logger.MaxRequestIDLength+1)} {
			got, ok := logger.GetRequestID(logger.NewRequestIDContext(context.Background(), id))
			require.True(t, ok)
			assert.NotEqual(t, id, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err, id)
		}
	})
}
