package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		InfoCtx(context.Background(), "hello")
		ErrorCtx(context.Background(), nil)
	})
}

func TestRequestScope(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithSubject(ctx, "user_1")

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
	require.NotNil(t, FromContext(ctx))
}

func TestInitializeWithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
	Flush(0)
}
