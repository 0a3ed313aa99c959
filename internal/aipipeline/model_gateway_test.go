package aipipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var errTransport = errors.New("connection reset by peer")

func TestGateway_RetriesTwiceThenRemoteUnavailable(t *testing.T) {
	model := newScriptedModel(reply{err: errTransport})
	gw := NewGateway(model, zaptest.NewLogger(t), WithBaseDelay(time.Millisecond))

	resp, err := gw.Generate(context.Background(), "prompt", ReviewConfig)

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.ErrorIs(t, err, errTransport)
	assert.Equal(t, 3, model.Calls())
	assert.Equal(t, 3, resp.Attempts)
}

func TestGateway_RecoversOnRetry(t *testing.T) {
	model := newScriptedModel(reply{err: errTransport}, reply{text: `{"ok": true}`})
	gw := NewGateway(model, zaptest.NewLogger(t), WithBaseDelay(time.Millisecond))

	resp, err := gw.Generate(context.Background(), "prompt", ReviewConfig)

	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, resp.Text)
	assert.Equal(t, 2, resp.Attempts)
	assert.Equal(t, 2, model.Calls())
}

func TestGateway_EmptyBodyIsNotRetried(t *testing.T) {
	model := newScriptedModel(reply{text: "   \n"})
	gw := NewGateway(model, zaptest.NewLogger(t), WithBaseDelay(time.Millisecond))

	_, err := gw.Generate(context.Background(), "prompt", ReviewConfig)

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, 1, model.Calls())
}

func TestGateway_UnhealthyDoesNoIO(t *testing.T) {
	gw := NewGateway(nil, zaptest.NewLogger(t))

	assert.False(t, gw.Healthy())
	_, err := gw.Generate(context.Background(), "prompt", ReviewConfig)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
	assert.Equal(t, KindConfigurationMissing, KindOf(err))
}

func TestGateway_IgnoresCallerCancellation(t *testing.T) {
	model := newScriptedModel(reply{text: `{"a": 1}`})
	gw := NewGateway(model, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := gw.Generate(ctx, "prompt", ReviewConfig)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Attempts)
}

func TestGateway_ReportsTruncation(t *testing.T) {
	model := newScriptedModel(reply{text: `{"days": [`, truncated: true})
	gw := NewGateway(model, zaptest.NewLogger(t))

	resp, err := gw.Generate(context.Background(), "prompt", ItineraryConfig)
	require.NoError(t, err)
	assert.True(t, resp.Truncated)
}

func TestGateway_BackoffDoubles(t *testing.T) {
	model := newScriptedModel(reply{err: errTransport})
	base := 20 * time.Millisecond
	gw := NewGateway(model, zaptest.NewLogger(t), WithBaseDelay(base))

	start := time.Now()
	_, err := gw.Generate(context.Background(), "prompt", ReviewConfig)
	elapsed := time.Since(start)

	require.Error(t, err)
	// base + 2*base of sleeping between the three attempts
	assert.GreaterOrEqual(t, elapsed, 3*base)
}
