package aipipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	DefaultMaxRetries  = 2
	DefaultBaseDelay   = time.Second
	DefaultCallTimeout = 60 * time.Second
)

// Completion is one raw answer from a text model backend.
type Completion struct {
	Text string
	// Truncated is set when the backend stopped on its output token limit.
	Truncated bool
}

// TextModel is a single generative backend. Implementations perform exactly one
// remote call per GenerateText; retrying is the gateway's job.
type TextModel interface {
	Name() string
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (Completion, error)
}

type ModelResponse struct {
	Text      string
	Latency   time.Duration
	Attempts  int
	Truncated bool
}

// ModelGateway is what the pipeline needs from a gateway.
type ModelGateway interface {
	Healthy() bool
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (ModelResponse, error)
}

type Gateway struct {
	model       TextModel
	logger      *zap.Logger
	maxRetries  uint
	baseDelay   time.Duration
	callTimeout time.Duration
}

type GatewayOption func(*Gateway)

func WithMaxRetries(n uint) GatewayOption {
	return func(g *Gateway) { g.maxRetries = n }
}

func WithBaseDelay(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.baseDelay = d
		}
	}
}

func WithCallTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.callTimeout = d
		}
	}
}

// NewGateway wraps model. A nil model yields a gateway that is permanently
// unhealthy; health is not re-evaluated later.
func NewGateway(model TextModel, logger *zap.Logger, opts ...GatewayOption) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gateway{
		model:       model,
		logger:      logger,
		maxRetries:  DefaultMaxRetries,
		baseDelay:   DefaultBaseDelay,
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Healthy() bool { return g.model != nil }

func (g *Gateway) ModelName() string {
	if g.model == nil {
		return ""
	}
	return g.model.Name()
}

var errEmptyBody = errors.New("model returned an empty body")

// Generate sends prompt to the model, retrying transport and remote failures
// with a doubling delay. An empty body is final and is not retried.
//
// The caller's cancellation is not propagated: once started, the call runs to
// completion or to the per-attempt timeout.
func (g *Gateway) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (ModelResponse, error) {
	if !g.Healthy() {
		return ModelResponse{}, &Error{Kind: KindConfigurationMissing, Err: errors.New("no model credential configured")}
	}

	ctx = context.WithoutCancel(ctx)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = g.baseDelay << g.maxRetries

	attempts := 0
	start := time.Now()
	completion, err := backoff.Retry(ctx, func() (Completion, error) {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
		defer cancel()

		c, err := g.model.GenerateText(callCtx, prompt, cfg)
		if err != nil {
			return Completion{}, err
		}
		if strings.TrimSpace(c.Text) == "" {
			return Completion{}, backoff.Permanent(errEmptyBody)
		}
		return c, nil
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(g.maxRetries+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			g.logger.Warn("model call failed, retrying",
				zap.String("model", g.model.Name()),
				zap.Int("attempt", attempts),
				zap.Duration("next_delay", next),
				zap.Error(err))
		}),
	)

	resp := ModelResponse{
		Text:      completion.Text,
		Latency:   time.Since(start),
		Attempts:  attempts,
		Truncated: completion.Truncated,
	}

	switch {
	case errors.Is(err, errEmptyBody):
		return resp, &Error{Kind: KindEmptyResponse, Err: err}
	case err != nil:
		return resp, &Error{Kind: KindRemoteUnavailable, Err: err}
	}

	if resp.Truncated {
		g.logger.Warn("model output hit the token limit",
			zap.String("model", g.model.Name()),
			zap.Int32("max_output_tokens", cfg.MaxOutputTokens))
	}
	return resp, nil
}
