package aipipeline

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "tripmigo/aipipeline"

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// UseCase describes one enrichment call: how to build its prompt, what the
// answer must look like and what to return when the model cannot deliver.
type UseCase[T any] struct {
	Name        string
	BuildPrompt func() string
	Config      GenerationConfig
	Schema      *Schema
	Reconcile   func(Document) (T, error)
	Fallback    func() T
}

type Result[T any] struct {
	Value  T
	Source Source
	// FallbackKind is the failure that forced the fallback. Empty for model results.
	FallbackKind Kind
	Attempts     int
	Truncated    bool
}

type Pipeline struct {
	gateway   ModelGateway
	extractor Extractor
	logger    *zap.Logger
	metrics   *Metrics
}

func NewPipeline(gateway ModelGateway, extractor Extractor, logger *zap.Logger, metrics *Metrics) *Pipeline {
	if extractor == nil {
		extractor = FirstLastExtractor{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		gateway:   gateway,
		extractor: extractor,
		logger:    logger,
		metrics:   metrics,
	}
}

func (p *Pipeline) Healthy() bool {
	return p.gateway != nil && p.gateway.Healthy()
}

// Run drives BUILD_PROMPT -> CALL_MODEL -> EXTRACT -> RECONCILE. Any failure
// along the way ends in the use case's fallback, so Run always yields a value.
func Run[T any](ctx context.Context, p *Pipeline, uc UseCase[T]) Result[T] {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "aipipeline."+uc.Name)
	defer span.End()

	log := p.logger.With(zap.String("use_case", uc.Name))

	value, resp, err := runModel(ctx, p, uc)
	if err == nil {
		p.metrics.observeOutcome(uc.Name, SourceModel, "")
		span.SetAttributes(attribute.String("ai.source", string(SourceModel)))
		log.Info("model result reconciled",
			zap.Int("attempts", resp.Attempts),
			zap.Duration("latency", resp.Latency),
			zap.Bool("truncated", resp.Truncated))
		return Result[T]{
			Value:     value,
			Source:    SourceModel,
			Attempts:  resp.Attempts,
			Truncated: resp.Truncated,
		}
	}

	kind := KindOf(err)
	if kind == "" {
		kind = KindReconciliationFailure
	}

	fields := []zap.Field{zap.String("kind", string(kind)), zap.Int("attempts", resp.Attempts), zap.Error(err)}
	var pe *Error
	if errors.As(err, &pe) && pe.Detail != "" {
		fields = append(fields, zap.String("detail", pe.Detail))
	}
	if kind == KindConfigurationMissing {
		log.Info("model not configured, using fallback", fields...)
	} else {
		log.Warn("model result unusable, using fallback", fields...)
	}

	span.SetAttributes(
		attribute.String("ai.source", string(SourceFallback)),
		attribute.String("ai.fallback_kind", string(kind)),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(kind))
	p.metrics.observeOutcome(uc.Name, SourceFallback, kind)

	return Result[T]{
		Value:        uc.Fallback(),
		Source:       SourceFallback,
		FallbackKind: kind,
		Attempts:     resp.Attempts,
	}
}

func runModel[T any](ctx context.Context, p *Pipeline, uc UseCase[T]) (T, ModelResponse, error) {
	var zero T

	if !p.Healthy() {
		return zero, ModelResponse{}, &Error{Kind: KindConfigurationMissing}
	}

	prompt := uc.BuildPrompt()

	resp, err := p.gateway.Generate(ctx, prompt, uc.Config)
	p.recordAttempts(uc.Name, resp, err)
	if err != nil {
		return zero, resp, err
	}

	doc, err := p.extractor.Extract(resp.Text)
	if err != nil {
		return zero, resp, err
	}

	if uc.Schema != nil {
		if err := uc.Schema.Validate(doc); err != nil {
			return zero, resp, err
		}
	}

	value, err := uc.Reconcile(doc)
	if err != nil {
		if KindOf(err) == "" {
			err = &Error{Kind: KindReconciliationFailure, Err: err}
		}
		return zero, resp, err
	}
	return value, resp, nil
}

func (p *Pipeline) recordAttempts(useCase string, resp ModelResponse, err error) {
	if resp.Attempts == 0 {
		return
	}
	p.metrics.observeLatency(useCase, resp.Latency)
	failed := resp.Attempts
	if err == nil {
		p.metrics.observeAttempt(useCase, "success")
		failed--
	}
	for i := 0; i < failed; i++ {
		p.metrics.observeAttempt(useCase, "failure")
	}
}
