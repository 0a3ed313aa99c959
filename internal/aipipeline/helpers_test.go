package aipipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

type reply struct {
	text      string
	err       error
	truncated bool
}

// scriptedModel answers from a fixed script; the last reply repeats.
type scriptedModel struct {
	mu      sync.Mutex
	script  []reply
	calls   int
	prompts []string
}

func newScriptedModel(script ...reply) *scriptedModel {
	return &scriptedModel{script: script}
}

func (m *scriptedModel) Name() string { return "scripted" }

func (m *scriptedModel) GenerateText(_ context.Context, prompt string, _ GenerationConfig) (Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.script[len(m.script)-1]
	if m.calls < len(m.script) {
		r = m.script[m.calls]
	}
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if r.err != nil {
		return Completion{}, r.err
	}
	return Completion{Text: r.text, Truncated: r.truncated}, nil
}

func (m *scriptedModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newTestPipeline(t *testing.T, model TextModel) *Pipeline {
	t.Helper()
	logger := zaptest.NewLogger(t)
	var gw *Gateway
	if model == nil {
		gw = NewGateway(nil, logger)
	} else {
		gw = NewGateway(model, logger, WithBaseDelay(time.Millisecond))
	}
	return NewPipeline(gw, FirstLastExtractor{}, logger, nil)
}
