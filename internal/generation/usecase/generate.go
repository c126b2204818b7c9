package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskextreme-ai/internal/generation"
	"taskextreme-ai/internal/metrics"
	"taskextreme-ai/pkg/inference"
)

// Generate turns the request content into task drafts.
func (uc *implUseCase) Generate(ctx context.Context, input generation.GenerateInput) (generation.GenerateOutput, error) {
	content, source, err := uc.resolveContent(ctx, input)
	if err != nil {
		uc.countFailure(err)
		return generation.GenerateOutput{}, err
	}
	metrics.GenerationSources.WithLabelValues(string(source)).Inc()

	envelope := uc.compose(content, input.ContextDeadline)
	uc.l.Infof(ctx, "Generate: source=%s content_length=%d", source, len(envelope.UserContent))

	started := time.Now()
	raw, err := uc.llm.ChatCompletion(ctx, envelope.SystemInstruction, envelope.UserContent)
	metrics.InferenceDuration.WithLabelValues(uc.llm.Model()).Observe(time.Since(started).Seconds())
	if err != nil {
		uc.countFailure(err)
		return generation.GenerateOutput{}, fmt.Errorf("chat completion: %w", err)
	}

	output := generation.GenerateOutput{Source: source}

	tasks, ok := extractTaskArray(raw)
	if !ok {
		uc.l.Warnf(ctx, "Generate: no JSON array in completion, returning raw text (%d bytes)", len(raw))
		metrics.GenerationRequests.WithLabelValues(metrics.OutcomeRaw).Inc()
		output.Tasks = raw
		return output, nil
	}

	count, violations := checkDrafts(tasks)
	if len(violations) > 0 {
		metrics.DraftSchemaViolations.Inc()
		uc.l.Warnf(ctx, "Generate: %d draft schema violations, first: %s", len(violations), violations[0])
	}

	uc.l.Infof(ctx, "Generate: extracted %d drafts", count)
	metrics.GenerationRequests.WithLabelValues(metrics.OutcomeExtracted).Inc()

	output.Tasks = tasks
	output.Extracted = true
	output.DraftCount = count
	return output, nil
}

// compose builds the prompt for a request made now.
func (uc *implUseCase) compose(content, deadline string) generation.PromptEnvelope {
	return generation.PromptEnvelope{
		SystemInstruction: uc.composer.Build(uc.now(), deadline),
		UserContent:       content,
	}
}

func (uc *implUseCase) countFailure(err error) {
	var upErr *inference.UpstreamError
	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		metrics.GenerationRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
	case errors.As(err, &upErr):
		metrics.GenerationRequests.WithLabelValues(metrics.OutcomeUpstream).Inc()
	default:
		metrics.GenerationRequests.WithLabelValues(metrics.OutcomeInternal).Inc()
	}
}
