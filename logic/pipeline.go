package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OnurLexa/DreamGen/models"
	"github.com/OnurLexa/DreamGen/pkg/filter"
	"github.com/OnurLexa/DreamGen/pkg/gate"
	"github.com/OnurLexa/DreamGen/pkg/ratelimit"
	"github.com/OnurLexa/DreamGen/pkg/snowflake"
)

// Generator is the provider client seen by the pipeline.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) ([]models.Artifact, error)
}

// Recorder appends usage rows. A failing recorder never fails the request.
type Recorder interface {
	InsertUsage(r *models.UsageRecord) error
}

// Responder is how the pipeline talks back to whichever dispatcher invoked
// it (Discord interaction, HTTP handler).
type Responder interface {
	// Ack signals that processing started, so long generations do not time
	// out on the caller side.
	Ack() error
	// Reject ends the request before any provider call (cooldown, filter).
	Reject(msg string) error
	// Notify reports a non-terminal or terminal condition after Ack.
	Notify(msg string) error
	// Deliver hands one generated image to the user. idx is zero-based.
	Deliver(idx int, art models.Artifact, req models.GenerationRequest) error
}

// Pipeline composes admission, generation and recording into the per-request
// flow. One instance is shared by all dispatchers.
type Pipeline struct {
	Limiter  *ratelimit.Cooldown
	Filter   *filter.Blocklist
	Gate     *gate.Pool
	Client   Generator
	Recorder Recorder

	DefaultModel string
}

// Handle runs one request through the full state machine:
// cooldown -> content -> normalize -> ack -> gated generate -> deliver -> record.
// The returned error is the terminal failure (already reported to the user),
// nil when the flow reached the recording step.
func (p *Pipeline) Handle(ctx context.Context, req models.GenerationRequest, resp Responder) error {
	lg := zap.L().With(
		zap.String("request_id", uuid.NewString()),
		zap.String("user_id", req.UserID),
	)

	allowed, remain := p.Limiter.CheckAndUpdate(req.UserID, time.Now())
	if !allowed {
		_ = resp.Reject(fmt.Sprintf("Please wait `%d` seconds and try again.", remain))
		return &CooldownError{Remaining: remain}
	}

	if p.Filter.IsBlocked(req.Prompt) || (req.NegativePrompt != "" && p.Filter.IsBlocked(req.NegativePrompt)) {
		_ = resp.Reject("The prompt was blocked (safety/keyword).")
		return ErrBlocked
	}

	req = Normalize(req, p.DefaultModel)

	if err := resp.Ack(); err != nil {
		lg.Warn("ack failed", zap.Error(err))
	}

	artifacts, err := p.generate(ctx, req)
	if err != nil {
		_ = resp.Notify(fmt.Sprintf("Generation request failed: `%v`", err))
		lg.Error("generation failed", zap.Error(err))
		return err
	}

	if len(artifacts) == 0 {
		_ = resp.Notify("No image was generated or the provider sent an unexpected response.")
		return ErrEmptyResult
	}

	delivered := 0
	for i, art := range artifacts {
		finish := strings.ToUpper(art.FinishReason)
		if finish == "" {
			finish = models.FinishUnknown
		}
		if strings.Contains(finish, "FILTER") || strings.Contains(finish, "CONTENT") {
			_ = resp.Notify(fmt.Sprintf("A result was stopped by the provider safety filter (finish_reason=%s). Review the prompt and try again.", finish))
			continue
		}
		if err := resp.Deliver(i, art, req); err != nil {
			lg.Warn("deliver failed", zap.Int("index", i), zap.Error(err))
			continue
		}
		delivered++
	}

	// One row per request, with the seed the user asked for; recorder
	// failures are logged and contained.
	if err := p.Recorder.InsertUsage(buildUsageRecord(req, lg)); err != nil {
		lg.Error("usage record write failed", zap.Error(err))
	}

	if delivered == 0 {
		_ = resp.Notify("No image could be delivered (most likely everything was filtered).")
	}
	return nil
}

// generate runs the provider call under the concurrency gate. The permit is
// released on every exit path via defer.
func (p *Pipeline) generate(ctx context.Context, req models.GenerationRequest) ([]models.Artifact, error) {
	release, ok := p.Gate.Acquire(ctx)
	if !ok {
		return nil, ErrBusy
	}
	defer release()

	return p.Client.Generate(ctx, req)
}

func buildUsageRecord(req models.GenerationRequest, lg *zap.Logger) *models.UsageRecord {
	id, err := snowflake.GetID()
	if err != nil {
		lg.Warn("snowflake id failed", zap.Error(err))
	}
	return &models.UsageRecord{
		ID:             id,
		UserID:         req.UserID,
		Username:       req.Username,
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Model:          req.Model,
		Seed:           req.Seed,
		Width:          req.Width,
		Height:         req.Height,
		Steps:          req.Steps,
		Samples:        req.Samples,
		CfgScale:       req.CfgScale,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}
