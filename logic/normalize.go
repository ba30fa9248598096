package logic

import "github.com/OnurLexa/DreamGen/models"

// Normalize fills defaults for zero-valued fields and clamps every numeric
// parameter into the range the provider accepts. It is pure and idempotent:
// normalizing an already-normalized request changes nothing.
func Normalize(req models.GenerationRequest, defaultModel string) models.GenerationRequest {
	if req.Steps == 0 {
		req.Steps = 30
	}
	if req.CfgScale == 0 {
		req.CfgScale = 7.0
	}
	if req.Samples == 0 {
		req.Samples = 1
	}

	req.Steps = clampInt(req.Steps, 10, 80)
	req.CfgScale = clampFloat(req.CfgScale, 1.0, 30.0)
	req.Samples = clampInt(req.Samples, 1, 4)
	req.Width = coerceDimension(req.Width)
	req.Height = coerceDimension(req.Height)

	if req.Model == "" {
		req.Model = defaultModel
	}
	return req
}

// coerceDimension keeps a dimension only when it is one of the sizes the
// provider supports; anything else silently falls back to 512.
func coerceDimension(v int) int {
	switch v {
	case 256, 512, 768, 1024:
		return v
	}
	return 512
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
