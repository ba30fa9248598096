package models

// Finish reason tags reported by the generation provider. Anything the
// provider sends that we do not recognize is treated as FinishUnknown.
const (
	FinishSuccess = "SUCCESS"
	FinishUnknown = "UNKNOWN"
)

// GenerationRequest holds one text-to-image request after the dispatcher has
// parsed it. Numeric fields are clamped by logic.Normalize before dispatch.
type GenerationRequest struct {
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Steps          int     `json:"steps"`
	CfgScale       float64 `json:"cfg_scale"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Samples        int     `json:"samples"`
	Seed           *int64  `json:"seed,omitempty"` // nil means the provider picks one
	Model          string  `json:"model"`
}

// Artifact is one generated image plus its provider metadata.
type Artifact struct {
	Data         []byte
	Seed         *int64
	FinishReason string
}
