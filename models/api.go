package models

// GenerateForm is the JSON body of POST /api/v1/generate.
type GenerateForm struct {
	UserID         string  `json:"user_id" binding:"required"`
	Username       string  `json:"username"`
	Prompt         string  `json:"prompt" binding:"required"`
	NegativePrompt string  `json:"negative_prompt"`
	Steps          int     `json:"steps"`
	CfgScale       float64 `json:"cfg_scale"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Samples        int     `json:"samples"`
	Seed           *int64  `json:"seed"`
	Model          string  `json:"model"`
}

// ToRequest converts the form into the pipeline request type.
func (f *GenerateForm) ToRequest() GenerationRequest {
	return GenerationRequest{
		UserID:         f.UserID,
		Username:       f.Username,
		Prompt:         f.Prompt,
		NegativePrompt: f.NegativePrompt,
		Steps:          f.Steps,
		CfgScale:       f.CfgScale,
		Width:          f.Width,
		Height:         f.Height,
		Samples:        f.Samples,
		Seed:           f.Seed,
		Model:          f.Model,
	}
}

// GenerateImage is one delivered image in the HTTP response.
type GenerateImage struct {
	B64          string `json:"b64"`
	Seed         *int64 `json:"seed,omitempty"`
	FinishReason string `json:"finish_reason"`
}

// GenerateResult is the success payload of POST /api/v1/generate.
type GenerateResult struct {
	Images  []GenerateImage `json:"images"`
	Notices []string        `json:"notices,omitempty"`
}
