package stability

import "encoding/json"

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type generateBody struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    float64      `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
	Seed        *int64       `json:"seed,omitempty"`
}

// generateResponse covers the field-name variants seen across API versions:
// artifacts live under "artifacts" or "result".
type generateResponse struct {
	Artifacts json.RawMessage `json:"artifacts"`
	Result    json.RawMessage `json:"result"`
}

// rawArtifact enumerates every accepted alias for each artifact field in one
// place, instead of probing attribute by attribute.
type rawArtifact struct {
	Base64  string `json:"base64"`
	B64JSON string `json:"b64_json"`
	B64     string `json:"b64"`

	FinishReasonCamel string `json:"finishReason"`
	FinishReasonSnake string `json:"finish_reason"`

	Seed *int64 `json:"seed"`
}

// imageData returns the first populated base64 alias, or "" when the entry
// carries no image.
func (a *rawArtifact) imageData() string {
	for _, v := range []string{a.Base64, a.B64JSON, a.B64} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (a *rawArtifact) finishReason() string {
	if a.FinishReasonCamel != "" {
		return a.FinishReasonCamel
	}
	return a.FinishReasonSnake
}
