package stability

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/OnurLexa/DreamGen/models"
)

const defaultBaseURL = "https://api.stability.ai"

// Client calls the Stability text-to-image endpoint and normalizes the
// response into models.Artifact. It performs no logging and touches no other
// component; admission and recording happen in logic.
type Client struct {
	BaseURL string
	apiKey  string
	http    *http.Client
}

func New(apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Generate posts req to /v1/generation/{model}/text-to-image and returns the
// artifacts in the order the provider produced them. The count may be lower
// than req.Samples: entries without image data are skipped.
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest) ([]models.Artifact, error) {
	prompts := []textPrompt{{Text: req.Prompt, Weight: 1.0}}
	if req.NegativePrompt != "" {
		prompts = append(prompts, textPrompt{Text: req.NegativePrompt, Weight: -1.0})
	}

	body := generateBody{
		TextPrompts: prompts,
		CfgScale:    req.CfgScale,
		Height:      req.Height,
		Width:       req.Width,
		Samples:     req.Samples,
		Steps:       req.Steps,
		Seed:        req.Seed,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.BaseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(text)}
	}

	var gr generateResponse
	if err := json.Unmarshal(text, &gr); err != nil {
		return nil, err
	}
	return normalizeArtifacts(gr)
}

// normalizeArtifacts maps both known response shapes to one artifact list:
// entries may sit under "artifacts" or "result", and may be wrapped in one
// extra array layer.
func normalizeArtifacts(gr generateResponse) ([]models.Artifact, error) {
	raw := gr.Artifacts
	if len(raw) == 0 || string(raw) == "null" {
		raw = gr.Result
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var entries []rawArtifact
	if err := json.Unmarshal(raw, &entries); err != nil {
		// nested variant: unwrap the first inner array
		var nested [][]rawArtifact
		if err2 := json.Unmarshal(raw, &nested); err2 != nil {
			return nil, err
		}
		if len(nested) > 0 {
			entries = nested[0]
		}
	}

	results := make([]models.Artifact, 0, len(entries))
	for i := range entries {
		art := &entries[i]
		data := art.imageData()
		if data == "" {
			continue
		}
		img, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		results = append(results, models.Artifact{
			Data:         img,
			Seed:         art.Seed,
			FinishReason: art.finishReason(),
		})
	}
	return results, nil
}
