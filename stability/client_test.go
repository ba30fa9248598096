package stability

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnurLexa/DreamGen/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", 5*time.Second)
	c.BaseURL = srv.URL
	return c
}

func baseRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Prompt:   "a red fox",
		Steps:    30,
		CfgScale: 7.0,
		Width:    512,
		Height:   512,
		Samples:  1,
		Model:    "stable-diffusion-xl-1024-v1-0",
	}
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestClient_Generate_RequestShape(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody generateBody

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"artifacts": []}`)
	})

	req := baseRequest()
	req.NegativePrompt = "blurry"
	seed := int64(99)
	req.Seed = &seed

	_, err := c.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)

	require.Len(t, gotBody.TextPrompts, 2)
	assert.Equal(t, textPrompt{Text: "a red fox", Weight: 1.0}, gotBody.TextPrompts[0])
	assert.Equal(t, textPrompt{Text: "blurry", Weight: -1.0}, gotBody.TextPrompts[1])
	require.NotNil(t, gotBody.Seed)
	assert.Equal(t, int64(99), *gotBody.Seed)
}

func TestClient_Generate_SeedOmittedWhenNil(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "seed")
		fmt.Fprint(w, `{"artifacts": []}`)
	})

	_, err := c.Generate(context.Background(), baseRequest())
	require.NoError(t, err)
}

func TestClient_Generate_NormalizesResponseVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"flat artifacts with base64",
			fmt.Sprintf(`{"artifacts":[{"base64":"%s","finishReason":"SUCCESS","seed":1},{"base64":"%s","finishReason":"SUCCESS","seed":2}]}`,
				b64("img-one"), b64("img-two")),
		},
		{
			"one extra nesting level",
			fmt.Sprintf(`{"artifacts":[[{"base64":"%s","finishReason":"SUCCESS","seed":1},{"base64":"%s","finishReason":"SUCCESS","seed":2}]]}`,
				b64("img-one"), b64("img-two")),
		},
		{
			"result field with b64_json",
			fmt.Sprintf(`{"result":[{"b64_json":"%s","finish_reason":"SUCCESS","seed":1},{"b64_json":"%s","finish_reason":"SUCCESS","seed":2}]}`,
				b64("img-one"), b64("img-two")),
		},
		{
			"b64 alias",
			fmt.Sprintf(`{"artifacts":[{"b64":"%s","finishReason":"SUCCESS","seed":1},{"b64":"%s","finishReason":"SUCCESS","seed":2}]}`,
				b64("img-one"), b64("img-two")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			arts, err := c.Generate(context.Background(), baseRequest())
			require.NoError(t, err)
			require.Len(t, arts, 2)

			assert.Equal(t, []byte("img-one"), arts[0].Data)
			assert.Equal(t, []byte("img-two"), arts[1].Data)
			assert.Equal(t, "SUCCESS", arts[0].FinishReason)
			require.NotNil(t, arts[0].Seed)
			assert.Equal(t, int64(1), *arts[0].Seed)
		})
	}
}

func TestClient_Generate_SkipsEntriesWithoutImageData(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"artifacts":[{"finishReason":"ERROR"},{"base64":"%s","finishReason":"SUCCESS"}]}`, b64("ok"))
	})

	arts, err := c.Generate(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, []byte("ok"), arts[0].Data)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"invalid prompt"}`)
	})

	_, err := c.Generate(context.Background(), baseRequest())

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.Status)
	assert.Contains(t, upErr.Body, "invalid prompt")
}

func TestClient_Generate_DecodeError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"artifacts":[{"base64":"%s","finishReason":"SUCCESS"},{"base64":"!!not-base64!!","finishReason":"SUCCESS"}]}`, b64("fine"))
	})

	_, err := c.Generate(context.Background(), baseRequest())

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 1, decErr.Index, "the failing artifact is identified")
}

func TestClient_Generate_EmptyAndMissingArtifactFields(t *testing.T) {
	for _, body := range []string{`{}`, `{"artifacts":null}`, `{"artifacts":[]}`} {
		t.Run(body, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			})
			arts, err := c.Generate(context.Background(), baseRequest())
			require.NoError(t, err)
			assert.Empty(t, arts)
		})
	}
}
