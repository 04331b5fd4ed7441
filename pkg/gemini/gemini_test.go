package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-todo/pkg/gemini"
)

func newTestClient(t *testing.T, apiKey, url string) *gemini.Client {
	t.Helper()
	client, err := gemini.New(gemini.Config{APIKey: apiKey, Model: "gemini-test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.SetAPIURL(url)
	return client
}

func TestClient_GenerateContent(t *testing.T) {
	var lastBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"models/x is not found","status":"NOT_FOUND"}}`))
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"API key not valid","status":"UNAUTHENTICATED"}}`))
			return
		}

		lastBody = nil
		if err := json.NewDecoder(r.Body).Decode(&lastBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := lastBody["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		text := parts[0].(map[string]any)["text"].(string)

		switch text {
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
			return
		case "empty":
			w.Write([]byte(`{"candidates":[]}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {"parts": [{"text": "{\"title\":"}, {"text": "\"x\"}"}], "role": "model"},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 4, "totalTokenCount": 14}
		}`))
	}))
	defer ts.Close()

	client := newTestClient(t, "test-api-key", ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hello"}}}},
			Temperature:       0.2,
			ResponseMIMEType:  gemini.MIMETypeJSON,
			ResponseSchema:    map[string]any{"type": "OBJECT"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != `{"title":"x"}` {
			t.Errorf("Text() = %q", got)
		}
		if resp.Usage.TotalTokens != 14 || resp.Usage.InputTokens != 10 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}

		genCfg, ok := lastBody["generationConfig"].(map[string]any)
		if !ok {
			t.Fatalf("generationConfig missing from request")
		}
		if genCfg["responseMimeType"] != gemini.MIMETypeJSON {
			t.Errorf("responseMimeType = %v", genCfg["responseMimeType"])
		}
		if _, ok := genCfg["responseSchema"]; !ok {
			t.Errorf("responseSchema missing")
		}
		if _, ok := lastBody["systemInstruction"]; !ok {
			t.Errorf("systemInstruction missing")
		}
	})

	t.Run("Quota Error Is Typed", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_429"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Status != "RESOURCE_EXHAUSTED" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "empty"}}}},
		})
		if !errors.Is(err, gemini.ErrNoCandidates) {
			t.Errorf("expected ErrNoCandidates, got %v", err)
		}
	})

	t.Run("Unknown Model", func(t *testing.T) {
		other, _ := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-missing"})
		other.SetAPIURL(ts.URL)
		_, err := other.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hello"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 APIError, got %v", err)
		}
	})
}

func TestClient_MissingAPIKey(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := newTestClient(t, "", ts.URL)
	_, err := client.GenerateContent(context.Background(), &gemini.Request{})
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	if called {
		t.Errorf("no request should be sent without a key")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Model != gemini.DefaultModel || cfg.APIURL != gemini.DefaultAPIURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
