package reason

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/repocard/repocard/internal/signals"
)

func anthropicTestEngine(t *testing.T, handler http.HandlerFunc) *AnthropicEngine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	e := NewAnthropicEngine("test-key", "")
	e.baseURL = srv.URL
	return e
}

func TestAnthropicEngine_Reason(t *testing.T) {
	var gotVersion, gotKey string
	e := anthropicTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		resp := anthropicResponse{}
		resp.Content = []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{
			{Type: "text", Text: `{"problem": "from the model"}`},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	got, err := e.Reason(context.Background(), signals.Signals{ProjectType: signals.TypeCLI}, "content")
	if err != nil {
		t.Fatalf("Reason: %v", err)
	}
	if got.Problem != "from the model" {
		t.Errorf("problem = %q", got.Problem)
	}
	if gotVersion != anthropicAPIVersion {
		t.Errorf("anthropic-version = %q", gotVersion)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
}

func TestAnthropicEngine_APIError(t *testing.T) {
	e := anthropicTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "overloaded_error", "message": "try later"}}`, http.StatusServiceUnavailable)
	})

	if _, err := e.Reason(context.Background(), signals.Signals{}, ""); err == nil {
		t.Fatal("API error status should surface as an error")
	}
}

func TestAnthropicEngine_FailureDegradesThroughRun(t *testing.T) {
	e := NewAnthropicEngine("test-key", "")
	e.baseURL = "http://127.0.0.1:1" // nothing listens here

	got := Run(context.Background(), e, signals.Signals{}, "", nil)
	if got.Problem != Fallback().Problem {
		t.Error("unreachable backend should degrade to the fallback bundle")
	}
}

func TestNewAnthropicEngine_DefaultModel(t *testing.T) {
	e := NewAnthropicEngine("k", "")
	if e.model != DefaultAnthropicModel {
		t.Errorf("model = %q, want default", e.model)
	}
	e = NewAnthropicEngine("k", "claude-sonnet-4-20250514")
	if e.model != "claude-sonnet-4-20250514" {
		t.Errorf("model override ignored, got %q", e.model)
	}
}
