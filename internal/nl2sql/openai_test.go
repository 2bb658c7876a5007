package nl2sql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAITranslateSendsChatRequest(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + "```sql\\nSELECT * FROM schools;\\n```" + `"}}]}`))
	}))
	defer srv.Close()

	translator, err := NewOpenAITranslator(OpenAIConfig{BaseURL: srv.URL, APIKey: "key-1", Model: "gpt-5"})
	if err != nil {
		t.Fatalf("NewOpenAITranslator() error = %v", err)
	}

	result, err := translator.Translate(context.Background(), Request{Question: "Show all schools"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer key-1" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPayload["model"] != "gpt-5" {
		t.Fatalf("model = %v", gotPayload["model"])
	}
	if gotPayload["max_tokens"] != float64(250) {
		t.Fatalf("max_tokens = %v", gotPayload["max_tokens"])
	}
	messages, ok := gotPayload["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %#v", gotPayload["messages"])
	}
	user, _ := messages[1].(map[string]any)
	content, _ := user["content"].(string)
	if !strings.Contains(content, "Query: Show all schools") {
		t.Fatalf("user prompt missing question:\n%s", content)
	}

	// Fences are left intact; extraction happens downstream.
	if !strings.HasPrefix(result.Text, "```sql") {
		t.Fatalf("Text = %q", result.Text)
	}
	if result.Provider != "openai-compatible" || result.Model != "gpt-5" {
		t.Fatalf("result = %#v", result)
	}
}

func TestOpenAITranslateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer srv.Close()

	translator, err := NewOpenAITranslator(OpenAIConfig{BaseURL: srv.URL, APIKey: "key-1"})
	if err != nil {
		t.Fatalf("NewOpenAITranslator() error = %v", err)
	}

	_, err = translator.Translate(context.Background(), Request{Question: "Show all schools"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("error = %v", err)
	}
}

func TestOpenAITranslateRejectsEmptyChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	}))
	defer srv.Close()

	translator, err := NewOpenAITranslator(OpenAIConfig{BaseURL: srv.URL, APIKey: "key-1"})
	if err != nil {
		t.Fatalf("NewOpenAITranslator() error = %v", err)
	}

	if _, err := translator.Translate(context.Background(), Request{Question: "Show all schools"}); err == nil {
		t.Fatal("expected error for blank completion")
	}
}

func TestNewOpenAITranslatorValidation(t *testing.T) {
	if _, err := NewOpenAITranslator(OpenAIConfig{APIKey: "k"}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := NewOpenAITranslator(OpenAIConfig{BaseURL: "http://localhost"}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
