package gpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.LevelOff, nil)
}

func TestClientCompleteSendsTurns(t *testing.T) {
	var got completionRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Use óleo de palma."}}]}`))
	}))
	defer srv.Close()

	c := NewClient("secret", testLogger(), WithEndpoint(srv.URL))
	reply, err := c.Complete(context.Background(), []domain.Turn{
		{Role: domain.RoleUser, Content: "olá"},
		{Role: domain.RoleAssistant, Content: "bom dia"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply != "Use óleo de palma." {
		t.Fatalf("unexpected reply %q", reply)
	}
	if auth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", auth)
	}
	if got.Model != DefaultModel {
		t.Fatalf("expected model %s, got %s", DefaultModel, got.Model)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "user" || got.Messages[1].Role != "assistant" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
	if got.Messages[0].Content != "olá" {
		t.Fatalf("unexpected content %q", got.Messages[0].Content)
	}
}

func TestClientAPIKeyHeader(t *testing.T) {
	var key, auth string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("api-key")
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", testLogger(), WithEndpoint(srv.URL), WithAPIKeyHeader(), WithModel(""))
	if _, err := c.Complete(context.Background(), []domain.Turn{{Role: domain.RoleUser, Content: "x"}}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if key != "k" || auth != "" {
		t.Fatalf("expected api-key header only, got api-key=%q auth=%q", key, auth)
	}
	if _, ok := got["model"]; ok {
		t.Fatalf("empty model should be omitted, got %v", got["model"])
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, `boom`, "500"},
		{"not found", http.StatusNotFound, `no such model`, "no such model"},
		{"bad json", http.StatusOK, `{not json`, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient("k", testLogger(), WithEndpoint(srv.URL))
			_, err := c.Complete(context.Background(), []domain.Turn{{Role: domain.RoleUser, Content: "x"}})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClientNoChoicesIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", testLogger(), WithEndpoint(srv.URL))
	reply, err := c.Complete(context.Background(), []domain.Turn{{Role: domain.RoleUser, Content: "x"}})
	if err != nil || reply != "" {
		t.Fatalf("expected empty reply, got %q err=%v", reply, err)
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", testLogger(), WithEndpoint(srv.URL), WithHTTPTimeout(20*time.Millisecond))
	if _, err := c.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected timeout error")
	}
}
