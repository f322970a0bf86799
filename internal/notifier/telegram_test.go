package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/parkrun-tools/milestones/internal/finisher"
	"github.com/parkrun-tools/milestones/internal/series"
)

func TestNewTelegramNotifier_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{
			name:      "valid environment",
			botToken:  "test-token",
			chatID:    "12345",
			wantError: false,
		},
		{
			name:      "missing bot token",
			botToken:  "",
			chatID:    "12345",
			wantError: true,
		},
		{
			name:      "missing chat ID",
			botToken:  "test-token",
			chatID:    "",
			wantError: true,
		},
		{
			name:      "both missing",
			botToken:  "",
			chatID:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", tt.botToken)
			t.Setenv("TELEGRAM_CHAT_ID", tt.chatID)

			n, err := NewTelegramNotifier()
			if tt.wantError {
				if err == nil {
					t.Error("NewTelegramNotifier() expected error, got nil")
				}
				if n != nil {
					t.Error("NewTelegramNotifier() should return nil notifier on error")
				}
				return
			}
			if err != nil {
				t.Errorf("NewTelegramNotifier() unexpected error: %v", err)
			}
			if n == nil {
				t.Fatal("NewTelegramNotifier() returned nil notifier")
			}
			if n.httpClient == nil {
				t.Error("httpClient should not be nil")
			}
		})
	}
}

// TestTelegramAnnounce_Success tests a successful digest post
func TestTelegramAnnounce_Success(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true}) // nolint:errcheck
	}))
	defer server.Close()

	n := &TelegramNotifier{
		botToken:   "test-token",
		chatID:     "12345",
		baseURL:    server.URL + "/bot",
		httpClient: server.Client(),
	}

	celebrants := []finisher.Finisher{
		{Runs: 49, Name: "Anna Nowak", AgeGroup: "SW30", LastEventID: 479},
	}

	if err := n.Announce(celebrants, series.Cytadela, 479); err != nil {
		t.Fatalf("Announce() unexpected error: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Errorf("request path = %q, want /bottest-token/sendMessage", gotPath)
	}
	if gotPayload["chat_id"] != "12345" {
		t.Errorf("chat_id = %v, want 12345", gotPayload["chat_id"])
	}
	if gotPayload["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v, want HTML", gotPayload["parse_mode"])
	}
	text, _ := gotPayload["text"].(string)
	if !strings.Contains(text, "Anna Nowak") {
		t.Errorf("digest text missing celebrant:\n%s", text)
	}
}

// TestTelegramAnnounce_APIError tests API error handling
func TestTelegramAnnounce_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ // nolint:errcheck
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer server.Close()

	n := &TelegramNotifier{
		botToken:   "test-token",
		chatID:     "12345",
		baseURL:    server.URL + "/bot",
		httpClient: server.Client(),
	}

	err := n.Announce(nil, series.Cytadela, 479)
	if err == nil {
		t.Fatal("Announce() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error = %v, want description from API", err)
	}
}

// TestTelegramAnnounce_HTTPError tests non-200 responses
func TestTelegramAnnounce_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	n := &TelegramNotifier{
		botToken:   "test-token",
		chatID:     "12345",
		baseURL:    server.URL + "/bot",
		httpClient: server.Client(),
	}

	err := n.Announce(nil, series.Cytadela, 479)
	if err == nil {
		t.Fatal("Announce() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("error = %v, want status 500 mentioned", err)
	}
}
