package results

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parkrun-tools/milestones/internal/series"
)

const testPage = `<html><body>
<div class="Results-header"><h3><span class="format-date">01/01/2026</span><span>#42</span></h3></div>
<table class="Results-table"><tbody>
<tr class="Results-table-row" data-name="Anna Nowak" data-agegroup="SW30" data-runs="49"></tr>
<tr class="Results-table-row" data-name="Piotr Kowalski" data-agegroup="SM35-39" data-runs="24"></tr>
</tbody></table>
</body></html>`

func TestFetchEvent(t *testing.T) {
	var gotPath, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	t.Run("latest event", func(t *testing.T) {
		rows, number, err := client.FetchEvent(context.Background(), series.Cytadela, series.LatestEvent())
		if err != nil {
			t.Fatalf("FetchEvent() error: %v", err)
		}

		if gotPath != "/poznan/results/latestresults/" {
			t.Errorf("request path = %q, want /poznan/results/latestresults/", gotPath)
		}
		if gotUserAgent != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want the browser default", gotUserAgent)
		}
		if number != 42 {
			t.Errorf("resolved number = %d, want 42", number)
		}
		if len(rows) != 2 {
			t.Errorf("got %d rows, want 2", len(rows))
		}
	})

	t.Run("numbered event", func(t *testing.T) {
		_, number, err := client.FetchEvent(context.Background(), series.Cytadela, series.EventNumber(41))
		if err != nil {
			t.Fatalf("FetchEvent() error: %v", err)
		}

		if gotPath != "/poznan/results/41/" {
			t.Errorf("request path = %q, want /poznan/results/41/", gotPath)
		}
		if number != 41 {
			t.Errorf("resolved number = %d, want the requested 41", number)
		}
	})

	t.Run("second location slug", func(t *testing.T) {
		if _, _, err := client.FetchEvent(context.Background(), series.LasDebinski, series.EventNumber(5)); err != nil {
			t.Fatalf("FetchEvent() error: %v", err)
		}
		if gotPath != "/lasdebinski/results/5/" {
			t.Errorf("request path = %q, want /lasdebinski/results/5/", gotPath)
		}
	})
}

func TestFetchEvent_CustomUserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, UserAgent: "scanner-test/1.0"})
	if _, _, err := client.FetchEvent(context.Background(), series.Cytadela, series.LatestEvent()); err != nil {
		t.Fatalf("FetchEvent() error: %v", err)
	}

	if gotUserAgent != "scanner-test/1.0" {
		t.Errorf("User-Agent = %q, want scanner-test/1.0", gotUserAgent)
	}
}

func TestFetchEvent_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	_, _, err := client.FetchEvent(context.Background(), series.Cytadela, series.LatestEvent())
	if err == nil {
		t.Fatal("FetchEvent() expected error on 404")
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("error %v should be a *TransportError", err)
	}
}

func TestFetchEvent_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Options{BaseURL: server.URL})
	if _, _, err := client.FetchEvent(ctx, series.Cytadela, series.LatestEvent()); err == nil {
		t.Fatal("FetchEvent() expected error with canceled context")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Options{})

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %q, want the browser default", client.userAgent)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}

func TestNewClient_Overrides(t *testing.T) {
	client := NewClient(Options{
		BaseURL:   "http://www.parkrun.org.uk",
		UserAgent: "custom/2.0",
		Timeout:   5 * time.Second,
	})

	if client.baseURL != "http://www.parkrun.org.uk" {
		t.Errorf("baseURL = %q, want override", client.baseURL)
	}
	if client.userAgent != "custom/2.0" {
		t.Errorf("userAgent = %q, want override", client.userAgent)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
	}
}
