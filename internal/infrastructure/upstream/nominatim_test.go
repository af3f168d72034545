package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
)

func TestNominatimClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("city") != "Kabul" || q.Get("country") != "Afghanistan" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("format") != "json" {
			t.Fatalf("format=json not set")
		}
		if q.Has("street") {
			t.Fatalf("empty components must not be forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"display_name":"Kabul, Afghanistan","lat":"34.53","lon":"69.16"}]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, time.Second)
	payload, count, err := client.Search(context.Background(), ports.AddressQuery{City: "Kabul", Country: "Afghanistan"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 match, got %d", count)
	}
	if string(payload) == "" {
		t.Fatalf("expected raw payload")
	}
}

func TestNominatimClient_Search_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, time.Second)
	_, count, err := client.Search(context.Background(), ports.AddressQuery{City: "Nowhere"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 matches, got %d", count)
	}
}

func TestNominatimClient_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, time.Second)
	if _, _, err := client.Search(context.Background(), ports.AddressQuery{City: "Kabul"}); err == nil {
		t.Fatalf("expected error on upstream 502")
	}
}
