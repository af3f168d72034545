package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
)

func TestOpenWeatherClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("lat") != "52.5096454" || q.Get("lon") != "13.5189826" {
			t.Fatalf("unexpected coords: %s", r.URL.RawQuery)
		}
		if q.Get("appid") != "test-key" {
			t.Fatalf("api key not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[{"main":"Clouds"}],"name":"Berlin","cod":200}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherClient(srv.URL, "test-key", time.Second)
	payload, err := client.Current(context.Background(), 52.5096454, 13.5189826)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if string(payload) != `{"weather":[{"main":"Clouds"}],"name":"Berlin","cod":200}` {
		t.Fatalf("payload not proxied verbatim: %s", payload)
	}
}

func TestOpenWeatherClient_Current_BadParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"cod":"400","message":"wrong latitude"}`))
	}))
	defer srv.Close()

	client := NewOpenWeatherClient(srv.URL, "test-key", time.Second)
	if _, err := client.Current(context.Background(), 9999, 9999); !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
