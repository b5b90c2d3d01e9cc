package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsHandler_Defaults(t *testing.T) {
	t.Parallel()

	ctr := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "postal",
		Name:      "validate_total",
		Help:      "test counter",
	})

	h, _ := New(Options{
		Register: func(reg prometheus.Registerer) error {
			return reg.Register(ctr)
		},
	})

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status /metrics = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	content := string(body)
	if !strings.Contains(content, "# HELP postal_validate_total test counter") {
		t.Fatalf("metrics output missing HELP line:\n%s", content)
	}
	if !strings.Contains(content, "# TYPE postal_validate_total counter") {
		t.Fatalf("metrics output missing TYPE line:\n%s", content)
	}

	hr, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer hr.Body.Close()
	if hr.StatusCode != http.StatusOK {
		t.Fatalf("status /health = %d, want 200", hr.StatusCode)
	}
}

func TestMetricsHandler_CustomHealthFailure(t *testing.T) {
	t.Parallel()

	h, _ := New(Options{
		HealthTimeout: 50 * time.Millisecond,
		Health: func(ctx context.Context, r *http.Request) error {
			return errors.New("rule table unavailable")
		},
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status /health = %d, want 503", resp.StatusCode)
	}
}

func TestMetricsHandler_HealthTimeout(t *testing.T) {
	t.Parallel()

	h, _ := New(Options{
		HealthTimeout: 20 * time.Millisecond,
		Health: func(ctx context.Context, r *http.Request) error {
			<-ctx.Done()
			time.Sleep(50 * time.Millisecond)
			return nil
		},
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status /health = %d, want 503", resp.StatusCode)
	}
}

func TestMetricsHandler_CustomPathsAndRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h, got := New(Options{
		Registry:    reg,
		MetricsPath: "/m",
		HealthPath:  "/h",
	})
	if got != reg {
		t.Fatal("New should reuse the provided registry")
	}

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/m")
	if err != nil {
		t.Fatalf("GET /m: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status /m = %d, want 200", resp.StatusCode)
	}
}
