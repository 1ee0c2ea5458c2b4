package mugloar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGateway_GetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"hpot","name":"Healing potion","cost":50}]`))
	}))
	defer srv.Close()

	gw := mustGateway(t)
	res, err := gw.Send(context.Background(), srv.URL+"/api/v2/g/shop", http.MethodGet)
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if got := res.Get("0.cost").Int(); got != 50 {
		t.Fatalf("expected cost 50, got %d", got)
	}
}

func TestGateway_PostSendsPost(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"gameId":"abc","lives":3,"gold":0,"level":0}`))
	}))
	defer srv.Close()

	gw := mustGateway(t)
	res, err := gw.Send(context.Background(), srv.URL+"/api/v2/game/start", http.MethodPost)
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v2/game/start" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if res.Get("gameId").String() != "abc" {
		t.Fatalf("expected gameId abc, got %s", res.Get("gameId").String())
	}
}

func TestGateway_RejectsUnsupportedMethod(t *testing.T) {
	gw := &Gateway{}
	for _, m := range []string{"PUT", "DELETE", "get", ""} {
		if _, err := gw.Send(context.Background(), "http://example.invalid", m); !errors.Is(err, ErrInvalidMethod) {
			t.Fatalf("method %q: expected ErrInvalidMethod, got %v", m, err)
		}
	}
}

func TestGateway_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte(`{"status":"Game Over"}`))
	}))
	defer srv.Close()

	gw := mustGateway(t)
	_, err := gw.Send(context.Background(), srv.URL+"/api/v2/g/solve/x", http.MethodPost)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusGone {
		t.Fatalf("expected StatusError with 410, got %v", err)
	}
}

func TestGateway_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gold": 1`))
	}))
	defer srv.Close()

	gw := mustGateway(t)
	if _, err := gw.Send(context.Background(), srv.URL, http.MethodGet); !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestGateway_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	gw := mustGateway(t)
	if _, err := gw.Send(context.Background(), addr, http.MethodGet); err == nil {
		t.Fatalf("expected error from closed server")
	}
}

func mustGateway(t *testing.T) *Gateway {
	t.Helper()
	gw, err := NewGateway(5 * time.Second)
	if err != nil {
		t.Fatalf("NewGateway error: %v", err)
	}
	return gw
}
