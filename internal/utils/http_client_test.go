package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", 5*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:3000" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestNewHTTPClient_SendsAcceptHeader(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/people")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if accept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", accept)
	}
}
