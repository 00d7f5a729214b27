package client

import (
	"testing"
)

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	httpClient = nil

	client := GetClient()

	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestSetBaseURL validates base URL override
func TestSetBaseURL(t *testing.T) {
	httpClient = nil

	SetBaseURL("http://127.0.0.1:9999")

	client := GetClient()
	if client.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("Expected base URL override, got %s", client.BaseURL)
	}
}

// TestReset validates that Reset discards the client
func TestReset(t *testing.T) {
	first := GetClient()
	Reset()
	second := GetClient()

	if first == second {
		t.Error("Reset should force a fresh client instance")
	}
}

// TestClientContentType validates default JSON content type header
func TestClientContentType(t *testing.T) {
	httpClient = nil

	client := GetClient()
	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected application/json content type, got %q", got)
	}
}
