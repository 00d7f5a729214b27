package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/config"
)

// newTestServer points the API client at a local test server
func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers encode JSON bodies; set the header so the client decodes them
		w.Header().Set("Content-Type", "application/json")
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	client.Reset()
	client.SetBaseURL(srv.URL)
	t.Cleanup(client.Reset)

	return srv
}

func decodeInteraction(t *testing.T, r *http.Request) InteractionRequest {
	t.Helper()

	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Fatalf("Failed to decode interaction request: %v", err)
	}
	return req
}

func TestCheckLikeStatus(t *testing.T) {
	var gotPath, gotMethod string
	var gotReq InteractionRequest

	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotReq = decodeInteraction(t, r)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("true"))
	}))

	liked, err := CheckLikeStatus(7, 42)
	if err != nil {
		t.Fatalf("CheckLikeStatus failed: %v", err)
	}

	if !liked {
		t.Error("Expected liked=true")
	}
	if gotPath != "/api/posts/check-like" {
		t.Errorf("Expected path /api/posts/check-like, got %s", gotPath)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotReq.UserID != 7 || gotReq.PostID != 42 {
		t.Errorf("Expected body {7, 42}, got %+v", gotReq)
	}
}

func TestCheckLikeStatus_False(t *testing.T) {
	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("false"))
	}))

	liked, err := CheckLikeStatus(7, 42)
	if err != nil {
		t.Fatalf("CheckLikeStatus failed: %v", err)
	}

	if liked {
		t.Error("Expected liked=false")
	}
}

func TestCheckLikeStatus_MalformedBody(t *testing.T) {
	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"unexpected": "shape"}`))
	}))

	_, err := CheckLikeStatus(7, 42)
	if err == nil {
		t.Fatal("Expected decode error for non-boolean body")
	}
	if !IsDecodeError(err) {
		t.Errorf("Expected DecodeError, got %T: %v", err, err)
	}
}

func TestCheckLikeStatus_ServerError(t *testing.T) {
	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := CheckLikeStatus(7, 42)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !IsServerError(err) {
		t.Errorf("Expected server error, got %v", err)
	}
}

func TestLikePost(t *testing.T) {
	var gotPath, gotMethod string
	var gotReq InteractionRequest

	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotReq = decodeInteraction(t, r)
		w.WriteHeader(http.StatusOK)
	}))

	if err := LikePost(7, 42); err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}

	if gotPath != "/api/posts/like" || gotMethod != http.MethodPost {
		t.Errorf("Expected POST /api/posts/like, got %s %s", gotMethod, gotPath)
	}
	if gotReq.UserID != 7 || gotReq.PostID != 42 {
		t.Errorf("Expected body {7, 42}, got %+v", gotReq)
	}
}

func TestUnlikePost_DeleteWithBody(t *testing.T) {
	var gotMethod string
	var gotReq InteractionRequest

	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotReq = decodeInteraction(t, r)
		w.WriteHeader(http.StatusOK)
	}))

	if err := UnlikePost(7, 42); err != nil {
		t.Fatalf("UnlikePost failed: %v", err)
	}

	// The unlike endpoint is a DELETE that still carries a JSON body
	if gotMethod != http.MethodDelete {
		t.Errorf("Expected DELETE, got %s", gotMethod)
	}
	if gotReq.UserID != 7 || gotReq.PostID != 42 {
		t.Errorf("Expected body {7, 42}, got %+v", gotReq)
	}
}

func TestRecordView(t *testing.T) {
	var gotPath string
	var gotReq InteractionRequest

	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReq = decodeInteraction(t, r)
		w.WriteHeader(http.StatusOK)
	}))

	if err := RecordView(7, 42); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}

	if gotPath != "/api/posts/view" {
		t.Errorf("Expected path /api/posts/view, got %s", gotPath)
	}
	if gotReq.UserID != 7 || gotReq.PostID != 42 {
		t.Errorf("Expected body {7, 42}, got %+v", gotReq)
	}
}

func TestRecordView_Failure(t *testing.T) {
	newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	if err := RecordView(7, 42); err == nil {
		t.Fatal("Expected error for failed view recording")
	}
}
