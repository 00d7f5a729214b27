package service

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sathishrouthu/blog-cli/pkg/credentials"
	"github.com/sathishrouthu/blog-cli/pkg/prompter"
	"github.com/sathishrouthu/blog-cli/pkg/session"
)

func scriptedProfileService(input string) *ProfileService {
	p := prompter.NewWithStreams(strings.NewReader(input), io.Discard)
	return NewProfileServiceWithPrompter(p)
}

// TestProfileService_View fetches a profile by username
func TestProfileService_View(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/username/sathish", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "username": "sathish", "name": "Sathish R"}`))
	})
	newTestServer(t, mux)

	service := scriptedProfileService("")
	if err := service.View("sathish"); err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

// TestProfileService_Update refreshes stored credentials
func TestProfileService_Update(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/7", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.Write([]byte(`{"id": 7, "username": "sathish", "name": "New Name", "email": "new@example.com"}`))
			return
		}
		w.Write([]byte(`{"id": 7, "username": "sathish", "name": "Old Name", "email": "old@example.com"}`))
	})
	newTestServer(t, mux)
	loginAs(t, 7, "sathish")

	service := scriptedProfileService("New Name\nnew@example.com\n\n\n")
	if err := service.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	creds, err := credentials.Load()
	if err != nil {
		t.Fatalf("failed to load credentials: %v", err)
	}
	if creds.Name != "New Name" || creds.Email != "new@example.com" {
		t.Errorf("credentials not refreshed: %+v", creds)
	}
}

// TestProfileService_MyPosts lists the logged-in user's posts
func TestProfileService_MyPosts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/7/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "title": "Mine"}]`))
	})
	newTestServer(t, mux)
	loginAs(t, 7, "sathish")

	service := scriptedProfileService("")
	if err := service.MyPosts(); err != nil {
		t.Fatalf("MyPosts failed: %v", err)
	}
}

// TestProfileService_LikedPosts requires login
func TestProfileService_LikedPosts_NotLoggedIn(t *testing.T) {
	newTestServer(t, http.NotFoundHandler())

	service := scriptedProfileService("")
	if err := service.LikedPosts(); err == nil {
		t.Error("expected error when not logged in")
	}
}

// TestProfileService_DeleteAccount clears credentials and session state
func TestProfileService_DeleteAccount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/7", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
	})
	newTestServer(t, mux)
	loginAs(t, 7, "sathish")

	cache := openSession()
	cache.Set(session.KindViewed, 42, 7, true)
	if err := cache.Save(); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	service := scriptedProfileService("y\n")
	if err := service.DeleteAccount(); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	creds, _ := credentials.Load()
	if creds != nil {
		t.Error("credentials should be deleted with the account")
	}

	reopened := openSession()
	if _, ok := reopened.Get(session.KindViewed, 42, 7); ok {
		t.Error("session entries should be cleared with the account")
	}
}
