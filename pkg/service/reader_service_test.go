package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/sathishrouthu/blog-cli/pkg/config"
	"github.com/sathishrouthu/blog-cli/pkg/session"
)

// readerFixture serves one post and counts interaction calls.
type readerFixture struct {
	mu     sync.Mutex
	views  int
	likes  int
	checks int
}

func (f *readerFixture) counts() (views, likes, checks int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.views, f.likes, f.checks
}

func newReaderFixture(t *testing.T, content string) *readerFixture {
	t.Helper()

	f := &readerFixture{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/posts/42", func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]interface{}{
			"id":             42,
			"title":          "A long read",
			"content":        content,
			"category":       "tech",
			"authorUsername": "sathish",
			"likes":          3,
			"views":          10,
		})
		w.Write(body)
	})
	mux.HandleFunc("/api/posts/view", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.views++
		f.mu.Unlock()
	})
	mux.HandleFunc("/api/posts/check-like", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.checks++
		f.mu.Unlock()
		w.Write([]byte("false"))
	})
	mux.HandleFunc("/api/posts/like", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.likes++
		f.mu.Unlock()
	})
	newTestServer(t, mux)

	// Fire visibility synchronously so reads are deterministic
	if err := config.SetString("tracking.visibility_hold_ms", "0"); err != nil {
		t.Fatalf("failed to set hold: %v", err)
	}
	return f
}

func threePageContent() string {
	return strings.Join([]string{
		"page one line one", "page one line two",
		"page two line one", "page two line two",
		"page three line one", "page three line two",
	}, "\n")
}

// TestReaderService_ViewRecordedOnceWhileReading pages through a post
// and expects exactly one view call once half the content was shown
func TestReaderService_ViewRecordedOnceWhileReading(t *testing.T) {
	f := newReaderFixture(t, threePageContent())
	loginAs(t, 7, "sathish")

	out := &bytes.Buffer{}
	reader := NewReaderServiceWithStreams(strings.NewReader("\n\n\n"), out, 2)
	if err := reader.Read(42); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	views, _, _ := f.counts()
	if views != 1 {
		t.Errorf("expected exactly 1 view call, got %d", views)
	}

	cache := openSession()
	if viewed, ok := cache.Get(session.KindViewed, 42, 7); !ok || !viewed {
		t.Error("viewed flag should be persisted after the session")
	}

	if !strings.Contains(out.String(), "page three line one") {
		t.Error("content was not fully rendered")
	}
}

// TestReaderService_QuitBeforeThresholdRecordsNothing quits on the
// first of three pages, below the visibility threshold
func TestReaderService_QuitBeforeThresholdRecordsNothing(t *testing.T) {
	f := newReaderFixture(t, threePageContent())
	loginAs(t, 7, "sathish")

	reader := NewReaderServiceWithStreams(strings.NewReader("q\n"), &bytes.Buffer{}, 2)
	if err := reader.Read(42); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	views, _, _ := f.counts()
	if views != 0 {
		t.Errorf("expected no view call, got %d", views)
	}

	cache := openSession()
	if _, ok := cache.Get(session.KindViewed, 42, 7); ok {
		t.Error("viewed flag should not be set for an abandoned read")
	}
}

// TestReaderService_AnonymousNeverRecords reads everything while
// logged out
func TestReaderService_AnonymousNeverRecords(t *testing.T) {
	f := newReaderFixture(t, threePageContent())

	out := &bytes.Buffer{}
	reader := NewReaderServiceWithStreams(strings.NewReader("\n\nl\n"), out, 2)
	if err := reader.Read(42); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	views, likes, checks := f.counts()
	if views != 0 || likes != 0 || checks != 0 {
		t.Errorf("anonymous session should not call the API: views=%d likes=%d checks=%d", views, likes, checks)
	}

	if !strings.Contains(out.String(), "Log in to like") {
		t.Error("expected a login hint when liking anonymously")
	}
}

// TestReaderService_AlreadyViewedSkipsRecording re-reads a post whose
// viewed flag is already cached
func TestReaderService_AlreadyViewedSkipsRecording(t *testing.T) {
	f := newReaderFixture(t, threePageContent())
	loginAs(t, 7, "sathish")

	cache := openSession()
	cache.Set(session.KindViewed, 42, 7, true)
	if err := cache.Save(); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	reader := NewReaderServiceWithStreams(strings.NewReader("\n\n\n"), &bytes.Buffer{}, 2)
	if err := reader.Read(42); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	views, _, _ := f.counts()
	if views != 0 {
		t.Errorf("expected no view call on a re-read, got %d", views)
	}
}

// TestReaderService_LikeDuringReading toggles the like mid-session
func TestReaderService_LikeDuringReading(t *testing.T) {
	f := newReaderFixture(t, threePageContent())
	loginAs(t, 7, "sathish")

	out := &bytes.Buffer{}
	reader := NewReaderServiceWithStreams(strings.NewReader("l\nq\n"), out, 2)
	if err := reader.Read(42); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	_, likes, checks := f.counts()
	if likes != 1 {
		t.Errorf("expected 1 like call, got %d", likes)
	}
	if checks != 1 {
		t.Errorf("expected 1 check-like call, got %d", checks)
	}

	cache := openSession()
	if liked, ok := cache.Get(session.KindLiked, 42, 7); !ok || !liked {
		t.Error("liked flag should be persisted after the session")
	}

	// The optimistic count renders the server value plus one
	if !strings.Contains(out.String(), "4 likes") {
		t.Errorf("expected updated like count in output:\n%s", out.String())
	}
}

// TestPaginate splits content into fixed-size pages
func TestPaginate(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		lines   int
		pages   int
	}{
		{"empty content is one page", "", 2, 1},
		{"single short page", "a\nb", 5, 1},
		{"exact multiple", "a\nb\nc\nd", 2, 2},
		{"remainder page", "a\nb\nc", 2, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := paginate(tc.content, tc.lines)
			if len(got) != tc.pages {
				t.Errorf("expected %d pages, got %d", tc.pages, len(got))
			}
		})
	}
}
