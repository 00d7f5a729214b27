package tracking

import (
	"sync"
	"time"

	"github.com/sathishrouthu/blog-cli/pkg/logger"
	"github.com/sathishrouthu/blog-cli/pkg/session"
)

// ViewAPI is the server surface consumed by ViewRecorder
type ViewAPI interface {
	RecordView(userID, postID int64) error
}

const (
	// DefaultDwell is how long a reader must stay on a post before the
	// time-based trigger records a view
	DefaultDwell = 30 * time.Second

	// VisibilityThreshold is the fraction of the content region that
	// must be visible for the visibility trigger to arm
	VisibilityThreshold = 0.5

	// DefaultVisibilityHold is how long the region must stay above the
	// threshold before the visibility trigger fires
	DefaultVisibilityHold = time.Second
)

// ViewRecorder guarantees at most one view increment per (post, user,
// session). Two independent triggers race toward the same recordOnce:
// a debounced visibility signal and a one-shot dwell timer.
type ViewRecorder struct {
	api    ViewAPI
	cache  *session.Cache
	postID int64
	userID int64

	mu       sync.Mutex
	armed    bool
	observer *RegionObserver
	timer    *time.Timer
}

// NewViewRecorder binds a recorder to one (post, user) pair
func NewViewRecorder(api ViewAPI, cache *session.Cache, postID, userID int64) *ViewRecorder {
	return &ViewRecorder{
		api:    api,
		cache:  cache,
		postID: postID,
		userID: userID,
	}
}

// Setup arms both triggers. It is a no-op for anonymous viewers and
// for posts already viewed this session.
func (r *ViewRecorder) Setup(dwell, hold time.Duration) {
	if r.userID == 0 {
		return
	}
	if viewed, ok := r.cache.Get(session.KindViewed, r.postID, r.userID); ok && viewed {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.armed {
		return
	}
	r.armed = true
	r.observer = NewRegionObserver(VisibilityThreshold, hold, r.visibilityFired)
	r.timer = time.AfterFunc(dwell, r.dwellElapsed)
}

// ReportVisibility feeds the visibility trigger the currently visible
// fraction of the content region
func (r *ViewRecorder) ReportVisibility(fraction float64) {
	r.mu.Lock()
	observer := r.observer
	r.mu.Unlock()

	if observer != nil {
		observer.Report(fraction)
	}
}

func (r *ViewRecorder) visibilityFired() {
	if r.recordOnce() {
		logger.Debug("View recorded via visibility trigger", "post_id", r.postID, "user_id", r.userID)
	}
	r.stopObserver()
}

func (r *ViewRecorder) dwellElapsed() {
	if r.recordOnce() {
		logger.Debug("View recorded via dwell trigger", "post_id", r.postID, "user_id", r.userID)
	}
	// The other trigger has nothing left to do
	r.stopObserver()
}

// recordOnce performs the check-then-mark: the viewed flag is tested
// and set in the same critical section, before the network call is
// issued, so the losing trigger can never pass the check while the
// winning call is still in flight. Returns whether this caller won.
func (r *ViewRecorder) recordOnce() bool {
	r.mu.Lock()
	if viewed, ok := r.cache.Get(session.KindViewed, r.postID, r.userID); ok && viewed {
		r.mu.Unlock()
		return false
	}
	r.cache.Set(session.KindViewed, r.postID, r.userID, true)
	r.mu.Unlock()

	if err := r.api.RecordView(r.userID, r.postID); err != nil {
		// Best effort: the flag stays set, trading an under-count for
		// never double-counting on a transient failure
		logger.Error("Failed to record view", "post_id", r.postID, "user_id", r.userID, "err", err)
	}
	return true
}

func (r *ViewRecorder) stopObserver() {
	r.mu.Lock()
	observer := r.observer
	r.observer = nil
	r.mu.Unlock()

	if observer != nil {
		observer.Stop()
	}
}

// Recorded reports whether a view has been recorded this session
func (r *ViewRecorder) Recorded() bool {
	viewed, ok := r.cache.Get(session.KindViewed, r.postID, r.userID)
	return ok && viewed
}

// Close tears down both triggers when the viewing session ends
func (r *ViewRecorder) Close() {
	r.mu.Lock()
	timer := r.timer
	r.timer = nil
	r.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	r.stopObserver()
}
