// Package tracking owns the per-post interaction state of a viewing
// session: the like toggle and the once-per-session view recording.
// Collaborators (server API, session cache, UI control, notifier) are
// injected so the state machines can run against any surface.
package tracking

import (
	"sync/atomic"

	"github.com/sathishrouthu/blog-cli/pkg/logger"
	"github.com/sathishrouthu/blog-cli/pkg/session"
)

// LikeAPI is the server surface consumed by LikeController
type LikeAPI interface {
	CheckLikeStatus(userID, postID int64) (bool, error)
	LikePost(userID, postID int64) error
	UnlikePost(userID, postID int64) error
}

// Control is the toggle control the controller renders into
type Control interface {
	SetLiked(liked bool)
	SetCount(count int64)
	SetEnabled(enabled bool)
}

// Notifier surfaces interaction outcomes to the user
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Failure(msg string)
}

// LikeController reconciles the user's like state for one post across
// the server, the session cache and the rendered control. At most one
// toggle mutation is ever in flight per controller.
type LikeController struct {
	api     LikeAPI
	cache   *session.Cache
	control Control
	notify  Notifier
	postID  int64
	userID  int64
	count   int64
	busy    atomic.Bool
}

// NewLikeController binds a controller to one (post, user) pair
func NewLikeController(api LikeAPI, cache *session.Cache, control Control, notify Notifier, postID, userID int64) *LikeController {
	return &LikeController{
		api:     api,
		cache:   cache,
		control: control,
		notify:  notify,
		postID:  postID,
		userID:  userID,
	}
}

// Init renders the initial count and resolves the like state
func (c *LikeController) Init(initialCount int64) {
	c.count = initialCount
	c.control.SetCount(initialCount)
	c.CheckLikeStatus()
}

// CheckLikeStatus resolves whether the user likes the post, trusting
// the session cache and asking the server only on a miss. A failed
// check is logged and leaves the control in its default not-liked
// state; the next session will retry via the cache miss.
func (c *LikeController) CheckLikeStatus() {
	liked, ok := c.cache.Get(session.KindLiked, c.postID, c.userID)
	if !ok {
		var err error
		liked, err = c.api.CheckLikeStatus(c.userID, c.postID)
		if err != nil {
			logger.Error("Failed to check like status", "post_id", c.postID, "user_id", c.userID, "err", err)
			return
		}
		c.cache.Set(session.KindLiked, c.postID, c.userID, liked)
	}

	c.control.SetLiked(liked)
}

// Toggle flips the like state with the server. The control is disabled
// for the duration of the call and a toggle already in flight makes
// this invocation a no-op, so rapid clicks issue exactly one mutation.
func (c *LikeController) Toggle() error {
	if !c.busy.CompareAndSwap(false, true) {
		return nil
	}
	c.control.SetEnabled(false)
	defer func() {
		c.control.SetEnabled(true)
		c.busy.Store(false)
	}()

	// Absent entry reads as not liked
	liked, _ := c.cache.Get(session.KindLiked, c.postID, c.userID)

	if liked {
		if err := c.api.UnlikePost(c.userID, c.postID); err != nil {
			logger.Error("Failed to unlike post", "post_id", c.postID, "err", err)
			c.notify.Failure("Failed to update like. Please try again.")
			return err
		}

		if c.count > 0 {
			c.count--
		}
		c.cache.Set(session.KindLiked, c.postID, c.userID, false)
		c.control.SetCount(c.count)
		c.control.SetLiked(false)
		c.notify.Info("Post unliked!")
		return nil
	}

	if err := c.api.LikePost(c.userID, c.postID); err != nil {
		logger.Error("Failed to like post", "post_id", c.postID, "err", err)
		c.notify.Failure("Failed to update like. Please try again.")
		return err
	}

	c.count++
	c.cache.Set(session.KindLiked, c.postID, c.userID, true)
	c.control.SetCount(c.count)
	c.control.SetLiked(true)
	c.notify.Success("Post liked!")
	return nil
}

// Liked reports the cached like state; absent reads as not liked
func (c *LikeController) Liked() bool {
	liked, _ := c.cache.Get(session.KindLiked, c.postID, c.userID)
	return liked
}

// Count returns the optimistically maintained like count
func (c *LikeController) Count() int64 {
	return c.count
}
