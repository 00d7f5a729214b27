// Package session holds the per-login-session interaction flags: which
// posts the current user has liked or viewed. It is the CLI analog of
// the browser's session storage: entries survive across commands while
// a user stays logged in and are cleared on logout.
package session

import (
	"fmt"
	"os"
	"strings"
	"sync"

	json "github.com/json-iterator/go"
)

// Kind distinguishes the flag families stored in the cache
type Kind string

const (
	KindLiked  Kind = "liked"
	KindViewed Kind = "viewed"
)

// Key builds the composite cache key for a (kind, post, user) triple
func Key(kind Kind, postID, userID int64) string {
	return fmt.Sprintf("%s_post_%d_user_%d", kind, postID, userID)
}

// Cache is a session-scoped map from composite keys to string-encoded
// booleans. A missing key is a first-class state, distinct from false.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	path    string
}

// New returns an empty in-memory cache with no backing file
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Open loads the cache persisted at path, or returns an empty cache
// bound to that path if the file does not exist yet
func Open(path string) (*Cache, error) {
	c := &Cache{entries: make(map[string]string), path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, err
	}

	return c, nil
}

// Get reports the flag for the triple. ok is false when no entry
// exists; callers must not treat absence as false.
func (c *Cache) Get(kind Kind, postID, userID int64) (value bool, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, ok := c.entries[Key(kind, postID, userID)]
	if !ok {
		return false, false
	}
	return raw == "true", true
}

// Set stores the flag for the triple
func (c *Cache) Set(kind Kind, postID, userID int64, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value {
		c.entries[Key(kind, postID, userID)] = "true"
	} else {
		c.entries[Key(kind, postID, userID)] = "false"
	}
}

// ClearForUser removes every liked/viewed entry belonging to the user.
// Called on logout so no stale flags survive a user switch.
func (c *Cache) ClearForUser(userID int64) {
	suffix := fmt.Sprintf("_user_%d", userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasSuffix(key, suffix) {
			delete(c.entries, key)
		}
	}
}

// ClearAllViewed removes every viewed entry
func (c *Cache) ClearAllViewed() {
	c.clearKind(KindViewed)
}

// ClearAllLiked removes every liked entry
func (c *Cache) ClearAllLiked() {
	c.clearKind(KindLiked)
}

func (c *Cache) clearKind(kind Kind) {
	prefix := string(kind) + "_post_"

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Save persists the cache to its backing file. It is a no-op for a
// purely in-memory cache.
func (c *Cache) Save() error {
	if c.path == "" {
		return nil
	}

	c.mu.RLock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0600)
}
