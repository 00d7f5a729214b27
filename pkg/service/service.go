// Package service implements the command-facing workflows: it ties the
// REST API, credentials, session cache and interaction tracking
// together and renders results through the output package.
package service

import (
	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/config"
	"github.com/sathishrouthu/blog-cli/pkg/credentials"
	"github.com/sathishrouthu/blog-cli/pkg/errors"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/session"
)

// restAPI adapts the package-level API functions to the interfaces
// consumed by the tracking package.
type restAPI struct{}

func (restAPI) CheckLikeStatus(userID, postID int64) (bool, error) {
	return api.CheckLikeStatus(userID, postID)
}

func (restAPI) LikePost(userID, postID int64) error {
	return api.LikePost(userID, postID)
}

func (restAPI) UnlikePost(userID, postID int64) error {
	return api.UnlikePost(userID, postID)
}

func (restAPI) RecordView(userID, postID int64) error {
	return api.RecordView(userID, postID)
}

// requireLogin loads credentials and fails with a login hint when the
// user is not authenticated.
func requireLogin() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return nil, err
	}
	if !creds.IsValid() {
		return nil, errors.NotLoggedInError()
	}
	client.Init()
	return creds, nil
}

// currentUserID returns the logged-in user's ID, or 0 when anonymous.
func currentUserID() int64 {
	creds, err := credentials.Load()
	if err != nil || !creds.IsValid() {
		return 0
	}
	return creds.UserID
}

// openSession opens the persisted session cache. A cache that cannot be
// read starts empty so interaction tracking degrades instead of failing.
func openSession() *session.Cache {
	cache, err := session.Open(config.GetSessionPath())
	if err != nil {
		logger.Warn("Session cache unreadable, starting empty", "error", err)
		return session.New()
	}
	return cache
}

// consoleNotifier surfaces interaction outcomes on the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { output.PrintSuccess("%s", msg) }
func (consoleNotifier) Info(msg string)    { output.PrintInfo("%s", msg) }
func (consoleNotifier) Failure(msg string) { output.PrintError("%s", msg) }
