package service

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/credentials"
	"github.com/sathishrouthu/blog-cli/pkg/formatter"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/prompter"
)

// ProfileService handles user profiles and per-user post listings.
type ProfileService struct {
	prompt *prompter.Prompter
}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{prompt: prompter.New()}
}

// NewProfileServiceWithPrompter creates a profile service reading from
// the given prompter.
func NewProfileServiceWithPrompter(p *prompter.Prompter) *ProfileService {
	return &ProfileService{prompt: p}
}

// View shows another user's profile by username.
func (s *ProfileService) View(username string) error {
	client.Init()

	user, err := api.GetUserByUsername(username)
	if err != nil {
		output.PrintError("Failed to fetch user: %v", err)
		return err
	}

	keys, record := formatter.UserRecord(user)
	return output.PrintRecord("Profile", keys, record)
}

// Update edits the logged-in user's profile. Empty answers keep the
// current value.
func (s *ProfileService) Update() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	user, err := api.GetUser(creds.UserID)
	if err != nil {
		output.PrintError("Failed to fetch profile: %v", err)
		return err
	}

	name, err := s.prompt.String(fmt.Sprintf("Name [%s]: ", user.Name))
	if err != nil {
		return err
	}

	email, err := s.prompt.String(fmt.Sprintf("Email [%s]: ", user.Email))
	if err != nil {
		return err
	}

	contact, err := s.prompt.String(fmt.Sprintf("Contact [%s]: ", user.Contact))
	if err != nil {
		return err
	}

	bio, err := s.prompt.String(fmt.Sprintf("Bio [%s]: ", user.Bio))
	if err != nil {
		return err
	}

	updated, err := api.UpdateUser(creds.UserID, api.UpdateUserRequest{
		Name:    name,
		Email:   email,
		Contact: contact,
		Bio:     bio,
	})
	if err != nil {
		output.PrintError("Failed to update profile: %v", err)
		return err
	}

	creds.Name = updated.Name
	creds.Email = updated.Email
	if err := credentials.Save(creds); err != nil {
		output.PrintWarning("Profile updated but credentials file is stale: %v", err)
	}

	output.PrintSuccess("Profile updated")
	return nil
}

// MyPosts lists the logged-in user's posts.
func (s *ProfileService) MyPosts() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	posts, err := api.GetUserPosts(creds.UserID)
	if err != nil {
		output.PrintError("Failed to fetch posts: %v", err)
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("You have no posts yet")
		return nil
	}

	return output.PrintList("Your posts", posts, formatter.PostHeaders, formatter.PostRows(posts))
}

// RecentPosts lists the posts the logged-in user read recently.
func (s *ProfileService) RecentPosts() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	posts, err := api.GetRecentPosts(creds.UserID)
	if err != nil {
		output.PrintError("Failed to fetch recent posts: %v", err)
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("No recently read posts")
		return nil
	}

	return output.PrintList("Recently read", posts, formatter.PostHeaders, formatter.PostRows(posts))
}

// LikedPosts lists the posts the logged-in user has liked.
func (s *ProfileService) LikedPosts() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	posts, err := api.GetLikedPosts(creds.UserID)
	if err != nil {
		output.PrintError("Failed to fetch liked posts: %v", err)
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("No liked posts")
		return nil
	}

	return output.PrintList("Liked posts", posts, formatter.PostHeaders, formatter.PostRows(posts))
}

// DeleteAccount removes the logged-in user's account after
// confirmation and clears local state.
func (s *ProfileService) DeleteAccount() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	confirm, err := s.prompt.Confirm(fmt.Sprintf("Permanently delete account %s?", creds.Username))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteUser(creds.UserID); err != nil {
		output.PrintError("Failed to delete account: %v", err)
		return err
	}

	cache := openSession()
	cache.ClearForUser(creds.UserID)
	cache.Save()
	credentials.Delete()

	output.PrintSuccess("Account deleted")
	return nil
}
