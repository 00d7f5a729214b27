package api

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
)

// Register registers a new user account
func Register(req RegisterRequest) (*User, error) {
	logger.Debug("Registering user", "username", req.Username)

	var user User

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&user).
		Post("/api/users/register")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &user, nil
}

// Login authenticates a user and returns their profile
func Login(req LoginRequest) (*User, error) {
	logger.Debug("Logging in", "username", req.Username)

	var user User

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&user).
		Post("/api/users/login")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	if user.ID == 0 {
		return nil, &DecodeError{Resource: "user", Field: "id"}
	}

	return &user, nil
}

// GetUser retrieves a user by ID
func GetUser(userID int64) (*User, error) {
	logger.Debug("Fetching user", "user_id", userID)

	var user User

	resp, err := client.GetClient().
		R().
		SetResult(&user).
		Get(fmt.Sprintf("/api/users/%d", userID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	if user.ID == 0 {
		return nil, &DecodeError{Resource: "user", Field: "id"}
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username
func GetUserByUsername(username string) (*User, error) {
	logger.Debug("Fetching user", "username", username)

	var user User

	resp, err := client.GetClient().
		R().
		SetResult(&user).
		Get(fmt.Sprintf("/api/users/username/%s", username))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &user, nil
}

// UpdateUser updates a user profile
func UpdateUser(userID int64, req UpdateUserRequest) (*User, error) {
	logger.Debug("Updating user", "user_id", userID)

	var user User

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&user).
		Put(fmt.Sprintf("/api/users/%d", userID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to update user: %s", resp.Status())
	}

	return &user, nil
}

// GetUserPosts retrieves all posts authored by the user
func GetUserPosts(userID int64) ([]Post, error) {
	logger.Debug("Fetching user posts", "user_id", userID)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get(fmt.Sprintf("/api/users/%d/posts", userID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch user posts: %s", resp.Status())
	}

	return posts, nil
}

// GetRecentPosts retrieves the user's most recent posts
func GetRecentPosts(userID int64) ([]Post, error) {
	logger.Debug("Fetching recent posts", "user_id", userID)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get(fmt.Sprintf("/api/users/%d/recent-posts", userID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch recent posts: %s", resp.Status())
	}

	return posts, nil
}

// GetLikedPosts retrieves posts the user has liked
func GetLikedPosts(userID int64) ([]Post, error) {
	logger.Debug("Fetching liked posts", "user_id", userID)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get(fmt.Sprintf("/api/users/%d/liked-posts", userID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch liked posts: %s", resp.Status())
	}

	return posts, nil
}

// DeleteUser deletes a user account
func DeleteUser(userID int64) error {
	logger.Debug("Deleting user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/users/%d", userID))

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to delete user: %s", resp.Status())
	}

	return nil
}
