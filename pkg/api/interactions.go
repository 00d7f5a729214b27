package api

import (
	"fmt"

	json "github.com/json-iterator/go"

	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
)

// CheckLikeStatus returns whether userID currently likes postID
func CheckLikeStatus(userID, postID int64) (bool, error) {
	logger.Debug("Checking like status", "user_id", userID, "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetBody(InteractionRequest{UserID: userID, PostID: postID}).
		Post("/api/posts/check-like")

	if err != nil {
		return false, err
	}

	if !resp.IsSuccess() {
		return false, ParseError(resp)
	}

	// The endpoint returns a bare JSON boolean
	var liked bool
	if err := json.Unmarshal(resp.Body(), &liked); err != nil {
		return false, &DecodeError{Resource: "like-status", Field: "boolean body"}
	}

	return liked, nil
}

// LikePost records a like for the post on behalf of the user
func LikePost(userID, postID int64) error {
	logger.Debug("Liking post", "user_id", userID, "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetBody(InteractionRequest{UserID: userID, PostID: postID}).
		Post("/api/posts/like")

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to like post: %s", resp.Status())
	}

	return nil
}

// UnlikePost removes the user's like from the post
func UnlikePost(userID, postID int64) error {
	logger.Debug("Unliking post", "user_id", userID, "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetBody(InteractionRequest{UserID: userID, PostID: postID}).
		Delete("/api/posts/unlike")

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to unlike post: %s", resp.Status())
	}

	return nil
}

// RecordView increments the post's view counter for the user
func RecordView(userID, postID int64) error {
	logger.Debug("Recording view", "user_id", userID, "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetBody(InteractionRequest{UserID: userID, PostID: postID}).
		Post("/api/posts/view")

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to record view: %s", resp.Status())
	}

	return nil
}
