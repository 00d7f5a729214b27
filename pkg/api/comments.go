package api

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
)

// GetCommentsByPost retrieves all comments on a post
func GetCommentsByPost(postID int64) ([]Comment, error) {
	logger.Debug("Fetching comments", "post_id", postID)

	var comments []Comment

	resp, err := client.GetClient().
		R().
		SetResult(&comments).
		Get(fmt.Sprintf("/api/comments/post/%d", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch comments: %s", resp.Status())
	}

	return comments, nil
}

// CreateComment adds a comment to a post
func CreateComment(req CommentRequest) (*Comment, error) {
	logger.Debug("Creating comment", "post_id", req.PostID, "user_id", req.UserID)

	var comment Comment

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&comment).
		Post("/api/comments")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to create comment: %s", resp.Status())
	}

	return &comment, nil
}

// UpdateComment updates an existing comment
func UpdateComment(commentID int64, req CommentRequest) (*Comment, error) {
	logger.Debug("Updating comment", "comment_id", commentID)

	var comment Comment

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&comment).
		Put(fmt.Sprintf("/api/comments/%d", commentID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to update comment: %s", resp.Status())
	}

	return &comment, nil
}

// DeleteComment deletes a comment by ID
func DeleteComment(commentID int64) error {
	logger.Debug("Deleting comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/comments/%d", commentID))

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to delete comment: %s", resp.Status())
	}

	return nil
}
