package service

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/formatter"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/prompter"
)

// CommentService handles comment listing and management.
type CommentService struct {
	prompt *prompter.Prompter
}

// NewCommentService creates a new comment service
func NewCommentService() *CommentService {
	return &CommentService{prompt: prompter.New()}
}

// NewCommentServiceWithPrompter creates a comment service reading from
// the given prompter.
func NewCommentServiceWithPrompter(p *prompter.Prompter) *CommentService {
	return &CommentService{prompt: p}
}

// List shows the comments on a post.
func (s *CommentService) List(postID int64) error {
	client.Init()

	comments, err := api.GetCommentsByPost(postID)
	if err != nil {
		output.PrintError("Failed to fetch comments: %v", err)
		return err
	}

	if len(comments) == 0 {
		output.PrintInfo("No comments yet")
		return nil
	}

	return output.PrintList("Comments", comments, formatter.CommentHeaders, formatter.CommentRows(comments))
}

// Add writes a new comment on a post.
func (s *CommentService) Add(postID int64) error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	content, err := s.prompt.Multiline("Comment")
	if err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	comment, err := api.CreateComment(api.CommentRequest{
		PostID:  postID,
		UserID:  creds.UserID,
		Content: content,
	})
	if err != nil {
		output.PrintError("Failed to add comment: %v", err)
		return err
	}

	output.PrintSuccess("Comment %d added", comment.ID)
	return nil
}

// Update edits an existing comment.
func (s *CommentService) Update(commentID, postID int64) error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	content, err := s.prompt.Multiline("New comment text")
	if err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	if _, err := api.UpdateComment(commentID, api.CommentRequest{
		PostID:  postID,
		UserID:  creds.UserID,
		Content: content,
	}); err != nil {
		output.PrintError("Failed to update comment: %v", err)
		return err
	}

	output.PrintSuccess("Comment %d updated", commentID)
	return nil
}

// Delete removes a comment after confirmation.
func (s *CommentService) Delete(commentID int64) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	confirm, err := s.prompt.Confirm(fmt.Sprintf("Delete comment %d?", commentID))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteComment(commentID); err != nil {
		output.PrintError("Failed to delete comment: %v", err)
		return err
	}

	output.PrintSuccess("Comment %d deleted", commentID)
	return nil
}
