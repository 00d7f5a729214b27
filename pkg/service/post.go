package service

import (
	"fmt"
	"os"

	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/config"
	"github.com/sathishrouthu/blog-cli/pkg/formatter"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/prompter"
	"github.com/sathishrouthu/blog-cli/pkg/tracking"
)

// PostService handles post listing, creation and management.
type PostService struct {
	prompt *prompter.Prompter
}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{prompt: prompter.New()}
}

// NewPostServiceWithPrompter creates a post service reading from the
// given prompter.
func NewPostServiceWithPrompter(p *prompter.Prompter) *PostService {
	return &PostService{prompt: p}
}

// List shows one page of posts. Pages are one-based on the command
// line; the API counts from zero.
func (s *PostService) List(page int) error {
	client.Init()

	if page < 1 {
		page = 1
	}
	size := config.GetInt("output.page_size")

	result, err := api.GetPosts(page-1, size)
	if err != nil {
		output.PrintError("Failed to fetch posts: %v", err)
		return err
	}

	if len(result.Content) == 0 {
		output.PrintInfo("No posts found")
		return nil
	}

	if err := output.PrintList("Posts", result.Content, formatter.PostHeaders, formatter.PostRows(result.Content)); err != nil {
		return err
	}
	if output.GetOutputFormat() != output.FormatJSON {
		output.PrintInfo("%s", formatter.PageSummary(result))
	}
	return nil
}

// Get shows a single post.
func (s *PostService) Get(postID int64) error {
	client.Init()

	post, err := api.GetPost(postID)
	if err != nil {
		output.PrintError("Failed to fetch post: %v", err)
		return err
	}

	keys, record := formatter.PostRecord(post)
	if err := output.PrintRecord("Post", keys, record); err != nil {
		return err
	}
	if output.GetOutputFormat() != output.FormatJSON {
		fmt.Println()
		fmt.Println(post.Content)
	}
	return nil
}

// Create composes a new post interactively.
func (s *PostService) Create() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	title, err := s.prompt.String("Title: ")
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	category, err := s.prompt.String("Category: ")
	if err != nil {
		return err
	}

	content, err := s.prompt.Multiline("Content")
	if err != nil {
		return err
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	post, err := api.CreatePost(api.CreatePostRequest{
		Title:    title,
		Content:  content,
		Category: category,
		AuthorID: creds.UserID,
	})
	if err != nil {
		output.PrintError("Failed to create post: %v", err)
		return err
	}

	output.PrintSuccess("Post created with ID %d", post.ID)
	return nil
}

// Update edits an existing post interactively. Empty answers keep the
// current value.
func (s *PostService) Update(postID int64) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	post, err := api.GetPost(postID)
	if err != nil {
		output.PrintError("Failed to fetch post: %v", err)
		return err
	}

	title, err := s.prompt.String(fmt.Sprintf("Title [%s]: ", post.Title))
	if err != nil {
		return err
	}
	if title == "" {
		title = post.Title
	}

	category, err := s.prompt.String(fmt.Sprintf("Category [%s]: ", post.Category))
	if err != nil {
		return err
	}
	if category == "" {
		category = post.Category
	}

	content, err := s.prompt.Multiline("Content (empty keeps current)")
	if err != nil {
		return err
	}
	if content == "" {
		content = post.Content
	}

	updated, err := api.UpdatePost(postID, api.CreatePostRequest{
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		output.PrintError("Failed to update post: %v", err)
		return err
	}

	output.PrintSuccess("Post %d updated", updated.ID)
	return nil
}

// Delete removes a post after confirmation.
func (s *PostService) Delete(postID int64) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	confirm, err := s.prompt.Confirm(fmt.Sprintf("Delete post %d?", postID))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeletePost(postID); err != nil {
		output.PrintError("Failed to delete post: %v", err)
		return err
	}

	output.PrintSuccess("Post %d deleted", postID)
	return nil
}

// ToggleLike flips the like state of a post from the command line,
// reusing the same controller the reading session drives.
func (s *PostService) ToggleLike(postID int64) error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	post, err := api.GetPost(postID)
	if err != nil {
		output.PrintError("Failed to fetch post: %v", err)
		return err
	}

	cache := openSession()
	defer cache.Save()

	line := newLikeLine(os.Stdout)
	controller := tracking.NewLikeController(restAPI{}, cache, line, consoleNotifier{}, postID, creds.UserID)
	controller.Init(post.Likes)

	if err := controller.Toggle(); err != nil {
		return err
	}
	line.render()
	return nil
}

// Search finds posts matching a keyword.
func (s *PostService) Search(keyword string) error {
	client.Init()

	posts, err := api.SearchPosts(keyword)
	if err != nil {
		output.PrintError("Search failed: %v", err)
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("No posts match %q", keyword)
		return nil
	}

	return output.PrintList("Search results", posts, formatter.PostHeaders, formatter.PostRows(posts))
}

// ByCategory lists posts in one category.
func (s *PostService) ByCategory(category string) error {
	client.Init()

	posts, err := api.GetPostsByCategory(category)
	if err != nil {
		output.PrintError("Failed to fetch posts: %v", err)
		return err
	}

	if len(posts) == 0 {
		output.PrintInfo("No posts in category %q", category)
		return nil
	}

	return output.PrintList(category, posts, formatter.PostHeaders, formatter.PostRows(posts))
}
