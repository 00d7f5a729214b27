package api

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
)

// GetPosts retrieves one page of posts
func GetPosts(page, size int) (*PostPage, error) {
	logger.Debug("Fetching posts", "page", page, "size", size)

	var response PostPage

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page": fmt.Sprintf("%d", page),
			"size": fmt.Sprintf("%d", size),
		}).
		SetResult(&response).
		Get("/api/posts")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch posts: %s", resp.Status())
	}

	return &response, nil
}

// GetPost retrieves a post by ID
func GetPost(postID int64) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var post Post

	resp, err := client.GetClient().
		R().
		SetResult(&post).
		Get(fmt.Sprintf("/api/posts/%d", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	if post.ID == 0 {
		return nil, &DecodeError{Resource: "post", Field: "id"}
	}

	return &post, nil
}

// CreatePost creates a new post
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "title", req.Title, "category", req.Category)

	var post Post

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&post).
		Post("/api/posts")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to create post: %s", resp.Status())
	}

	return &post, nil
}

// UpdatePost updates an existing post
func UpdatePost(postID int64, req CreatePostRequest) (*Post, error) {
	logger.Debug("Updating post", "post_id", postID)

	var post Post

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&post).
		Put(fmt.Sprintf("/api/posts/%d", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to update post: %s", resp.Status())
	}

	return &post, nil
}

// DeletePost deletes a post by ID
func DeletePost(postID int64) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/posts/%d", postID))

	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to delete post: %s", resp.Status())
	}

	return nil
}

// GetPostsByCategory retrieves all posts in a category
func GetPostsByCategory(category string) ([]Post, error) {
	logger.Debug("Fetching posts by category", "category", category)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetResult(&posts).
		Get(fmt.Sprintf("/api/posts/category/%s", category))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch posts by category: %s", resp.Status())
	}

	return posts, nil
}

// SearchPosts searches posts by keyword
func SearchPosts(keyword string) ([]Post, error) {
	logger.Debug("Searching posts", "keyword", keyword)

	var posts []Post

	resp, err := client.GetClient().
		R().
		SetQueryParam("keyword", keyword).
		SetResult(&posts).
		Get("/api/posts/search")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("search failed: %s", resp.Status())
	}

	return posts, nil
}
