// Package formatter renders blog API resources into table rows
// and detail records for the output package.
package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sathishrouthu/blog-cli/pkg/api"
)

// PostHeaders are the columns used by post listings.
var PostHeaders = []string{"ID", "Title", "Author", "Category", "Likes", "Views"}

// CommentHeaders are the columns used by comment listings.
var CommentHeaders = []string{"ID", "Author", "Comment", "Posted"}

const excerptLen = 60

// PostRows converts posts into table rows matching PostHeaders.
func PostRows(posts []api.Post) [][]string {
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			Excerpt(p.Title, excerptLen),
			p.AuthorUsername,
			p.Category,
			strconv.FormatInt(p.Likes, 10),
			strconv.FormatInt(p.Views, 10),
		})
	}
	return rows
}

// CommentRows converts comments into table rows matching CommentHeaders.
func CommentRows(comments []api.Comment) [][]string {
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Username,
			Excerpt(c.Content, excerptLen),
			c.CreatedAt,
		})
	}
	return rows
}

// PostRecord flattens a post into ordered keys and a value map for
// detail output.
func PostRecord(post *api.Post) ([]string, map[string]interface{}) {
	keys := []string{"ID", "Title", "Author", "Category", "Likes", "Views", "Created", "Updated"}
	record := map[string]interface{}{
		"ID":       post.ID,
		"Title":    post.Title,
		"Author":   post.AuthorUsername,
		"Category": post.Category,
		"Likes":    post.Likes,
		"Views":    post.Views,
		"Created":  post.CreatedAt,
		"Updated":  post.UpdatedAt,
	}
	return keys, record
}

// UserRecord flattens a user profile into ordered keys and a value map.
func UserRecord(user *api.User) ([]string, map[string]interface{}) {
	keys := []string{"ID", "Username", "Name", "Email", "Contact", "Bio"}
	record := map[string]interface{}{
		"ID":       user.ID,
		"Username": user.Username,
		"Name":     user.Name,
		"Email":    user.Email,
		"Contact":  user.Contact,
		"Bio":      user.Bio,
	}
	return keys, record
}

// Excerpt truncates s to at most n runes, appending an ellipsis when
// text was cut. Newlines collapse to spaces so rows stay on one line.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:n]), " ") + "..."
}

// PageSummary describes a paginated listing, e.g. "Page 1 of 4 (37 posts)".
func PageSummary(page *api.PostPage) string {
	noun := "posts"
	if page.TotalElements == 1 {
		noun = "post"
	}
	return fmt.Sprintf("Page %d of %d (%d %s)", page.Number+1, page.TotalPages, page.TotalElements, noun)
}
