package api

// Post represents a blog post
type Post struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Category       string `json:"category"`
	AuthorID       int64  `json:"authorId"`
	AuthorUsername string `json:"authorUsername"`
	Views          int64  `json:"views"`
	Likes          int64  `json:"likes"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// PostPage is one page of posts, as served by the paginated posts endpoint
type PostPage struct {
	Content       []Post `json:"content"`
	Number        int    `json:"number"`
	Size          int    `json:"size"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int64  `json:"totalElements"`
}

// CreatePostRequest is the request to create or update a post
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	AuthorID int64  `json:"authorId,omitempty"`
}

// User represents a platform user
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Bio      string `json:"bio"`
}

// RegisterRequest is the request to register a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

// LoginRequest is the request to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request to update a user profile
type UpdateUserRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// Comment represents a comment on a post
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// CommentRequest is the request to create or update a comment
type CommentRequest struct {
	PostID  int64  `json:"postId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

// InteractionRequest is the request body shared by the like, unlike,
// check-like and view endpoints
type InteractionRequest struct {
	UserID int64 `json:"userId"`
	PostID int64 `json:"postId"`
}

// ErrorResponse is the error payload returned by the API
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
