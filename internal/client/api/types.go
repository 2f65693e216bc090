package api

// User is the profile snapshot returned by the auth endpoints.
type User struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

const RoleAdmin = "admin"

type Article struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content,omitempty"`
	ContentHTML   string     `json:"content_html,omitempty"`
	Summary       string     `json:"summary"`
	CoverImageURL string     `json:"cover_image_url"`
	Author        User       `json:"author"`
	Editor        *User      `json:"editor,omitempty"`
	Categories    []Category `json:"categories"`
	Tags          []Tag      `json:"tags"`
	ViewCount     int64      `json:"view_count"`
	LikeCount     int64      `json:"like_count"`
	CommentCount  int64      `json:"comment_count"`
	IsFeatured    bool       `json:"is_featured"`
	IsLiked       *bool      `json:"is_liked,omitempty"`
	Status        string     `json:"status"`
	PublishedAt   string     `json:"published_at,omitempty"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

type Category struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	ParentID     *uint64    `json:"parent_id,omitempty"`
	Parent       *Category  `json:"parent,omitempty"`
	IconURL      string     `json:"icon_url,omitempty"`
	SortOrder    *int       `json:"sort_order,omitempty"`
	ArticleCount *int64     `json:"article_count,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	Children     []Category `json:"children,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
	UpdatedAt    string     `json:"updated_at,omitempty"`
}

type Tag struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Color        string `json:"color,omitempty"`
	ArticleCount *int64 `json:"article_count,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type Comment struct {
	ID          uint64    `json:"id"`
	ArticleID   uint64    `json:"article_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	User        User      `json:"user"`
	ParentID    *uint64   `json:"parent_id,omitempty"`
	Parent      *Comment  `json:"parent,omitempty"`
	LikeCount   int64     `json:"like_count"`
	ReplyCount  int64     `json:"reply_count"`
	IsLiked     *bool     `json:"is_liked,omitempty"`
	Replies     []Comment `json:"replies,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user"`
}

type ArticleInput struct {
	Title         string   `json:"title,omitempty"`
	Content       string   `json:"content,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	CategoryIDs   []uint64 `json:"category_ids,omitempty"`
	TagIDs        []uint64 `json:"tag_ids,omitempty"`
	Status        string   `json:"status,omitempty"`
}

type CategoryInput struct {
	Name        string  `json:"name,omitempty"`
	Slug        string  `json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	ParentID    *uint64 `json:"parent_id,omitempty"`
	IconURL     string  `json:"icon_url,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type TagInput struct {
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type CommentInput struct {
	Content  string  `json:"content"`
	ParentID *uint64 `json:"parent_id,omitempty"`
}

type LikeResult struct {
	IsLiked bool `json:"is_liked"`
}

type UploadResult struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
