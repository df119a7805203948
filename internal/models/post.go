package models

import "time"

// Post represents an authored post. Image is nullable.
type Post struct {
	PostID      uint      `gorm:"primaryKey" json:"postID"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Image       *string   `gorm:"size:2048" json:"Image"`
	DateCreated time.Time `gorm:"autoCreateTime;not null;index" json:"dateCreated"`
	UserID      uint      `gorm:"not null;index" json:"userID"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by Post.
func (Post) TableName() string { return "post" }

// PostListItem is a post joined with its author's name.
type PostListItem struct {
	PostID          uint      `json:"postID"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Image           *string   `json:"Image"`
	DateCreated     time.Time `json:"dateCreated"`
	UserID          uint      `json:"userID"`
	AuthorFirstName string    `json:"authorFirstName"`
	AuthorLastName  string    `json:"authorLastName"`
}

// PostDetail is a single post with its author, comments and reactions.
type PostDetail struct {
	PostID          uint           `json:"postID"`
	Title           string         `json:"title"`
	Content         string         `json:"content"`
	Image           *string        `json:"Image"`
	DateCreated     time.Time      `json:"dateCreated"`
	AuthorID        uint           `json:"authorID"`
	AuthorFirstName string         `json:"authorFirstName"`
	AuthorLastName  string         `json:"authorLastName"`
	AuthorEmail     string         `json:"authorEmail"`
	Comments        []CommentView  `gorm:"-" json:"comments"`
	Reactions       []ReactionView `gorm:"-" json:"reactions"`
}

// CreatedPost echoes the accepted fields of a new post.
type CreatedPost struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Image   *string `json:"Image"`
	UserID  uint    `json:"userID"`
}

// CreatePostResponse is the 201 body of POST /api/posts.
type CreatePostResponse struct {
	Message string      `json:"message"`
	PostID  uint        `json:"postID"`
	Post    CreatedPost `json:"post"`
}

// PostUpdate carries the fields of a partial update. Unset fields are left alone.
type PostUpdate struct {
	Title   OptionalString
	Content OptionalString
	Image   OptionalString
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
