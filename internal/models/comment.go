package models

import "time"

// Comment is a user's comment on a post.
type Comment struct {
	CommentID   uint      `gorm:"primaryKey" json:"commentID"`
	Comment     string    `gorm:"type:text;not null" json:"comment"`
	DateCreated time.Time `gorm:"autoCreateTime;not null" json:"dateCreated"`
	UserID      uint      `gorm:"not null;index" json:"userID"`
	PostID      uint      `gorm:"not null;index" json:"postID"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Post        *Post     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by Comment.
func (Comment) TableName() string { return "comments" }

// CommentView is a comment joined with the commenter's identity.
type CommentView struct {
	CommentID          uint      `json:"commentID"`
	Comment            string    `json:"comment"`
	DateCreated        time.Time `json:"dateCreated"`
	CommenterID        uint      `json:"commenterID"`
	CommenterFirstName string    `json:"commenterFirstName"`
	CommenterLastName  string    `json:"commenterLastName"`
}

// CreateCommentResponse is the 201 body of POST /api/posts/:id/comments.
type CreateCommentResponse struct {
	Message   string  `json:"message"`
	CommentID uint    `json:"commentID"`
	Comment   Comment `json:"comment"`
}
