package models

// Reaction target types.
const (
	EntityPost    = "post"
	EntityComment = "comment"
)

// Reaction is a labelled reaction on a post or a comment.
type Reaction struct {
	ReactID    uint   `gorm:"primaryKey" json:"reactID"`
	React      string `gorm:"size:50;not null" json:"react"`
	UserID     uint   `gorm:"not null;index" json:"userID"`
	EntityID   uint   `gorm:"not null;index:idx_react_entity" json:"entityID"`
	EntityType string `gorm:"size:20;not null;index:idx_react_entity" json:"entityType"`
	User       *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by Reaction.
func (Reaction) TableName() string { return "react" }

// ReactionView is a reaction joined with the reactor's identity.
type ReactionView struct {
	ReactID          uint   `json:"reactID"`
	React            string `json:"react"`
	ReactorID        uint   `json:"reactorID"`
	ReactorFirstName string `json:"reactorFirstName"`
	ReactorLastName  string `json:"reactorLastName"`
}

// CreateReactionResponse is the 201 body of POST /api/posts/:id/reactions.
type CreateReactionResponse struct {
	Message  string   `json:"message"`
	ReactID  uint     `json:"reactID"`
	Reaction Reaction `json:"reaction"`
}

// ValidEntityType reports whether t is a reaction target this system stores.
func ValidEntityType(t string) bool {
	return t == EntityPost || t == EntityComment
}
