package models

import (
	"time"
)

// Comment represents a single reader comment
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Comment `json:"replies"`
}

// CommentStats aggregates the comments document
type CommentStats struct {
	TotalComments int        `json:"totalComments"`
	TotalReplies  int        `json:"totalReplies"`
	LastComment   *time.Time `json:"lastComment"`
}

// CommentModeration holds per-article moderation settings
type CommentModeration struct {
	AllowAnonymous  bool `json:"allowAnonymous"`
	RequireApproval bool `json:"requireApproval"`
	MaxLength       int  `json:"maxLength"`
}

// CommentsDocument is persisted as comments.json next to each article
type CommentsDocument struct {
	ArticleID  string            `json:"articleId"`
	Comments   []Comment         `json:"comments"`
	Stats      CommentStats      `json:"stats"`
	Moderation CommentModeration `json:"moderation"`
}

// MaxCommentLength is the default moderation limit for comment bodies
const MaxCommentLength = 1000

// NewCommentsDocument returns the empty scaffold written at publish time
func NewCommentsDocument(slug string) *CommentsDocument {
	return &CommentsDocument{
		ArticleID: slug,
		Comments:  []Comment{},
		Moderation: CommentModeration{
			AllowAnonymous:  true,
			RequireApproval: false,
			MaxLength:       MaxCommentLength,
		},
	}
}
