package models

import "time"

type CommentStatus string

const (
	CommentActive  CommentStatus = "active"
	CommentRemoved CommentStatus = "removed"
)

// Comment is soft-deleted only: removal flips Status, rows are never dropped
// unless the whole recipe is deleted.
type Comment struct {
	ID        string        `json:"id"`
	RecipeID  string        `json:"recipeId"`
	AuthorID  string        `json:"authorId"`
	Body      string        `json:"body"`
	CreatedAt time.Time     `json:"createdAt"`
	Status    CommentStatus `json:"status"`
}
