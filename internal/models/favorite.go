package models

import "time"

// Favorite holds at most one row per (RecipeID, UserID) pair; toggling flips
// presence.
type Favorite struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipeId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
