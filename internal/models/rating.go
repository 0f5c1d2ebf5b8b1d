package models

import "time"

// Rating holds one row per (RecipeID, UserID) pair; rating again updates the
// existing row in place.
type Rating struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipeId"`
	UserID    string    `json:"userId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}
