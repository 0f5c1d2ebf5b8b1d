package models

import "time"

type Ingredient struct {
	Text string `json:"text"`
}

type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	CategoryID  string       `json:"categoryId"`
	Tags        []string     `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	AuthorID    string       `json:"authorId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	IsPublic    bool         `json:"isPublic"`
	Views       int          `json:"views"`
}
