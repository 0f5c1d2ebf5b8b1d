package dto

// RateRequest carries the submitted rating. The value is accepted as a float
// and floored before range-checking, matching the integer-only 1-5 contract.
type RateRequest struct {
	Value float64 `json:"value"`
}

type RatingSummary struct {
	RecipeID  string  `json:"recipeId"`
	AvgRating float64 `json:"avgRating"`
	Count     int     `json:"count"`
	MyRating  *int    `json:"myRating,omitempty"`
}
