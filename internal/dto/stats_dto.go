package dto

type CategoryCountStat struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	RecipeCount  int    `json:"recipeCount"`
}

type CategoryRatingStat struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	AvgRating    float64 `json:"avgRating"`
	RatingsCount int     `json:"ratingsCount"`
}
