package domain

// RankedCandidate is one scored entry of a recommendation page.
// Scores are rounded to 3 decimals before ordering, so equal displayed
// scores always mean the product_id tie-break applied.
type RankedCandidate struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ContentScore    float64 `json:"content_score"`
	PopularityScore float64 `json:"popularity_score"`
	Score           float64 `json:"score"`
	Reason          string  `json:"reason"`
}

type RecommendationPage struct {
	ProductID      string            `json:"product_id"`
	ProductName    string            `json:"product_name"`
	Alpha          float64           `json:"alpha"`
	PageSize       int               `json:"page_size"`
	Offset         int               `json:"offset"`
	TotalAvailable int               `json:"total_available"`
	Items          []RankedCandidate `json:"items"`
	NextCursor     string            `json:"next_cursor,omitempty"`
}

type PopularPage struct {
	PageSize       int               `json:"page_size"`
	Offset         int               `json:"offset"`
	TotalAvailable int               `json:"total_available"`
	Items          []RankedCandidate `json:"items"`
	NextCursor     string            `json:"next_cursor,omitempty"`
}

type SearchRecommendation struct {
	MatchedProduct  Product            `json:"matched_product"`
	Recommendations RecommendationPage `json:"recommendations"`
}
