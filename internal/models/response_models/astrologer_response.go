package response_models

type AstrologerSummaryResponse struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"display_name"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years"`
	Specialties     []string `json:"specialties"`
	AverageRating   float64  `json:"average_rating"`
	RatingCount     int64    `json:"rating_count"`
}

type AstrologerPriceResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Credits  int64  `json:"credits"`
}

type AvailabilityResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ReviewResponse struct {
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
}

type AstrologerDetailResponse struct {
	AstrologerSummaryResponse
	Prices       []AstrologerPriceResponse `json:"prices"`
	Availability []AvailabilityResponse    `json:"availability"`
	Reviews      []ReviewResponse          `json:"reviews"`
}
