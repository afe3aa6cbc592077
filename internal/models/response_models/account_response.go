package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	BirthDate          string `json:"birth_date"`
	BirthTime          string `json:"birth_time"`
	BirthPlace         string `json:"birth_place"`
	CurrentLocation    string `json:"current_location"`
	RelationshipStatus string `json:"relationship_status"`
	ZodiacSign         string `json:"zodiac_sign"`
	CompletionPercent  int    `json:"completion_percent"`
}

type BalanceResponse struct {
	Credits int64 `json:"credits"`
}

type QuestionResponse struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	RewardCredits int64  `json:"reward_credits"`
	Answered      bool   `json:"answered"`
}
