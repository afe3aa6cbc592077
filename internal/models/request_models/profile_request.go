package request_models

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
	// "2006-01-02"
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	// "15:04"
	BirthTime          string `json:"birth_time" binding:"omitempty,datetime=15:04"`
	BirthPlace         string `json:"birth_place" binding:"max=100"`
	CurrentLocation    string `json:"current_location" binding:"max=100"`
	RelationshipStatus string `json:"relationship_status" binding:"omitempty,oneof=single in_relationship married divorced widowed"`
}

type AnswerQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid4"`
	Answer     string `json:"answer" binding:"required,max=500"`
}
