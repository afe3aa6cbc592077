package services

import (
	"context"

	"github.com/google/uuid"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/internal/models/response_models"
	"astroportal/internal/repositories"
	"astroportal/pkg/utils"
)

type CreditServiceInterface interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.BalanceResponse, error)
	ListQuestions(ctx context.Context, accountID uuid.UUID) ([]response_models.QuestionResponse, error)
	AnswerQuestion(ctx context.Context, accountID uuid.UUID, request request_models.AnswerQuestionRequest) error
}

type CreditService struct {
	creditRepo repositories.CreditRepository
}

func NewCreditService(creditRepo repositories.CreditRepository) CreditServiceInterface {
	return &CreditService{creditRepo: creditRepo}
}

func (c *CreditService) GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.BalanceResponse, error) {
	credits, err := c.creditRepo.GetBalance(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.BalanceResponse{Credits: credits}, nil
}

func (c *CreditService) ListQuestions(ctx context.Context, accountID uuid.UUID) ([]response_models.QuestionResponse, error) {
	questions, err := c.creditRepo.ListActiveQuestions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	answers, err := c.creditRepo.ListAnswers(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	answered := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}

	result := make([]response_models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, response_models.QuestionResponse{
			ID:            q.ID.String(),
			Question:      q.Question,
			RewardCredits: q.RewardCredits,
			Answered:      answered[q.ID],
		})
	}
	return result, nil
}

// AnswerQuestion credits the reward exactly once per question; the
// answer insert and the balance grant share a transaction.
func (c *CreditService) AnswerQuestion(ctx context.Context, accountID uuid.UUID, request request_models.AnswerQuestionRequest) error {
	questionID, err := uuid.Parse(request.QuestionID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	question, err := c.creditRepo.FindQuestionById(ctx, questionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if question == nil || !question.IsActive {
		return utils.ErrQuestionNotFound
	}

	answer := &db_models.CreditAnswer{
		AccountID:  accountID,
		QuestionID: questionID,
		Answer:     request.Answer,
	}
	if err := c.creditRepo.InsertAnswerWithReward(ctx, answer, question.RewardCredits); err != nil {
		if err == utils.ErrAlreadyAnswered {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}
