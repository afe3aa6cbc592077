package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/pkg/utils"
)

func newCreditFixture(t *testing.T) (*fakeCreditRepo, CreditServiceInterface, uuid.UUID, *db_models.CreditQuestion) {
	t.Helper()

	repo := newFakeCreditRepo()
	service := NewCreditService(repo)
	accountID := uuid.New()

	question := &db_models.CreditQuestion{
		Question:      "Jaki jest Twój ulubiony żywioł?",
		RewardCredits: 5,
		IsActive:      true,
	}
	question.ID = uuid.New()
	repo.questions[question.ID] = question
	return repo, service, accountID, question
}

func TestAnswerQuestion_CreditsRewardOnce(t *testing.T) {
	repo, service, accountID, question := newCreditFixture(t)

	request := request_models.AnswerQuestionRequest{
		QuestionID: question.ID.String(),
		Answer:     "ogień",
	}

	require.NoError(t, service.AnswerQuestion(context.Background(), accountID, request))
	assert.Equal(t, int64(5), repo.balances[accountID])

	err := service.AnswerQuestion(context.Background(), accountID, request)
	assert.ErrorIs(t, err, utils.ErrAlreadyAnswered)
	assert.Equal(t, int64(5), repo.balances[accountID], "a repeat answer must not grant again")
	assert.Len(t, repo.answers[accountID], 1)
}

func TestAnswerQuestion_InactiveQuestion(t *testing.T) {
	repo, service, accountID, question := newCreditFixture(t)
	repo.questions[question.ID].IsActive = false

	err := service.AnswerQuestion(context.Background(), accountID, request_models.AnswerQuestionRequest{
		QuestionID: question.ID.String(),
		Answer:     "woda",
	})
	assert.ErrorIs(t, err, utils.ErrQuestionNotFound)
	assert.Zero(t, repo.balances[accountID])
}

func TestAnswerQuestion_UnknownQuestion(t *testing.T) {
	_, service, accountID, _ := newCreditFixture(t)

	err := service.AnswerQuestion(context.Background(), accountID, request_models.AnswerQuestionRequest{
		QuestionID: uuid.New().String(),
		Answer:     "powietrze",
	})
	assert.ErrorIs(t, err, utils.ErrQuestionNotFound)
}

func TestListQuestions_MarksAnswered(t *testing.T) {
	repo, service, accountID, question := newCreditFixture(t)

	second := &db_models.CreditQuestion{Question: "O której godzinie wstajesz?", RewardCredits: 3, IsActive: true}
	second.ID = uuid.New()
	repo.questions[second.ID] = second

	require.NoError(t, service.AnswerQuestion(context.Background(), accountID, request_models.AnswerQuestionRequest{
		QuestionID: question.ID.String(),
		Answer:     "ziemia",
	}))

	questions, err := service.ListQuestions(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	byID := make(map[string]bool, len(questions))
	for _, q := range questions {
		byID[q.ID] = q.Answered
	}
	assert.True(t, byID[question.ID.String()])
	assert.False(t, byID[second.ID.String()])
}

func TestGetBalance(t *testing.T) {
	repo, service, accountID, _ := newCreditFixture(t)
	repo.balances[accountID] = 42

	balance, err := service.GetBalance(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Credits)
}
