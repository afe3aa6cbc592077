package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
	"astroportal/pkg/utils"
)

type CreditRepository interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error)
	ListActiveQuestions(ctx context.Context) ([]db_models.CreditQuestion, error)
	ListAnswers(ctx context.Context, accountID uuid.UUID) ([]db_models.CreditAnswer, error)
	FindQuestionById(ctx context.Context, id uuid.UUID) (*db_models.CreditQuestion, error)

	// InsertAnswerWithReward stores the answer and grants the reward in
	// one transaction. Returns ErrAlreadyAnswered on a repeat answer.
	InsertAnswerWithReward(ctx context.Context, answer *db_models.CreditAnswer, reward int64) error
}

type creditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (c *creditRepository) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var balance db_models.CreditBalance
	err := c.db.WithContext(ctx).First(&balance, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balance.Credits, nil
}

func (c *creditRepository) ListActiveQuestions(ctx context.Context) ([]db_models.CreditQuestion, error) {
	var questions []db_models.CreditQuestion
	err := c.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (c *creditRepository) ListAnswers(ctx context.Context, accountID uuid.UUID) ([]db_models.CreditAnswer, error) {
	var answers []db_models.CreditAnswer
	err := c.db.WithContext(ctx).
		Preload("Question").
		Where("account_id = ?", accountID).
		Find(&answers).Error
	return answers, err
}

func (c *creditRepository) FindQuestionById(ctx context.Context, id uuid.UUID) (*db_models.CreditQuestion, error) {
	var question db_models.CreditQuestion
	err := c.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (c *creditRepository) InsertAnswerWithReward(ctx context.Context, answer *db_models.CreditAnswer, reward int64) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.CreditAnswer{}).
			Where("account_id = ? AND question_id = ?", answer.AccountID, answer.QuestionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrAlreadyAnswered
		}
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.CreditBalance{}).
			Where("account_id = ?", answer.AccountID).
			Update("credits", gorm.Expr("credits + ?", reward)).Error
	})
}
