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

type AstrologerServiceInterface interface {
	ListAstrologers(ctx context.Context, page, pageSize int) ([]response_models.AstrologerSummaryResponse, error)
	GetAstrologerById(ctx context.Context, id uuid.UUID) (*response_models.AstrologerDetailResponse, error)
	CreateReview(ctx context.Context, astrologerID, accountID uuid.UUID, request request_models.CreateReviewRequest) error
}

type AstrologerService struct {
	astrologerRepo repositories.AstrologerRepository
}

func NewAstrologerService(astrologerRepo repositories.AstrologerRepository) AstrologerServiceInterface {
	return &AstrologerService{astrologerRepo: astrologerRepo}
}

func (a *AstrologerService) ListAstrologers(ctx context.Context, page, pageSize int) ([]response_models.AstrologerSummaryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	astrologers, err := a.astrologerRepo.ListActive(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.AstrologerSummaryResponse, 0, len(astrologers))
	for i := range astrologers {
		result = append(result, toAstrologerSummary(&astrologers[i]))
	}
	return result, nil
}

func (a *AstrologerService) GetAstrologerById(ctx context.Context, id uuid.UUID) (*response_models.AstrologerDetailResponse, error) {
	astrologer, err := a.astrologerRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if astrologer == nil {
		return nil, utils.ErrAstrologerNotFound
	}

	detail := &response_models.AstrologerDetailResponse{
		AstrologerSummaryResponse: toAstrologerSummary(astrologer),
	}

	for _, price := range astrologer.Prices {
		detail.Prices = append(detail.Prices, response_models.AstrologerPriceResponse{
			Category: string(price.Category),
			Label:    utils.FormatHoroscopeType(price.Category),
			Credits:  price.Credits,
		})
	}
	for _, slot := range astrologer.Availability {
		detail.Availability = append(detail.Availability, response_models.AvailabilityResponse{
			Weekday:   slot.Weekday,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	for _, review := range astrologer.Reviews {
		detail.Reviews = append(detail.Reviews, response_models.ReviewResponse{
			Author:    review.Account.DisplayName,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return detail, nil
}

// CreateReview allows one review per user per astrologer, and only
// after that astrologer completed an order for the user.
func (a *AstrologerService) CreateReview(ctx context.Context, astrologerID, accountID uuid.UUID, request request_models.CreateReviewRequest) error {
	astrologer, err := a.astrologerRepo.FindById(ctx, astrologerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if astrologer == nil {
		return utils.ErrAstrologerNotFound
	}

	completed, err := a.astrologerRepo.HasCompletedOrder(ctx, astrologerID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !completed {
		return utils.ErrReviewNotAllowed
	}

	reviewed, err := a.astrologerRepo.HasReviewBy(ctx, astrologerID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if reviewed {
		return utils.ErrAlreadyReviewed
	}

	review := &db_models.AstrologerReview{
		AstrologerID: astrologerID,
		AccountID:    accountID,
		Rating:       request.Rating,
		Comment:      request.Comment,
	}
	if err := a.astrologerRepo.InsertReview(ctx, review); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAstrologerSummary(astrologer *db_models.Astrologer) response_models.AstrologerSummaryResponse {
	return response_models.AstrologerSummaryResponse{
		ID:              astrologer.ID.String(),
		DisplayName:     astrologer.DisplayName,
		Bio:             astrologer.Bio,
		ExperienceYears: astrologer.ExperienceYears,
		Specialties:     astrologer.Specialties,
		AverageRating:   astrologer.AverageRating(),
		RatingCount:     astrologer.RatingCount,
	}
}
