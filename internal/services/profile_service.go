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

type ProfileServiceInterface interface {
	// GetProfile creates an empty profile on first access.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (p *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		profile = &db_models.Profile{AccountID: accountID}
		if err := p.profileRepo.Insert(ctx, profile); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return toProfileResponse(profile), nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		profile = &db_models.Profile{AccountID: accountID}
		if err := p.profileRepo.Insert(ctx, profile); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	profile.FirstName = request.FirstName
	profile.LastName = request.LastName
	profile.BirthDate = request.BirthDate
	profile.BirthTime = request.BirthTime
	profile.BirthPlace = request.BirthPlace
	profile.CurrentLocation = request.CurrentLocation
	profile.RelationshipStatus = db_models.RelationshipStatus(request.RelationshipStatus)
	profile.ZodiacSign = utils.ZodiacSignFromBirthDate(request.BirthDate)

	if err := p.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toProfileResponse(profile), nil
}

// CompletionPercent is the share of profile fields the user has filled.
func CompletionPercent(profile *db_models.Profile) int {
	fields := []string{
		profile.FirstName,
		profile.LastName,
		profile.BirthDate,
		profile.BirthTime,
		profile.BirthPlace,
		profile.CurrentLocation,
		string(profile.RelationshipStatus),
	}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}

func toProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		BirthDate:          profile.BirthDate,
		BirthTime:          profile.BirthTime,
		BirthPlace:         profile.BirthPlace,
		CurrentLocation:    profile.CurrentLocation,
		RelationshipStatus: string(profile.RelationshipStatus),
		ZodiacSign:         profile.ZodiacSign,
		CompletionPercent:  CompletionPercent(profile),
	}
}
