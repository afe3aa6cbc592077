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

func TestGetProfile_CreatesEmptyProfileOnFirstAccess(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)
	accountID := uuid.New()

	profile, err := service.GetProfile(context.Background(), accountID)
	require.NoError(t, err)
	assert.Zero(t, profile.CompletionPercent)
	assert.Empty(t, profile.ZodiacSign)
	assert.NotNil(t, repo.profiles[accountID], "first access persists an empty profile row")
}

func TestUpdateProfile_ResolvesZodiacSign(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)
	accountID := uuid.New()

	profile, err := service.UpdateProfile(context.Background(), accountID, request_models.UpdateProfileRequest{
		FirstName: "Marek",
		BirthDate: "1992-08-10",
	})
	require.NoError(t, err)
	assert.Equal(t, utils.ZodiacLeo, profile.ZodiacSign)
	assert.Equal(t, utils.ZodiacLeo, repo.profiles[accountID].ZodiacSign)
}

func TestUpdateProfile_ClearedBirthDateClearsZodiac(t *testing.T) {
	repo := newFakeProfileRepo()
	service := NewProfileService(repo)
	accountID := uuid.New()
	repo.profiles[accountID] = &db_models.Profile{
		AccountID:  accountID,
		BirthDate:  "1992-08-10",
		ZodiacSign: utils.ZodiacLeo,
	}

	profile, err := service.UpdateProfile(context.Background(), accountID, request_models.UpdateProfileRequest{
		FirstName: "Marek",
	})
	require.NoError(t, err)
	assert.Empty(t, profile.ZodiacSign)
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(&db_models.Profile{}))

	assert.Equal(t, 100, CompletionPercent(&db_models.Profile{
		FirstName:          "Anna",
		LastName:           "Nowak",
		BirthDate:          "1990-04-01",
		BirthTime:          "06:30",
		BirthPlace:         "Kraków",
		CurrentLocation:    "Warszawa",
		RelationshipStatus: db_models.RelationshipSingle,
	}))

	// 3 of 7 fields filled.
	assert.Equal(t, 42, CompletionPercent(&db_models.Profile{
		FirstName: "Anna",
		LastName:  "Nowak",
		BirthDate: "1990-04-01",
	}))
}
