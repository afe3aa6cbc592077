package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/pkg/memcache"
	"astroportal/pkg/utils"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account // by email
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now().Unix()
	stored := *account
	f.accounts[account.Email] = &stored
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.ID == id {
			account.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeMailService struct {
	mu    sync.Mutex
	sent  []string // recipient emails
	codes []string
}

func (f *fakeMailService) SendResetCode(toEmail, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	f.codes = append(f.codes, code)
	return nil
}

func newAccountFixture(t *testing.T) (*fakeAccountRepo, *fakeMailService, *memcache.ResetCodes, AccountServiceInterface) {
	t.Helper()
	repo := newFakeAccountRepo()
	mail := &fakeMailService{}
	codes := memcache.NewResetCodes()
	return repo, mail, codes, NewAccountService(repo, mail, codes)
}

func TestCreateAccountAndLogin(t *testing.T) {
	_, _, _, service := newAccountFixture(t)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "anna@example.com",
		Password:    "sekret123",
	}))

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "anna@example.com",
		Password: "sekret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Email:    "anna@example.com",
		Password: "zlehaslo",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	_, _, _, service := newAccountFixture(t)

	signup := request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "anna@example.com",
		Password:    "sekret123",
	}
	require.NoError(t, service.CreateAccount(context.Background(), signup))

	err := service.CreateAccount(context.Background(), signup)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccount_InvalidEmail(t *testing.T) {
	_, _, _, service := newAccountFixture(t)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "annaexample.com",
		Password:    "sekret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, _, service := newAccountFixture(t)

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "nikt@example.com",
		Password: "sekret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestForgotPassword_DoesNotLeakExistence(t *testing.T) {
	_, mail, _, service := newAccountFixture(t)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "anna@example.com",
		Password:    "sekret123",
	}))

	// Unknown email: same nil result, no mail sent.
	require.NoError(t, service.ForgotPassword(context.Background(), "nikt@example.com"))
	assert.Empty(t, mail.sent)

	require.NoError(t, service.ForgotPassword(context.Background(), "anna@example.com"))
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "anna@example.com", mail.sent[0])
	assert.Len(t, mail.codes[0], 6)
}

func TestResetPasswordWithCode(t *testing.T) {
	_, mail, _, service := newAccountFixture(t)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "anna@example.com",
		Password:    "sekret123",
	}))
	require.NoError(t, service.ForgotPassword(context.Background(), "anna@example.com"))
	require.Len(t, mail.codes, 1)
	code := mail.codes[0]

	require.NoError(t, service.ResetPasswordWithCode(context.Background(), request_models.ResetPasswordRequest{
		Email:       "anna@example.com",
		Code:        code,
		NewPassword: "nowehaslo",
	}))

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "anna@example.com",
		Password: "sekret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials, "old password must stop working")

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "anna@example.com",
		Password: "nowehaslo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The code is single-use.
	err = service.ResetPasswordWithCode(context.Background(), request_models.ResetPasswordRequest{
		Email:       "anna@example.com",
		Code:        code,
		NewPassword: "jeszczeinne",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetCode)
}

func TestResetPasswordWithCode_WrongEmail(t *testing.T) {
	_, mail, _, service := newAccountFixture(t)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Anna",
		Email:       "anna@example.com",
		Password:    "sekret123",
	}))
	require.NoError(t, service.ForgotPassword(context.Background(), "anna@example.com"))

	err := service.ResetPasswordWithCode(context.Background(), request_models.ResetPasswordRequest{
		Email:       "inna@example.com",
		Code:        mail.codes[0],
		NewPassword: "nowehaslo",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetCode)
}
