package services

import (
	"context"
	"log"
	"time"

	"astroportal/internal/models/db_models"
	"astroportal/internal/models/request_models"
	"astroportal/internal/repositories"
	mem "astroportal/pkg/memcache"
	"astroportal/pkg/utils"
)

const resetCodeTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithCode(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetCodes  mem.ResetCodeStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetCodes mem.ResetCodeStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetCodes:  resetCodes,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if !utils.IsValidEmail(request.Email) {
		return utils.ErrInvalidInput
	}

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint does not leak which emails exist.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetCodes.Set(code, account.Email, resetCodeTTL)

	if err := a.mailService.SendResetCode(account.Email, code); err != nil {
		log.Printf("Failed to send reset code to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPasswordWithCode(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetCodes.Consume(request.Code)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetCode
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
