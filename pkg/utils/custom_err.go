package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrAstrologerNotFound = errors.New("astrologer not found")
	ErrPriceNotFound      = errors.New("astrologer does not offer this category")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrHoroscopeNotFound  = errors.New("horoscope not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAlreadyAnswered    = errors.New("question already answered")
	ErrAlreadyReviewed    = errors.New("astrologer already reviewed")
	ErrReviewNotAllowed   = errors.New("no completed order with this astrologer")

	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrZodiacUnresolved    = errors.New("zodiac sign cannot be resolved from profile")

	ErrGenerationFailed = errors.New("text generation failed")
	ErrPackNotFound     = errors.New("credit pack not found")
)
