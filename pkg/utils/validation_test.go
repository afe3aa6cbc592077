package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"anna.nowak@portal.pl",
		"a@b.co",
		"user+tag@sub.example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"test@",
		"testexample.com",
		"@example.com",
		"test@example",
		"te st@example.com",
		"test@exa mple.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}
