package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsume_SingleUse(t *testing.T) {
	store := NewResetCodes()
	store.Set("123456", "anna@example.com", time.Minute)

	assert.Equal(t, "anna@example.com", store.Consume("123456"))
	assert.Empty(t, store.Consume("123456"), "a consumed code must not work twice")
}

func TestConsume_Expired(t *testing.T) {
	store := NewResetCodes()
	store.Set("123456", "anna@example.com", -time.Second)

	assert.Empty(t, store.Consume("123456"))
}

func TestConsume_Unknown(t *testing.T) {
	store := NewResetCodes()
	assert.Empty(t, store.Consume("000000"))
}

func TestPeek_DoesNotConsume(t *testing.T) {
	store := NewResetCodes()
	store.Set("123456", "anna@example.com", time.Minute)

	email, ok := store.Peek("123456")
	assert.True(t, ok)
	assert.Equal(t, "anna@example.com", email)

	assert.Equal(t, "anna@example.com", store.Consume("123456"))
}

func TestSet_OverwritesExistingCode(t *testing.T) {
	store := NewResetCodes()
	store.Set("123456", "old@example.com", time.Minute)
	store.Set("123456", "new@example.com", time.Minute)

	assert.Equal(t, "new@example.com", store.Consume("123456"))
}
