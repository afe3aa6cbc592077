package memcache

import (
	"sync"
	"time"
)

// ResetCodeStore keeps single-use password reset codes in memory.
type ResetCodeStore interface {
	Set(code string, accountEmail string, ttl time.Duration)

	// Consume returns the email for code if not expired and removes it
	// (single-use). Returns "" if missing/expired.
	Consume(code string) string

	Peek(code string) (string, bool)
}

type entry struct {
	email     string
	expiresAt time.Time
}

type ResetCodes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResetCodes() *ResetCodes {
	return &ResetCodes{data: make(map[string]entry)}
}

func (s *ResetCodes) Set(code string, accountEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[code] = entry{
		email:     accountEmail,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ResetCodes) Consume(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[code]
	if !ok {
		return ""
	}
	delete(s.data, code)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.email
}

func (s *ResetCodes) Peek(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[code]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}
