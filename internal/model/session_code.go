package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionCode caps the number of generations a walk-up client may run
// without a full account. Codes are stored uppercase and compared exactly.
type SessionCode struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Code            string     `json:"code" db:"code"`
	Name            *string    `json:"name,omitempty" db:"name"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	MaxGenerations  int        `json:"maxGenerations" db:"max_generations"`
	UsedGenerations int        `json:"usedGenerations" db:"used_generations"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	CreatedByID     *uuid.UUID `json:"createdById,omitempty" db:"created_by_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

// Remaining returns the generations left on the code.
func (c *SessionCode) Remaining() int {
	if r := c.MaxGenerations - c.UsedGenerations; r > 0 {
		return r
	}
	return 0
}

// Expired reports whether the code has an expiry in the past.
func (c *SessionCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// NormalizeCode uppercases and trims a user-supplied code and validates its
// length (6 to 9 characters).
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 6 || len(code) > 9 {
		return "", fmt.Errorf("%w: must be 6-9 characters", ErrInvalidCode)
	}
	return code, nil
}
