package entity

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// RegistrationToken is an invitation that admits a limited number of registrations.
type RegistrationToken struct {
	Token     string     // Opaque token; primary key.
	CreatedBy string     // Admin user id that minted the token.
	Slots     int        // Remaining registrations this token admits.
	CreatedAt time.Time  // When the token was minted.
	ExpiresAt *time.Time // Nil means the token never expires.
}

// IsExpired reports whether the token has passed its expiry at now.
func (t *RegistrationToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// Usable reports whether the token can admit one more registration.
func (t *RegistrationToken) Usable(now time.Time) bool {
	return t.Slots > 0 && !t.IsExpired(now)
}

// NewRegistrationTokenID returns a token of the form "xxxx-xxxx-xxxx-xxxx".
func NewRegistrationTokenID() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}

	return fmt.Sprintf("%04x-%04x-%04x-%04x",
		binary.BigEndian.Uint16(buf[0:2]),
		binary.BigEndian.Uint16(buf[2:4]),
		binary.BigEndian.Uint16(buf[4:6]),
		binary.BigEndian.Uint16(buf[6:8]),
	), nil
}
