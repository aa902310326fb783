package entity

import (
	"strings"
	"time"
)

// UsernameStatus is the lifecycle state of a username reservation.
type UsernameStatus string

const (
	UsernameStatusPending  UsernameStatus = "pending"  // Claimed by an in-flight registration.
	UsernameStatusEnrolled UsernameStatus = "enrolled" // Owned by a registered account, never reclaimable.
)

// UsernameReservation is the single row that arbitrates who may register a username.
type UsernameReservation struct {
	Username  string         // Lower-cased localpart; primary key.
	Status    UsernameStatus // pending or enrolled.
	Owner     string         // UIA session id or verified email of the claimant.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastTouched is the time the claim was last created or refreshed.
func (r *UsernameReservation) LastTouched() time.Time {
	if r.UpdatedAt.IsZero() {
		return r.CreatedAt
	}

	return r.UpdatedAt
}

// IsOwnedBy reports whether any non-empty token equals the reservation owner.
func (r *UsernameReservation) IsOwnedBy(tokens ...string) bool {
	for _, token := range tokens {
		if token != "" && token == r.Owner {
			return true
		}
	}

	return false
}

// IsStale reports whether a pending claim has gone untouched for at least timeout.
func (r *UsernameReservation) IsStale(now time.Time, timeout time.Duration) bool {
	return now.Sub(r.LastTouched()) >= timeout
}

// LocalpartFromUserID turns "@alice:example.org" into "alice".
// Input without the leading sigil or the server part is accepted as is.
func LocalpartFromUserID(userID string) string {
	local, _, _ := strings.Cut(userID, ":")

	return strings.ToLower(strings.TrimPrefix(local, "@"))
}
