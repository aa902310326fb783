package stage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"uiagate/internal/domain/entity"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	"uiagate/internal/infra/session"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStageRequest binds sessionID in store and encodes auth as the submission.
func newStageRequest(t *testing.T, store service.SessionStore, stage, sessionID string, auth map[string]any) service.StageRequest {
	t.Helper()

	sess, err := store.Connect(context.Background(), sessionID)
	require.NoError(t, err)

	body := map[string]any{"type": stage, "session": sessionID}
	for k, v := range auth {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	return service.StageRequest{
		AuthType:  stage,
		SessionID: sessionID,
		Session:   sess,
		Auth:      raw,
	}
}

func newMemoryStore() service.SessionStore {
	return session.NewMemoryStore()
}

// memoryReservations applies the same conditional predicates as the SQL
// repository, under one lock, so races resolve the way the database would.
type memoryReservations struct {
	mu   sync.Mutex
	rows map[string]entity.UsernameReservation

	// beforeClaim runs once, under the lock, ahead of the next ClaimPending.
	beforeClaim func(rows map[string]entity.UsernameReservation)
}

func newMemoryReservations() *memoryReservations {
	return &memoryReservations{rows: make(map[string]entity.UsernameReservation)}
}

func (m *memoryReservations) put(r entity.UsernameReservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[r.Username] = r
}

func (m *memoryReservations) get(username string) (entity.UsernameReservation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[username]

	return r, ok
}

func (m *memoryReservations) FindByUsername(_ context.Context, username string) (*entity.UsernameReservation, error) {
	r, ok := m.get(username)
	if !ok {
		return nil, repository.ErrUsernameNotFound
	}

	return &r, nil
}

func (m *memoryReservations) CreatePending(_ context.Context, r *entity.UsernameReservation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.rows[r.Username]; taken {
		return false, nil
	}
	row := *r
	row.Status = entity.UsernameStatusPending
	m.rows[r.Username] = row

	return true, nil
}

func (m *memoryReservations) ClaimPending(_ context.Context, in repository.ClaimPendingInput) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.beforeClaim != nil {
		hook := m.beforeClaim
		m.beforeClaim = nil
		hook(m.rows)
	}

	row, ok := m.rows[in.Username]
	if !ok || row.Status != entity.UsernameStatusPending {
		return false, nil
	}
	if !row.IsOwnedBy(in.ResumeTokens...) && row.LastTouched().After(in.StaleBefore) {
		return false, nil
	}

	row.Owner = in.Owner
	row.UpdatedAt = in.Now
	m.rows[in.Username] = row

	return true, nil
}

func (m *memoryReservations) MarkEnrolled(_ context.Context, username string, owners []string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[username]
	if !ok || row.Status != entity.UsernameStatusPending || !row.IsOwnedBy(owners...) {
		return false, nil
	}

	row.Status = entity.UsernameStatusEnrolled
	row.UpdatedAt = now
	m.rows[username] = row

	return true, nil
}
