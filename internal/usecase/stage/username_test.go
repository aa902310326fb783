package stage

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/service"
	mockRepo "uiagate/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPendingTimeout = 600 * time.Second

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestUsernameChecker(t *testing.T) (*usernameChecker, *memoryReservations, service.SessionStore) {
	t.Helper()

	rows := newMemoryReservations()
	c := newUsernameChecker(rows, testPendingTimeout, newDiscardLogger())
	c.now = func() time.Time { return testNow }

	return c, rows, newMemoryStore()
}

func usernameRequest(t *testing.T, store service.SessionStore, sessionID, username string) service.StageRequest {
	return newStageRequest(t, store, entity.StageEnrollUsername, sessionID, map[string]any{"username": username})
}

func TestUsernameChecker_FreshNameIsReserved(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	ctx := context.Background()
	req := usernameRequest(t, store, "sess-1", "Alice")

	ok, err := c.Check(ctx, req)
	require.NoError(t, err)
	assert.True(t, ok)

	row, found := rows.get("alice")
	require.True(t, found)
	assert.Equal(t, entity.UsernameStatusPending, row.Status)
	assert.Equal(t, "sess-1", row.Owner)

	stored, present, err := req.Session.GetData(ctx, entity.SessionKeyUsername)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "alice", stored)
}

func TestUsernameChecker_VerifiedEmailOwnsReservation(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	ctx := context.Background()
	req := usernameRequest(t, store, "sess-1", "alice")
	require.NoError(t, req.Session.SetData(ctx, entity.SessionKeyVerifiedEmail, "alice@example.org"))

	ok, err := c.Check(ctx, req)
	require.NoError(t, err)
	assert.True(t, ok)

	row, _ := rows.get("alice")
	assert.Equal(t, "alice@example.org", row.Owner)
}

func TestUsernameChecker_ExistingReservations(t *testing.T) {
	tests := []struct {
		name       string
		existing   entity.UsernameReservation
		email      string
		wantErr    error
		wantPend   time.Duration
		wantOwner  string
		wantStatus entity.UsernameStatus
	}{
		{
			name:       "enrolled is unavailable",
			existing:   entity.UsernameReservation{Status: entity.UsernameStatusEnrolled, Owner: "sess-1", CreatedAt: testNow.Add(-time.Hour)},
			wantErr:    domainerrors.ErrUsernameUnavailable,
			wantOwner:  "sess-1",
			wantStatus: entity.UsernameStatusEnrolled,
		},
		{
			name:       "fresh pending elsewhere",
			existing:   entity.UsernameReservation{Status: entity.UsernameStatusPending, Owner: "sess-other", CreatedAt: testNow.Add(-100 * time.Second)},
			wantPend:   500 * time.Second,
			wantOwner:  "sess-other",
			wantStatus: entity.UsernameStatusPending,
		},
		{
			name: "refreshed pending elsewhere counts from update",
			existing: entity.UsernameReservation{
				Status: entity.UsernameStatusPending, Owner: "sess-other",
				CreatedAt: testNow.Add(-time.Hour), UpdatedAt: testNow.Add(-10 * time.Second),
			},
			wantPend:   590 * time.Second,
			wantOwner:  "sess-other",
			wantStatus: entity.UsernameStatusPending,
		},
		{
			name:       "stale pending is reclaimed",
			existing:   entity.UsernameReservation{Status: entity.UsernameStatusPending, Owner: "sess-other", CreatedAt: testNow.Add(-testPendingTimeout)},
			wantOwner:  "sess-1",
			wantStatus: entity.UsernameStatusPending,
		},
		{
			name:       "same session resumes",
			existing:   entity.UsernameReservation{Status: entity.UsernameStatusPending, Owner: "sess-1", CreatedAt: testNow.Add(-time.Second)},
			wantOwner:  "sess-1",
			wantStatus: entity.UsernameStatusPending,
		},
		{
			name:       "same email resumes from a new session",
			existing:   entity.UsernameReservation{Status: entity.UsernameStatusPending, Owner: "alice@example.org", CreatedAt: testNow.Add(-time.Second)},
			email:      "alice@example.org",
			wantOwner:  "alice@example.org",
			wantStatus: entity.UsernameStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rows, store := createTestUsernameChecker(t)
			ctx := context.Background()

			existing := tt.existing
			existing.Username = "alice"
			rows.put(existing)

			req := usernameRequest(t, store, "sess-1", "alice")
			if tt.email != "" {
				require.NoError(t, req.Session.SetData(ctx, entity.SessionKeyVerifiedEmail, tt.email))
			}

			ok, err := c.Check(ctx, req)
			switch {
			case tt.wantErr != nil:
				assert.False(t, ok)
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantPend > 0:
				assert.False(t, ok)
				var pending *domainerrors.PendingError
				require.ErrorAs(t, err, &pending)
				assert.Equal(t, tt.wantPend, pending.RetryAfter())
			default:
				require.NoError(t, err)
				assert.True(t, ok)

				row, _ := rows.get("alice")
				assert.Equal(t, testNow, row.UpdatedAt)
			}

			row, _ := rows.get("alice")
			assert.Equal(t, tt.wantOwner, row.Owner)
			assert.Equal(t, tt.wantStatus, row.Status)
		})
	}
}

func TestUsernameChecker_RejectionLeavesNoReservation(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	c.blocklist.Store(NewBlocklist([]string{"admin"}))

	for _, name := range []string{"_alice", "al ice", "4dm1n", ""} {
		ok, err := c.Check(context.Background(), usernameRequest(t, store, "sess-1", name))
		assert.False(t, ok, name)
		assert.Error(t, err, name)
	}
	assert.Empty(t, rows.rows)
}

func TestUsernameChecker_MissingUsernameIsBadJSON(t *testing.T) {
	c, _, store := createTestUsernameChecker(t)

	req := newStageRequest(t, store, entity.StageEnrollUsername, "sess-1", nil)
	ok, err := c.Check(context.Background(), req)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrBadJSON)
}

func TestUsernameChecker_LosingTheRaceReportsTheWinner(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	rows.put(entity.UsernameReservation{
		Username: "alice", Status: entity.UsernameStatusPending, Owner: "sess-old", CreatedAt: testNow.Add(-time.Hour),
	})
	// Another session reclaims and finishes between our read and our update.
	rows.beforeClaim = func(r map[string]entity.UsernameReservation) {
		r["alice"] = entity.UsernameReservation{
			Username: "alice", Status: entity.UsernameStatusEnrolled, Owner: "sess-winner", CreatedAt: testNow.Add(-time.Hour), UpdatedAt: testNow,
		}
	}

	ok, err := c.Check(context.Background(), usernameRequest(t, store, "sess-1", "alice"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameUnavailable)
}

func TestUsernameChecker_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	for _, seed := range []struct {
		name     string
		existing *entity.UsernameReservation
	}{
		{name: "fresh name"},
		{name: "stale reservation", existing: &entity.UsernameReservation{
			Username: "alice", Status: entity.UsernameStatusPending, Owner: "sess-old", CreatedAt: testNow.Add(-2 * testPendingTimeout),
		}},
	} {
		t.Run(seed.name, func(t *testing.T) {
			c, rows, store := createTestUsernameChecker(t)
			if seed.existing != nil {
				rows.put(*seed.existing)
			}

			const clients = 32
			var (
				wg      sync.WaitGroup
				winners atomic.Int32
				pending atomic.Int32
				owner   atomic.Value
			)
			requests := make([]service.StageRequest, clients)
			for i := range requests {
				requests[i] = usernameRequest(t, store, fmt.Sprintf("sess-%d", i), "alice")
			}

			for i := 0; i < clients; i++ {
				wg.Add(1)
				go func(req service.StageRequest) {
					defer wg.Done()

					ok, err := c.Check(context.Background(), req)
					if ok && err == nil {
						winners.Add(1)
						owner.Store(req.SessionID)

						return
					}
					var pendingErr *domainerrors.PendingError
					if errors.As(err, &pendingErr) {
						pending.Add(1)
					}
				}(requests[i])
			}
			wg.Wait()

			assert.Equal(t, int32(1), winners.Load())
			assert.Equal(t, int32(clients-1), pending.Load())

			row, _ := rows.get("alice")
			assert.Equal(t, owner.Load(), row.Owner)
		})
	}
}

func TestUsernameChecker_OnEnrolled(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	ctx := context.Background()

	req := usernameRequest(t, store, "sess-1", "alice")
	ok, err := c.Check(ctx, req)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, c.OnEnrolled(ctx, req, "@alice:example.org"))

	row, _ := rows.get("alice")
	assert.Equal(t, entity.UsernameStatusEnrolled, row.Status)

	// Enrolled names are never handed out again, however old.
	c.now = func() time.Time { return testNow.Add(10 * testPendingTimeout) }
	ok, err = c.Check(ctx, usernameRequest(t, store, "sess-2", "alice"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameUnavailable)
}

func TestUsernameChecker_OnEnrolledAfterReclaimFails(t *testing.T) {
	c, rows, store := createTestUsernameChecker(t)
	ctx := context.Background()

	first := usernameRequest(t, store, "sess-1", "alice")
	ok, err := c.Check(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)

	// sess-1 walks away; sess-2 reclaims after the timeout.
	c.now = func() time.Time { return testNow.Add(testPendingTimeout + time.Second) }
	ok, err = c.Check(ctx, usernameRequest(t, store, "sess-2", "alice"))
	require.NoError(t, err)
	require.True(t, ok)

	err = c.OnEnrolled(ctx, first, "@alice:example.org")
	assert.ErrorIs(t, err, domainerrors.ErrReservationLost)

	row, _ := rows.get("alice")
	assert.Equal(t, entity.UsernameStatusPending, row.Status)
	assert.Equal(t, "sess-2", row.Owner)
}

func TestUsernameChecker_LoadBlocklist(t *testing.T) {
	c, _, store := createTestUsernameChecker(t)
	badWords := mockRepo.NewMockBadWordRepository(t)
	badWords.EXPECT().ListBadWords(context.Background()).Return([]string{"Root"}, nil)

	require.NoError(t, c.loadBlocklist(context.Background(), badWords))
	assert.Equal(t, 1, c.blocklist.Load().Len())

	ok, err := c.Check(context.Background(), usernameRequest(t, store, "sess-1", "r00t"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameUnavailable)
}

func TestUsernameChecker_Capabilities(t *testing.T) {
	c, _, _ := createTestUsernameChecker(t)
	ctx := context.Background()

	assert.Equal(t, []string{entity.StageEnrollUsername}, c.SupportedAuthTypes())

	required, err := c.IsRequired(ctx, "@alice:example.org", entity.StageEnrollUsername)
	require.NoError(t, err)
	assert.False(t, required)

	enrolled, err := c.IsUserEnrolled(ctx, "@alice:example.org", entity.StageEnrollUsername)
	require.NoError(t, err)
	assert.True(t, enrolled)
}
