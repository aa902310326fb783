package stage

import (
	"context"
	"testing"
	"time"

	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	mockRepo "uiagate/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationTokenChecker(t *testing.T) (*registrationTokenChecker, *mockRepo.MockRegistrationTokenRepository) {
	tokenRepo := mockRepo.NewMockRegistrationTokenRepository(t)
	c := NewRegistrationTokenChecker(tokenRepo, newDiscardLogger()).(*registrationTokenChecker)
	c.now = func() time.Time { return testNow }

	return c, tokenRepo
}

func TestRegistrationTokenChecker_Check(t *testing.T) {
	expired := testNow.Add(-time.Minute)
	later := testNow.Add(time.Hour)

	tests := []struct {
		name    string
		found   *entity.RegistrationToken
		findErr error
		wantOK  bool
	}{
		{name: "usable", found: &entity.RegistrationToken{Token: "t1", Slots: 2, ExpiresAt: &later}, wantOK: true},
		{name: "unknown", findErr: repository.ErrRegistrationTokenNotFound},
		{name: "no slots", found: &entity.RegistrationToken{Token: "t1", Slots: 0}},
		{name: "expired", found: &entity.RegistrationToken{Token: "t1", Slots: 5, ExpiresAt: &expired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tokenRepo := createTestRegistrationTokenChecker(t)
			store := newMemoryStore()
			req := newStageRequest(t, store, entity.StageRegistrationToken, "sess-1", map[string]any{"token": "t1"})

			tokenRepo.EXPECT().FindByToken(mock.Anything, "t1").Return(tt.found, tt.findErr)

			ok, err := c.Check(context.Background(), req)
			assert.Equal(t, tt.wantOK, ok)

			stored, present, getErr := req.Session.GetData(context.Background(), entity.SessionKeyRegistrationToken)
			require.NoError(t, getErr)
			if tt.wantOK {
				require.NoError(t, err)
				assert.True(t, present)
				assert.Equal(t, "t1", stored)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrRegistrationTokenInvalid)
				assert.False(t, present)
			}
		})
	}
}

func TestRegistrationTokenChecker_MissingToken(t *testing.T) {
	c, _ := createTestRegistrationTokenChecker(t)

	ok, err := c.Check(context.Background(), newStageRequest(t, newMemoryStore(), entity.StageRegistrationToken, "sess-1", nil))
	assert.False(t, ok)
	assert.ErrorIs(t, err, domainerrors.ErrBadJSON)
}

func TestRegistrationTokenChecker_OnEnrolledConsumesSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("consumed", func(t *testing.T) {
		c, tokenRepo := createTestRegistrationTokenChecker(t)
		req := newStageRequest(t, newMemoryStore(), entity.StageRegistrationToken, "sess-1", nil)
		require.NoError(t, req.Session.SetData(ctx, entity.SessionKeyRegistrationToken, "t1"))

		tokenRepo.EXPECT().ConsumeSlot(ctx, "t1", testNow).Return(true, nil)

		assert.NoError(t, c.OnEnrolled(ctx, req, "@alice:example.org"))
	})

	t.Run("exhausted meanwhile", func(t *testing.T) {
		c, tokenRepo := createTestRegistrationTokenChecker(t)
		req := newStageRequest(t, newMemoryStore(), entity.StageRegistrationToken, "sess-1", nil)
		require.NoError(t, req.Session.SetData(ctx, entity.SessionKeyRegistrationToken, "t1"))

		tokenRepo.EXPECT().ConsumeSlot(ctx, "t1", testNow).Return(false, nil)

		assert.ErrorIs(t, c.OnEnrolled(ctx, req, "@alice:example.org"), domainerrors.ErrRegistrationTokenInvalid)
	})

	t.Run("no token in session", func(t *testing.T) {
		c, _ := createTestRegistrationTokenChecker(t)
		req := newStageRequest(t, newMemoryStore(), entity.StageRegistrationToken, "sess-1", nil)

		assert.ErrorIs(t, c.OnEnrolled(ctx, req, "@alice:example.org"), domainerrors.ErrRegistrationTokenInvalid)
	})
}

func TestDummyChecker(t *testing.T) {
	c := NewDummyChecker()

	ok, err := c.Check(context.Background(), service.StageRequest{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{entity.StageDummy}, c.SupportedAuthTypes())
	assert.NoError(t, c.OnEnrolled(context.Background(), service.StageRequest{}, "@alice:example.org"))
}
