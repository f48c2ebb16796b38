package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/mongodb/testutil"
)

func setupSessionRepoTest(t *testing.T) (domain.SessionRepository, context.Context) {
	t.Helper()

	db, cleanup := testutil.SetupTestMongoDB(t, "test_dg_session_repo")
	t.Cleanup(cleanup)

	ctx := context.Background()
	repo, err := NewSessionRepositoryMongo(ctx, db)
	require.NoError(t, err)
	return repo, ctx
}

func newTestSession(userID string, loginTime time.Time) *domain.Session {
	return &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		LoginTime: loginTime,
		IsActive:  true,
	}
}

func TestSessionRepository_StoreAndGet(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	loginTime := time.Now().UTC().Truncate(time.Millisecond)
	session := newTestSession("user-1", loginTime)

	require.NoError(t, repo.StoreSession(ctx, session))
	assert.False(t, session.CreatedAt.IsZero())

	got, err := repo.GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.LoginTime.Equal(loginTime))
	assert.Nil(t, got.LogoutTime)
	assert.True(t, got.IsActive)
}

func TestSessionRepository_GetSessionByID_NotFound(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	_, err := repo.GetSessionByID(ctx, "no-such-session")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionRepository_SetSessionLogoutTime(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	session := newTestSession("user-2", time.Now().UTC())
	require.NoError(t, repo.StoreSession(ctx, session))

	logoutTime := time.Now().UTC().Truncate(time.Millisecond)
	updated, err := repo.SetSessionLogoutTime(ctx, session.ID, logoutTime)
	require.NoError(t, err)
	require.NotNil(t, updated.LogoutTime)
	assert.True(t, updated.LogoutTime.Equal(logoutTime))
	// logout never flips is_active; the field is write-once at creation.
	assert.True(t, updated.IsActive)

	// A second write overwrites with the later timestamp, no error.
	later := logoutTime.Add(5 * time.Minute)
	updated2, err := repo.SetSessionLogoutTime(ctx, session.ID, later)
	require.NoError(t, err)
	require.NotNil(t, updated2.LogoutTime)
	assert.True(t, updated2.LogoutTime.Equal(later))
}

func TestSessionRepository_SetSessionLogoutTime_NotFound(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	_, err := repo.SetSessionLogoutTime(ctx, "missing", time.Now().UTC())
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	count, err := repo.CountSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionRepository_SessionExists(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	loginTime := time.Now().UTC().Truncate(time.Millisecond)
	session := newTestSession("user-3", loginTime)
	require.NoError(t, repo.StoreSession(ctx, session))

	exists, err := repo.SessionExists(ctx, "user-3", loginTime)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SessionExists(ctx, "user-3", loginTime.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SessionExists(ctx, "someone-else", loginTime)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionRepository_ListSessionsByUserID(t *testing.T) {
	repo, ctx := setupSessionRepoTest(t)

	base := time.Now().UTC().Truncate(time.Millisecond)
	older := newTestSession("user-4", base.Add(-2*time.Hour))
	newer := newTestSession("user-4", base)
	other := newTestSession("user-5", base)
	for _, s := range []*domain.Session{older, newer, other} {
		require.NoError(t, repo.StoreSession(ctx, s))
	}

	logout := base.Add(-time.Hour)
	_, err := repo.SetSessionLogoutTime(ctx, older.ID, logout)
	require.NoError(t, err)

	sessions, err := repo.ListSessionsByUserID(ctx, "user-4", domain.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// Newest login first.
	assert.Equal(t, newer.ID, sessions[0].ID)
	assert.Equal(t, older.ID, sessions[1].ID)

	active, err := repo.ListSessionsByUserID(ctx, "user-4", domain.SessionFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, newer.ID, active[0].ID)
}
