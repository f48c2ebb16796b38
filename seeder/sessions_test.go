package seeder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
)

// --- In-memory fakes ---

type memUserRepo struct {
	users []*domain.User
}

func (m *memUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepo) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) UpdateUser(_ context.Context, _ *domain.User) error { return nil }

func (m *memUserRepo) ListUsers(_ context.Context) ([]*domain.User, error) {
	return m.users, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions []*domain.Session
}

func (m *memSessionRepo) StoreSession(_ context.Context, session *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *memSessionRepo) GetSessionByID(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrSessionNotFound
}

func (m *memSessionRepo) SetSessionLogoutTime(_ context.Context, id string, logoutTime time.Time) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.ID == id {
			t := logoutTime
			s.LogoutTime = &t
			return s, nil
		}
	}
	return nil, apperrors.ErrSessionNotFound
}

func (m *memSessionRepo) SessionExists(_ context.Context, userID string, loginTime time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserID == userID && s.LoginTime.Equal(loginTime) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSessionRepo) ListSessionsByUserID(_ context.Context, userID string, _ domain.SessionFilter) ([]*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSessionRepo) CountSessions(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.sessions)), nil
}

func seededUsers(t *testing.T) *memUserRepo {
	t.Helper()
	repo := &memUserRepo{}
	for _, email := range []string{
		"alice.smith@example.com",
		"bob.johnson@example.com",
		"charlie.brown@example.com",
		"diana.prince@example.com",
		"eve.adams@example.com",
	} {
		require.NoError(t, repo.CreateUser(context.Background(), &domain.User{
			Email:      email,
			IsVerified: true,
			IsActive:   true,
		}))
	}
	return repo
}

// --- Tests ---

func TestSeedSessions_SeedsAllEntries(t *testing.T) {
	users := seededUsers(t)
	sessions := &memSessionRepo{}

	now := time.Now().UTC()
	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, now))

	count, err := sessions.CountSessions(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}

func TestSeedSessions_Idempotent(t *testing.T) {
	users := seededUsers(t)
	sessions := &memSessionRepo{}

	now := time.Now().UTC()
	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, now))
	first, err := sessions.CountSessions(context.Background())
	require.NoError(t, err)

	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, now))
	second, err := sessions.CountSessions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeedSessions_SkipsMissingUser(t *testing.T) {
	users := &memUserRepo{}
	require.NoError(t, users.CreateUser(context.Background(), &domain.User{
		Email: "alice.smith@example.com",
	}))
	sessions := &memSessionRepo{}

	err := SeedSessionsAt(context.Background(), users, sessions, time.Now().UTC())
	require.NoError(t, err)

	// Only Alice's two entries land; everyone else is skipped.
	count, err := sessions.CountSessions(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSeedSessions_EmptyUserCollectionShortCircuits(t *testing.T) {
	users := &memUserRepo{}
	sessions := &memSessionRepo{}

	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, time.Now().UTC()))

	count, err := sessions.CountSessions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeedSessions_StillActiveDemoSession(t *testing.T) {
	users := seededUsers(t)
	sessions := &memSessionRepo{}

	now := time.Now().UTC()
	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, now))

	diana, err := users.GetUserByEmail(context.Background(), "diana.prince@example.com")
	require.NoError(t, err)

	dianaSessions, err := sessions.ListSessionsByUserID(context.Background(), diana.ID, domain.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, dianaSessions, 1)
	assert.True(t, dianaSessions[0].LoginTime.Equal(now.Truncate(time.Millisecond)))
	assert.Nil(t, dianaSessions[0].LogoutTime)
}

func TestSeedSessions_LoginPrecedesLogout(t *testing.T) {
	users := seededUsers(t)
	sessions := &memSessionRepo{}

	require.NoError(t, SeedSessionsAt(context.Background(), users, sessions, time.Now().UTC()))

	for _, u := range users.users {
		list, err := sessions.ListSessionsByUserID(context.Background(), u.ID, domain.SessionFilter{})
		require.NoError(t, err)
		for _, s := range list {
			if s.LogoutTime != nil {
				assert.False(t, s.LogoutTime.Before(s.LoginTime))
			}
		}
	}
}
