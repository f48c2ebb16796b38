package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
	apperrors "github.com/Jenilvaghasiya/deploy-DG-sub007/errors"
)

func activeUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		FullName:     "Alice Smith",
		Email:        "alice.smith@example.com",
		PasswordHash: "$2a$10$hash",
		IsVerified:   true,
		IsActive:     true,
	}
}

func newAuthServiceForTest(userRepo domain.UserRepository, hasher PasswordHasher) *AuthService {
	return NewAuthService(userRepo, NewSessionService(newFakeSessionRepository()), hasher)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	user := activeUser()
	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)
	hasher.On("Verify", user.PasswordHash, "password123").Return(nil)

	result, err := svc.Login(context.Background(), user.Email, "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	require.NotNil(t, result.Session)
	assert.Equal(t, user.ID, result.Session.UserID)
	assert.Nil(t, result.Session.LogoutTime)

	// Each attempt bumps the counter.
	assert.Equal(t, 1, user.LoginAttempt)
	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	user := activeUser()
	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)
	hasher.On("Verify", user.PasswordHash, "wrong").Return(assert.AnError)

	_, err := svc.Login(context.Background(), user.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	user := activeUser()
	user.IsActive = false
	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), user.Email, "password123")
	assert.ErrorIs(t, err, ErrAccountInactive)
	// Inactive accounts are rejected before the password check.
	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnverifiedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	user := activeUser()
	user.IsVerified = false
	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)
	hasher.On("Verify", user.PasswordHash, "password123").Return(nil)

	_, err := svc.Login(context.Background(), user.Email, "password123")
	assert.ErrorIs(t, err, ErrAccountNotVerified)
}

func TestAuthService_LoginThenLogout(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	user := activeUser()
	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)
	hasher.On("Verify", user.PasswordHash, "password123").Return(nil)

	result, err := svc.Login(context.Background(), user.Email, "password123")
	require.NoError(t, err)

	session, err := svc.Logout(context.Background(), result.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, session.LogoutTime)
	assert.GreaterOrEqual(t, session.LogoutTime.Sub(session.LoginTime), time.Duration(0))
}

func TestAuthService_Logout_UnknownSession(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	_, err := svc.Logout(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	userRepo.On("GetUserByEmail", mock.Anything, "eve.adams@example.com").
		Return(nil, apperrors.ErrUserNotFound)
	hasher.On("Hash", "password123").Return("$2a$10$hashed", nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "eve.adams@example.com" && u.PasswordHash == "$2a$10$hashed" && !u.IsVerified
	})).Return(nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Eve Adams",
		Email:    "eve.adams@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	svc := newAuthServiceForTest(userRepo, hasher)

	userRepo.On("GetUserByEmail", mock.Anything, "alice.smith@example.com").
		Return(activeUser(), nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Alice Clone",
		Email:    "alice.smith@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}
