package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sportmatch/backend/internal/config"
	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  30 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	_, err := svc.Register(&dto.RegisterRequest{Username: "runner", Password: "short"})

	assert.Error(t, err)
	store.AssertNotCalled(t, "CreateUser")
}

func TestRegister_UsernameTaken(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	store.On("FindUserByUsername", "runner").Return(&models.User{ID: 1, Username: "runner"}, nil)

	_, err := svc.Register(&dto.RegisterRequest{Username: "runner", Password: "longenough"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_IssuesTokenPair(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	store.On("FindUserByUsername", "runner").Return(nil, storage.ErrNotFound)
	store.On("CreateUser", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 42
		}).
		Return(nil)
	store.On("CreateRefreshToken", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "runner",
		Password: "longenough",
		Name:     "Ada",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, uint(42), resp.User.ID)

	// Access token must carry the user id as its subject.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	store.On("FindUserByUsername", "runner").Return(&models.User{ID: 1, Username: "runner", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(&dto.LoginRequest{Username: "runner", Password: "wrong-password"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	store.On("FindUserByUsername", "ghost").Return(nil, storage.ErrNotFound)

	_, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_ExpiredTokenRejected(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	store.On("FindRefreshToken", mock.AnythingOfType("string")).Return(&models.RefreshToken{
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	store.On("RevokeRefreshToken", mock.AnythingOfType("string")).Return(nil)

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "stale"})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_TokenIsSingleUse(t *testing.T) {
	store := new(MockStorage)
	svc := NewAuthService(store, testAuthConfig())

	store.On("FindRefreshToken", mock.AnythingOfType("string")).Return(&models.RefreshToken{
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	store.On("RevokeRefreshToken", mock.AnythingOfType("string")).Return(nil)
	store.On("FindUserByID", uint(1)).Return(&models.User{ID: 1, Username: "runner"}, nil)
	store.On("CreateRefreshToken", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	resp, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "valid"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	store.AssertCalled(t, "RevokeRefreshToken", mock.AnythingOfType("string"))
}
