package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	identityapp "github.com/bankcore/backend/internal/application/identity"
	"github.com/bankcore/backend/internal/domain/identity"
	"github.com/bankcore/backend/internal/infrastructure/auth"
	"github.com/bankcore/backend/internal/infrastructure/config"
	"github.com/bankcore/backend/internal/interfaces/http/dto"
	"github.com/bankcore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository implements identity.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// Test setup helpers

func newTestJWTServiceForAuth() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-32-characters",
		RefreshSecret:          "test-refresh-secret-32-character",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 168 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
}

type authTestEnv struct {
	userRepo   *MockUserRepository
	jwtService *auth.JWTService
	blacklist  *auth.InMemoryTokenBlacklist
	handler    *AuthHandler
}

func setupAuthEnv() *authTestEnv {
	userRepo := new(MockUserRepository)
	jwtService := newTestJWTServiceForAuth()
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, zap.NewNop())
	return &authTestEnv{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		handler:    NewAuthHandler(authService),
	}
}

func setupAuthRoutes(env *authTestEnv) *gin.Engine {
	router := gin.New()
	router.POST("/auth/login", env.handler.Login)
	router.POST("/auth/refresh", env.handler.RefreshToken)
	router.POST("/auth/logout", env.handler.Logout)
	router.GET("/auth/me", env.handler.GetCurrentUser)
	return router
}

func createTestUser(t *testing.T, username, password string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, password, role)
	require.NoError(t, err)
	return user
}

// Tests

func TestAuthHandler_Login_Success(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	user := createTestUser(t, "teller1", "s3cret-pass", identity.RoleTeller)
	env.userRepo.On("FindByUsername", mock.Anything, "teller1").Return(user, nil)
	env.userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		identityapp.LoginInput{Username: "teller1", Password: "s3cret-pass"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data identityapp.LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Equal(t, "teller1", resp.Data.User.Username)
	assert.Equal(t, string(identity.RoleTeller), resp.Data.User.Role)

	// The issued access token must carry the user's role
	claims, err := env.jwtService.ValidateAccessToken(resp.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(identity.RoleTeller), claims.Role)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	user := createTestUser(t, "teller1", "s3cret-pass", identity.RoleTeller)
	env.userRepo.On("FindByUsername", mock.Anything, "teller1").Return(user, nil)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		identityapp.LoginInput{Username: "teller1", Password: "wrong-password"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	env.userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, assert.AnError)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		identityapp.LoginInput{Username: "ghost", Password: "whatever-pass"})

	// Unknown user and wrong password are indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
}

func TestAuthHandler_Login_DeactivatedAccount(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	user := createTestUser(t, "teller1", "s3cret-pass", identity.RoleTeller)
	require.NoError(t, user.Deactivate())
	env.userRepo.On("FindByUsername", mock.Anything, "teller1").Return(user, nil)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		identityapp.LoginInput{Username: "teller1", Password: "s3cret-pass"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeAccountDeactivated, resp.Error.Code)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	w := doJSON(t, router, http.MethodPost, "/auth/login",
		identityapp.LoginInput{Username: "x", Password: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	user := createTestUser(t, "manager1", "s3cret-pass", identity.RoleManager)
	pair, err := env.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	require.NoError(t, err)

	env.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	w := doJSON(t, router, http.MethodPost, "/auth/refresh",
		identityapp.RefreshTokenInput{RefreshToken: pair.RefreshToken})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data identityapp.RefreshTokenResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
	assert.NotEqual(t, pair.RefreshToken, resp.Data.RefreshToken)
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	w := doJSON(t, router, http.MethodPost, "/auth/refresh",
		identityapp.RefreshTokenInput{RefreshToken: "not-a-real-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthHandler_RefreshToken_AccessTokenRejected(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	user := createTestUser(t, "teller1", "s3cret-pass", identity.RoleTeller)
	pair, err := env.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/auth/refresh",
		identityapp.RefreshTokenInput{RefreshToken: pair.AccessToken})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_BlacklistsToken(t *testing.T) {
	env := setupAuthEnv()

	user := createTestUser(t, "teller1", "s3cret-pass", identity.RoleTeller)
	pair, err := env.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	require.NoError(t, err)

	claims, err := env.jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, claims)
		c.Next()
	})
	router.POST("/auth/logout", env.handler.Logout)

	w := doJSON(t, router, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	blacklisted, err := env.blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	w := doJSON(t, router, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser_Success(t *testing.T) {
	env := setupAuthEnv()

	user := createTestUser(t, "manager1", "s3cret-pass", identity.RoleManager)
	pair, err := env.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	require.NoError(t, err)

	claims, err := env.jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	env.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, claims)
		c.Next()
	})
	router.GET("/auth/me", env.handler.GetCurrentUser)

	w := doJSON(t, router, http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data identityapp.CurrentUserResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manager1", resp.Data.User.Username)
	assert.Equal(t, string(identity.RoleManager), resp.Data.User.Role)
}

func TestAuthHandler_GetCurrentUser_Unauthenticated(t *testing.T) {
	env := setupAuthEnv()
	router := setupAuthRoutes(env)

	w := doJSON(t, router, http.MethodGet, "/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
