package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuwen/bookmall/internal/domain/user"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	apperrors "github.com/liuwen/bookmall/pkg/errors"
	"github.com/liuwen/bookmall/pkg/jwt"
)

// fakeSessionStore 内存会话存储
type fakeSessionStore struct {
	sessions  map[uint]map[string]string
	blacklist map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions:  make(map[uint]map[string]string),
		blacklist: make(map[string]bool),
	}
}

func (s *fakeSessionStore) SaveSession(_ context.Context, userID uint, sessionData map[string]interface{}, _ time.Duration) error {
	session := make(map[string]string, len(sessionData))
	for k := range sessionData {
		session[k] = ""
	}
	s.sessions[userID] = session
	return nil
}

func (s *fakeSessionStore) GetSession(_ context.Context, userID uint) (map[string]string, error) {
	session, ok := s.sessions[userID]
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}

func (s *fakeSessionStore) DeleteSession(_ context.Context, userID uint) error {
	delete(s.sessions, userID)
	return nil
}

func (s *fakeSessionStore) AddToBlacklist(_ context.Context, token string, _ time.Duration) error {
	s.blacklist[token] = true
	return nil
}

// =========================================
// 测试辅助
// =========================================

type loginTestEnv struct {
	sessionStore *fakeSessionStore
	jwtManager   *jwt.Manager
	loginUC      *LoginUseCase
	logoutUC     *LogoutUseCase
	refreshUC    *RefreshTokenUseCase
}

// setupLoginTest 组装登录链路并注册一个可登录的用户
func setupLoginTest(t *testing.T) *loginTestEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	roleRepo := &fakeRoleRepo{roles: map[string]*user.Role{
		user.RoleUser: {ID: 1, Name: user.RoleUser},
	}}
	userService := user.NewService(userRepo, roleRepo)

	registerUC := NewRegisterUseCase(userService, newFakeCartRepo(), fakeTx{}, event.NewPublisher(nil))
	_, err := registerUC.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	sessionStore := newFakeSessionStore()
	jwtManager := jwt.NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	return &loginTestEnv{
		sessionStore: sessionStore,
		jwtManager:   jwtManager,
		loginUC:      NewLoginUseCase(userService, jwtManager, sessionStore),
		logoutUC:     NewLogoutUseCase(sessionStore),
		refreshUC:    NewRefreshTokenUseCase(jwtManager, sessionStore),
	}
}

func (env *loginTestEnv) login(t *testing.T) *LoginResponse {
	t.Helper()

	resp, err := env.loginUC.Execute(context.Background(), LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "passw0rd123",
	})
	require.NoError(t, err)
	return resp
}

// =========================================
// 登录
// =========================================

func TestLogin_SavesSession(t *testing.T) {
	env := setupLoginTest(t)

	resp := env.login(t)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Contains(t, resp.User.Roles, user.RoleUser)

	// 登录成功后会话已保存
	_, err := env.sessionStore.GetSession(context.Background(), resp.User.ID)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupLoginTest(t)

	_, err := env.loginUC.Execute(context.Background(), LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "wrongpass1",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

// =========================================
// 刷新Token
// =========================================

func TestRefreshToken_WithLiveSession(t *testing.T) {
	env := setupLoginTest(t)
	resp := env.login(t)

	accessToken, err := env.refreshUC.Execute(context.Background(), resp.RefreshToken)

	require.NoError(t, err)
	claims, err := env.jwtManager.ParseToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRefreshToken_AfterLogoutRejected(t *testing.T) {
	env := setupLoginTest(t)
	resp := env.login(t)

	require.NoError(t, env.logoutUC.Execute(context.Background(), resp.User.ID, resp.AccessToken))

	// 登出删除会话:Refresh Token未过期也无法继续刷新
	_, err := env.refreshUC.Execute(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// Access Token同时进入黑名单
	assert.True(t, env.sessionStore.blacklist[resp.AccessToken])
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	env := setupLoginTest(t)
	env.login(t)

	_, err := env.refreshUC.Execute(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
