package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuwen/bookmall/internal/domain/cart"
	"github.com/liuwen/bookmall/internal/domain/user"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	apperrors "github.com/liuwen/bookmall/pkg/errors"
	"github.com/liuwen/bookmall/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	m.Run()
}

// =========================================
// 内存假仓储
// =========================================

// fakeTx 直通事务
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *user.User) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ uint) error       { return nil }

// fakeRoleRepo 角色仓储,可模拟角色缺失
type fakeRoleRepo struct {
	roles map[string]*user.Role
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name string) (*user.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, user.ErrRoleNotFound
	}
	return role, nil
}

type fakeCartRepo struct {
	carts map[uint]bool
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uint]bool)}
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uint) (*cart.Cart, error) {
	if !r.carts[userID] {
		return nil, cart.ErrCartNotFound
	}
	return &cart.Cart{ID: userID, UserID: userID}, nil
}

func (r *fakeCartRepo) CreateForUser(_ context.Context, userID uint) error {
	r.carts[userID] = true
	return nil
}

func (r *fakeCartRepo) SaveItem(_ context.Context, _ *cart.CartItem) error { return nil }

func (r *fakeCartRepo) FindItemForUser(_ context.Context, _, _ uint) (*cart.CartItem, error) {
	return nil, cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, _ uint) error { return nil }
func (r *fakeCartRepo) ClearItems(_ context.Context, _ uint) error { return nil }

// =========================================
// 测试辅助
// =========================================

func setupRegisterTest(t *testing.T) (*fakeUserRepo, *fakeCartRepo, *RegisterUseCase) {
	t.Helper()

	userRepo := newFakeUserRepo()
	roleRepo := &fakeRoleRepo{roles: map[string]*user.Role{
		user.RoleUser:  {ID: 1, Name: user.RoleUser},
		user.RoleAdmin: {ID: 2, Name: user.RoleAdmin},
	}}
	cartRepo := newFakeCartRepo()

	userService := user.NewService(userRepo, roleRepo)
	uc := NewRegisterUseCase(userService, cartRepo, fakeTx{}, event.NewPublisher(nil))
	return userRepo, cartRepo, uc
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Email:           "zhangsan@example.com",
		Password:        "passw0rd123",
		FirstName:       "三",
		LastName:        "张",
		ShippingAddress: "北京市海淀区中关村大街1号",
	}
}

// =========================================
// 注册
// =========================================

func TestRegister_ProvisionsEmptyCart(t *testing.T) {
	_, cartRepo, uc := setupRegisterTest(t)

	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.Equal(t, []string{user.RoleUser}, result.Roles)

	// 注册成功的用户必须有购物车
	c, err := cartRepo.FindByUserID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, c.UserID)
}

func TestRegister_PasswordNotReturned(t *testing.T) {
	userRepo, _, uc := setupRegisterTest(t)

	result, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 落库的是bcrypt哈希,不是明文
	stored := userRepo.users[result.ID]
	assert.NotEqual(t, "passw0rd123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, _, uc := setupRegisterTest(t)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, user.ErrEmailDuplicate)
}

func TestRegister_MissingDefaultRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	roleRepo := &fakeRoleRepo{roles: map[string]*user.Role{}} // 角色未播种
	cartRepo := newFakeCartRepo()

	userService := user.NewService(userRepo, roleRepo)
	uc := NewRegisterUseCase(userService, cartRepo, fakeTx{}, event.NewPublisher(nil))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, user.ErrRoleNotFound)
	// 注册失败时不应创建用户和购物车
	assert.Empty(t, userRepo.users)
	assert.Empty(t, cartRepo.carts)
}

func TestRegister_InvalidEmail(t *testing.T) {
	_, _, uc := setupRegisterTest(t)

	req := validRequest()
	req.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestRegister_WeakPassword(t *testing.T) {
	_, _, uc := setupRegisterTest(t)

	cases := []string{
		"short1",                     // 太短
		"allletterspassword",         // 没有数字
		"1234567890",                 // 没有字母
		"toolongpassword12345678901", // 超过20位
	}

	for _, password := range cases {
		req := validRequest()
		req.Password = password

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "password=%s", password)
	}
}
