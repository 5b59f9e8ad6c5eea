package user

import (
	"context"
	"time"

	"github.com/liuwen/bookmall/internal/domain/cart"
	"github.com/liuwen/bookmall/internal/domain/user"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	"github.com/liuwen/bookmall/pkg/metrics"
)

// Transactor 事务执行器
// 由infrastructure层的TxManager实现,测试时可注入直通的假实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterUseCase 用户注册用例
// 设计说明:
// 1. 注册与购物车创建在同一事务内完成:
//    注册成功的用户一定有购物车,不存在"注册了但没有购物车"的窗口
// 2. 购物车创建幂等(主键=用户ID),重试安全
// 3. 事务提交后尽力而为地发布user.registered事件
type RegisterUseCase struct {
	userService user.Service
	cartRepo    cart.Repository
	tx          Transactor
	events      *event.Publisher
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(
	userService user.Service,
	cartRepo cart.Repository,
	tx Transactor,
	events *event.Publisher,
) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		cartRepo:    cartRepo,
		tx:          tx,
		events:      events,
	}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	ShippingAddress string
}

// RegisterResponse 注册响应DTO
// 不返回密码字段
type RegisterResponse struct {
	ID              uint     `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	ShippingAddress string   `json:"shipping_address"`
	Roles           []string `json:"roles"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var registered *user.User

	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 领域服务完成校验、加密、角色分配和落库
		u, err := uc.userService.Register(txCtx, req.Email, req.Password, req.FirstName, req.LastName, req.ShippingAddress)
		if err != nil {
			return err
		}

		// 2. 同事务内创建空购物车
		if err := uc.cartRepo.CreateForUser(txCtx, u.ID); err != nil {
			return err
		}

		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()

	// 事件发布失败只记日志,不影响注册结果
	uc.events.PublishUserRegistered(event.UserRegisteredEvent{
		UserID:     registered.ID,
		Email:      registered.Email,
		OccurredAt: time.Now(),
	})

	return &RegisterResponse{
		ID:              registered.ID,
		Email:           registered.Email,
		FirstName:       registered.FirstName,
		LastName:        registered.LastName,
		ShippingAddress: registered.ShippingAddress,
		Roles:           registered.Roles,
	}, nil
}
