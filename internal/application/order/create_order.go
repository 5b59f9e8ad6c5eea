package order

import (
	"context"
	"time"

	"github.com/liuwen/bookmall/internal/domain/book"
	"github.com/liuwen/bookmall/internal/domain/cart"
	"github.com/liuwen/bookmall/internal/domain/order"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	"github.com/liuwen/bookmall/pkg/metrics"
)

// Transactor 事务执行器
// 由infrastructure层的TxManager实现,测试时可注入直通的假实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateOrderUseCase 创建订单用例
// 这是整个系统最核心的用例,单个事务内完成:
// 1. 加载购物车(空车拒单,无任何写入)
// 2. 逐条目快照图书当前单价(防改价攻击:金额以数据库价格为准)
// 3. 精确求和生成订单(decimal运算,无浮点误差)
// 4. 清空购物车
// 全部成功或全部回滚
type CreateOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	bookRepo  book.Repository
	tx        Transactor
	events    *event.Publisher
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	bookRepo book.Repository,
	tx Transactor,
	events *event.Publisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		tx:        tx,
		events:    events,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID          uint   // 买家用户ID(从JWT中提取)
	ShippingAddress string // 收货地址(下单时快照)
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	start := time.Now()

	if req.ShippingAddress == "" {
		return nil, order.ErrInvalidShippingAddress
	}

	var result *order.Order
	err := uc.tx.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 加载购物车
		c, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}

		// 2. 空车拒单,此时事务内没有任何写入
		if c.IsEmpty() {
			return order.ErrEmptyCart
		}

		// 3. 快照每个条目的图书当前单价
		// 图书在加购后被下架时,下单失败(软删除对查询不可见)
		orderItems := make([]order.OrderItem, len(c.Items))
		for i, item := range c.Items {
			b, err := uc.bookRepo.FindByID(txCtx, item.BookID)
			if err != nil {
				return err
			}
			orderItems[i] = order.OrderItem{
				BookID:   item.BookID,
				Quantity: item.Quantity,
				Price:    b.Price,
			}
		}

		// 4. 创建订单(总金额由明细精确求和)
		newOrder := order.NewOrder(order.GenerateOrderNo(), req.UserID, req.ShippingAddress, orderItems)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 5. 清空购物车(与订单创建同一事务,原子完成)
		if err := uc.cartRepo.ClearItems(txCtx, c.ID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}
	metrics.OrdersCreatedTotal.Inc()

	// 事务提交后尽力而为地发布事件,失败不影响下单结果
	uc.events.PublishOrderCreated(event.OrderCreatedEvent{
		OrderID:    result.ID,
		OrderNo:    result.OrderNo,
		UserID:     result.UserID,
		Total:      result.Total.StringFixed(2),
		ItemCount:  len(result.Items),
		OccurredAt: time.Now(),
	})

	return toOrderDetail(result), nil
}
