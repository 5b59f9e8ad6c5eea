package order

import (
	"context"
)

// Repository 订单仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 支持事务操作(通过context传递事务)
type Repository interface {
	// Create 创建订单(含明细,级联保存)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(含明细)
	// 不存在时返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// ListByUserID 分页查询用户的订单列表(按创建时间倒序)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)

	// UpdateStatus 更新订单状态
	// 订单不存在时返回ErrOrderNotFound
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// ListItems 分页查询订单明细
	ListItems(ctx context.Context, orderID uint, page, pageSize int) ([]*OrderItem, int64, error)

	// FindItem 查询订单范围内的单条明细
	// 明细不存在或不属于该订单时返回ErrOrderItemNotFound
	FindItem(ctx context.Context, orderID, itemID uint) (*OrderItem, error)
}
