package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// FindByUserID 查询用户的购物车(含条目,条目带图书标题)
	// 不存在时返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// CreateForUser 为用户创建空购物车
	// 幂等:购物车已存在时不报错(ID与用户ID相同)
	CreateForUser(ctx context.Context, userID uint) error

	// SaveItem 保存购物车条目
	// ID为0时新增,否则更新数量
	SaveItem(ctx context.Context, item *CartItem) error

	// FindItemForUser 按条目ID查询,并校验归属
	// 条目不存在或不属于该用户时返回ErrCartItemNotFound
	FindItemForUser(ctx context.Context, itemID, userID uint) (*CartItem, error)

	// DeleteItem 删除购物车条目(物理删除)
	DeleteItem(ctx context.Context, itemID uint) error

	// ClearItems 清空购物车的所有条目
	// 下单成功后在同一事务中调用
	ClearItems(ctx context.Context, cartID uint) error
}
