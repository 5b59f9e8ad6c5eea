package cart

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/cart"
)

// RemoveItemUseCase 删除购物车条目用例(物理删除)
type RemoveItemUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveItemUseCase 创建删除条目用例
func NewRemoveItemUseCase(cartRepo cart.Repository) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo}
}

// RemoveItemRequest 删除条目请求DTO
type RemoveItemRequest struct {
	UserID uint
	ItemID uint
}

// Execute 执行删除条目用例
// 条目不属于当前用户时返回NotFound
// 成功时返回删除后的购物车快照,客户端无需再查一次购物车
func (uc *RemoveItemUseCase) Execute(ctx context.Context, req RemoveItemRequest) (*CartSnapshot, error) {
	item, err := uc.cartRepo.FindItemForUser(ctx, req.ItemID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}

	c, err := uc.cartRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return toCartSnapshot(c), nil
}
