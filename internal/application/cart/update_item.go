package cart

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/cart"
)

// UpdateItemUseCase 修改购物车条目数量用例
// 数量是覆盖语义,不是累加
type UpdateItemUseCase struct {
	cartRepo cart.Repository
}

// NewUpdateItemUseCase 创建修改数量用例
func NewUpdateItemUseCase(cartRepo cart.Repository) *UpdateItemUseCase {
	return &UpdateItemUseCase{cartRepo: cartRepo}
}

// UpdateItemRequest 修改数量请求DTO
type UpdateItemRequest struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// Execute 执行修改数量用例
// 条目不属于当前用户时返回NotFound(不暴露他人条目的存在性)
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) (*CartSnapshot, error) {
	if req.Quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}

	// 归属校验:按(条目ID, 用户)查询,跨用户访问等同于不存在
	item, err := uc.cartRepo.FindItemForUser(ctx, req.ItemID, req.UserID)
	if err != nil {
		return nil, err
	}

	item.Quantity = req.Quantity
	if err := uc.cartRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	c, err := uc.cartRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return toCartSnapshot(c), nil
}
