package cart

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/book"
	"github.com/liuwen/bookmall/internal/domain/cart"
)

// AddItemUseCase 加入购物车用例
// 设计说明:
// 1. 同一本书(按BookID)在购物车中至多一行:已存在则累加数量
// 2. 图书不存在或已下架时返回NotFound
// 3. 返回合并后的完整购物车快照
type AddItemUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(cartRepo cart.Repository, bookRepo book.Repository) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// AddItemRequest 加购请求DTO
type AddItemRequest struct {
	UserID   uint
	BookID   uint
	Quantity int
}

// Execute 执行加购用例
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*CartSnapshot, error) {
	// 1. 数量校验
	if req.Quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}

	// 2. 图书必须存在(软删除的图书对加购不可见)
	if _, err := uc.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 3. 加载购物车(注册时已创建,不存在属于异常)
	c, err := uc.cartRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. 合并或新增条目
	if existing := c.FindItemByBookID(req.BookID); existing != nil {
		existing.Quantity += req.Quantity
		if err := uc.cartRepo.SaveItem(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		item := &cart.CartItem{
			CartID:   c.ID,
			BookID:   req.BookID,
			Quantity: req.Quantity,
		}
		if err := uc.cartRepo.SaveItem(ctx, item); err != nil {
			return nil, err
		}
	}

	// 5. 重新加载,返回合并后的快照(带图书标题)
	c, err = uc.cartRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return toCartSnapshot(c), nil
}
