package cart

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/cart"
)

// GetCartUseCase 购物车查询用例
type GetCartUseCase struct {
	cartRepo cart.Repository
}

// NewGetCartUseCase 创建购物车查询用例
func NewGetCartUseCase(cartRepo cart.Repository) *GetCartUseCase {
	return &GetCartUseCase{cartRepo: cartRepo}
}

// CartSnapshot 购物车快照DTO
type CartSnapshot struct {
	ID     uint           `json:"id"`
	UserID uint           `json:"user_id"`
	Items  []CartItemView `json:"items"`
}

// CartItemView 购物车条目DTO
type CartItemView struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
}

// Execute 执行购物车查询用例
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*CartSnapshot, error) {
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toCartSnapshot(c), nil
}

// toCartSnapshot 领域实体 → 应用层DTO
func toCartSnapshot(c *cart.Cart) *CartSnapshot {
	items := make([]CartItemView, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemView{
			ID:        item.ID,
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
		}
	}

	return &CartSnapshot{
		ID:     c.ID,
		UserID: c.UserID,
		Items:  items,
	}
}
