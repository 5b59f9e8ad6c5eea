package cart

import (
	"time"
)

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. 购物车与用户一对一,ID与用户ID相同(注册时同事务创建)
// 2. CartItem是聚合内子实体,只能通过Cart访问
// 3. 同一本书在购物车中至多一行(按BookID合并数量)
type Cart struct {
	ID        uint // 与UserID相同
	UserID    uint
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem 购物车条目
// BookTitle是查询时从图书表带出的冗余展示字段,不落库
type CartItem struct {
	ID        uint
	CartID    uint
	BookID    uint
	BookTitle string
	Quantity  int
}

// FindItemByBookID 按图书ID查找购物车条目
// 返回nil表示该图书不在购物车中
func (c *Cart) FindItemByBookID(bookID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByID 按条目ID查找购物车条目
func (c *Cart) FindItemByID(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty 判断购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
