package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体
// 2. Total价格冗余存储,创建时由明细精确求和得出(decimal运算,无浮点误差)
// 3. ShippingAddress在下单时快照,用户后续修改收货地址不影响历史订单
type Order struct {
	ID              uint
	OrderNo         string // 订单号(业务主键,全局唯一)
	UserID          uint   // 买家用户ID
	Total           decimal.Decimal
	Status          Status
	ShippingAddress string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. Price记录下单时的单价快照,商家改价不影响历史订单金额
// 3. 只保存BookID,不直接关联Book对象(避免跨聚合引用)
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    decimal.Decimal // 下单时的单价快照
}

// Subtotal 明细小计(单价 × 数量)
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder 创建新订单(工厂方法)
// 总金额由明细求和,初始状态为PENDING
func NewOrder(orderNo string, userID uint, shippingAddress string, items []OrderItem) *Order {
	now := time.Now()
	return &Order{
		OrderNo:         orderNo,
		UserID:          userID,
		Total:           CalculateTotal(items),
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CalculateTotal 计算明细总金额
// 从零开始逐项精确累加
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ChangeStatus 变更订单状态
// 转换合法性由传入的TransitionPolicy决定
func (o *Order) ChangeStatus(target Status, policy TransitionPolicy) error {
	if !policy.CanTransition(o.Status, target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
