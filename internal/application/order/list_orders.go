package order

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/order"
)

// ListOrdersUseCase 订单列表查询用例(当前用户,最新在前)
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表查询用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单列表查询请求DTO
type ListOrdersRequest struct {
	UserID   uint
	Page     int
	PageSize int
}

// ListOrdersResponse 订单列表查询响应DTO
type ListOrdersResponse struct {
	List       []OrderDetail `json:"list"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// OrderDetail 订单DTO
// Total序列化为字符串(如"150.98"),避免前端浮点精度问题
type OrderDetail struct {
	ID              uint            `json:"id"`
	OrderNo         string          `json:"order_no"`
	Total           string          `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItemView `json:"items"`
	CreatedAt       string          `json:"created_at"`
}

// OrderItemView 订单明细DTO
type OrderItemView struct {
	ID       uint   `json:"id"`
	BookID   uint   `json:"book_id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`    // 下单时的单价快照
	Subtotal string `json:"subtotal"` // 单价 × 数量
}

// Execute 执行订单列表查询用例
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	orders, total, err := uc.orderRepo.ListByUserID(ctx, req.UserID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderDetail, len(orders))
	for i, o := range orders {
		list[i] = *toOrderDetail(o)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &ListOrdersResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// normalizePage 分页参数默认值与范围限制
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// toOrderDetail 领域实体 → 应用层DTO
func toOrderDetail(o *order.Order) *OrderDetail {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = toOrderItemView(item)
	}

	return &OrderDetail{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		Total:           o.Total.StringFixed(2),
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		CreatedAt:       o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toOrderItemView 明细实体 → DTO
func toOrderItemView(item order.OrderItem) OrderItemView {
	return OrderItemView{
		ID:       item.ID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price.StringFixed(2),
		Subtotal: item.Subtotal().StringFixed(2),
	}
}
