package order

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/order"
)

// ListOrderItemsUseCase 订单明细列表查询用例
// 归属校验:非本人且非管理员访问时,订单视为不存在
type ListOrderItemsUseCase struct {
	orderRepo order.Repository
}

// NewListOrderItemsUseCase 创建明细列表查询用例
func NewListOrderItemsUseCase(orderRepo order.Repository) *ListOrderItemsUseCase {
	return &ListOrderItemsUseCase{orderRepo: orderRepo}
}

// ListOrderItemsRequest 明细列表查询请求DTO
type ListOrderItemsRequest struct {
	UserID   uint // 当前用户
	Admin    bool // 管理员可查看任意订单
	OrderID  uint
	Page     int
	PageSize int
}

// ListOrderItemsResponse 明细列表查询响应DTO
type ListOrderItemsResponse struct {
	List       []OrderItemView `json:"list"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// Execute 执行明细列表查询用例
func (uc *ListOrderItemsUseCase) Execute(ctx context.Context, req ListOrderItemsRequest) (*ListOrderItemsResponse, error) {
	if err := uc.checkOwnership(ctx, req.OrderID, req.UserID, req.Admin); err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)

	items, total, err := uc.orderRepo.ListItems(ctx, req.OrderID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderItemView, len(items))
	for i, item := range items {
		list[i] = toOrderItemView(*item)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &ListOrderItemsResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// checkOwnership 订单归属校验
// 不泄露他人订单的存在性:越权访问与不存在返回同一错误
func (uc *ListOrderItemsUseCase) checkOwnership(ctx context.Context, orderID, userID uint, admin bool) error {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !admin && !o.IsOwnedBy(userID) {
		return order.ErrOrderNotFound
	}
	return nil
}

// GetOrderItemUseCase 订单内单条明细查询用例
type GetOrderItemUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderItemUseCase 创建单条明细查询用例
func NewGetOrderItemUseCase(orderRepo order.Repository) *GetOrderItemUseCase {
	return &GetOrderItemUseCase{orderRepo: orderRepo}
}

// GetOrderItemRequest 单条明细查询请求DTO
type GetOrderItemRequest struct {
	UserID  uint
	Admin   bool
	OrderID uint
	ItemID  uint
}

// Execute 执行单条明细查询用例
// 明细按(itemID, orderID)查询,跨订单访问返回NotFound
func (uc *GetOrderItemUseCase) Execute(ctx context.Context, req GetOrderItemRequest) (*OrderItemView, error) {
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !req.Admin && !o.IsOwnedBy(req.UserID) {
		return nil, order.ErrOrderNotFound
	}

	item, err := uc.orderRepo.FindItem(ctx, req.OrderID, req.ItemID)
	if err != nil {
		return nil, err
	}

	view := toOrderItemView(*item)
	return &view, nil
}
