package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/liuwen/bookmall/internal/application/order"
	"github.com/liuwen/bookmall/internal/interface/http/dto"
	"github.com/liuwen/bookmall/internal/interface/http/middleware"
	"github.com/liuwen/bookmall/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createUseCase       *apporder.CreateOrderUseCase
	listUseCase         *apporder.ListOrdersUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	listItemsUseCase    *apporder.ListOrderItemsUseCase
	getItemUseCase      *apporder.GetOrderItemUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	listItemsUseCase *apporder.ListOrderItemsUseCase,
	getItemUseCase *apporder.GetOrderItemUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		listItemsUseCase:    listItemsUseCase,
		getItemUseCase:      getItemUseCase,
	}
}

// CreateOrder 从购物车创建订单
// POST /api/v1/orders
// 订单内容取自当前用户的购物车,请求体只携带收货地址;
// 购物车为空时返回40010业务错误,且不产生任何写入
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrders 当前用户的订单列表(最新在前)
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		UserID:   userID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// UpdateOrderStatus 订单状态变更(管理员)
// PATCH /api/v1/orders/:id
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), apporder.UpdateStatusRequest{
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOrderItems 订单明细列表
// GET /api/v1/orders/:id/items
func (h *OrderHandler) ListOrderItems(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listItemsUseCase.Execute(c.Request.Context(), apporder.ListOrderItemsRequest{
		UserID:   middleware.MustGetUserID(c),
		Admin:    middleware.IsAdmin(c),
		OrderID:  orderID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// GetOrderItem 订单内单条明细
// GET /api/v1/orders/:id/items/:itemId
func (h *OrderHandler) GetOrderItem(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	result, err := h.getItemUseCase.Execute(c.Request.Context(), apporder.GetOrderItemRequest{
		UserID:  middleware.MustGetUserID(c),
		Admin:   middleware.IsAdmin(c),
		OrderID: orderID,
		ItemID:  itemID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
