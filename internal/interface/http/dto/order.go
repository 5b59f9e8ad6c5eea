package dto

// CreateOrderRequest 下单请求
// 购物车内容即订单内容,请求体只需收货地址
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=255"`
}

// UpdateOrderStatusRequest 订单状态变更请求(管理员)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=32"`
}
