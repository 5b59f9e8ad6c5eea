package order

import (
	apperrors "github.com/liuwen/bookmall/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrOrderItemNotFound 订单明细不存在
	// 明细不属于指定订单时同样返回此错误
	ErrOrderItemNotFound = apperrors.New(apperrors.ErrCodeNotFound, "订单明细不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeBusinessError, "订单状态不允许此操作")

	// ErrEmptyCart 购物车为空,无法下单
	// 注意:这是业务处理错误(40010),不是资源不存在错误
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeOrderProcessing, "购物车为空,无法创建订单")

	// ErrInvalidShippingAddress 收货地址不能为空
	ErrInvalidShippingAddress = apperrors.New(apperrors.ErrCodeInvalidParams, "收货地址不能为空")
)
