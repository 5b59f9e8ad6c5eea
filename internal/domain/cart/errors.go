package cart

import (
	apperrors "github.com/liuwen/bookmall/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")

	// ErrCartItemNotFound 购物车条目不存在
	// 跨用户访问他人条目时同样返回此错误(不泄露条目是否存在)
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeNotFound, "购物车条目不存在")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
