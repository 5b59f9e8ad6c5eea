package order

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/order"
)

// UpdateStatusUseCase 订单状态变更用例(管理员)
// 转换合法性由注入的TransitionPolicy决定:
// 默认PermissivePolicy允许任意覆盖,需要严格流转时换成SequentialPolicy
type UpdateStatusUseCase struct {
	orderRepo order.Repository
	policy    order.TransitionPolicy
}

// NewUpdateStatusUseCase 创建状态变更用例
func NewUpdateStatusUseCase(orderRepo order.Repository, policy order.TransitionPolicy) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		policy:    policy,
	}
}

// UpdateStatusRequest 状态变更请求DTO
type UpdateStatusRequest struct {
	OrderID uint
	Status  string
}

// Execute 执行状态变更用例
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if err := o.ChangeStatus(order.Status(req.Status), uc.policy); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.UpdateStatus(ctx, o.ID, o.Status); err != nil {
		return nil, err
	}

	return toOrderDetail(o), nil
}
