package order

// Status 订单状态
// 设计说明:
// 1. 使用string类型直接持久化状态名,便于排查问题和扩展新状态
// 2. 状态集合开放:常量只覆盖内置流转,允许运营侧引入新状态
type Status string

const (
	StatusPending   Status = "PENDING"   // 待处理(下单后的初始状态)
	StatusDelivered Status = "DELIVERED" // 已发货
	StatusCompleted Status = "COMPLETED" // 已完成
	StatusCancelled Status = "CANCELLED" // 已取消
)

// TransitionPolicy 状态转换策略
// 状态变更的合法性判断从实体中抽离,便于按业务需要替换:
// 管理后台直接改单用PermissivePolicy,未来接入履约系统时可换成严格状态机
type TransitionPolicy interface {
	CanTransition(from, to Status) bool
}

// PermissivePolicy 宽松策略:允许任意状态覆盖(默认)
// 管理员可以直接把订单改成任何状态,包括回退
type PermissivePolicy struct{}

func (PermissivePolicy) CanTransition(from, to Status) bool {
	return true
}

// SequentialPolicy 顺序策略:只允许沿内置流转方向推进
// PENDING → DELIVERED → COMPLETED,任意非终态可取消
type SequentialPolicy struct{}

func (SequentialPolicy) CanTransition(from, to Status) bool {
	transitions := map[Status][]Status{
		StatusPending:   {StatusDelivered, StatusCancelled},
		StatusDelivered: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
