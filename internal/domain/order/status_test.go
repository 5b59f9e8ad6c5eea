package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissivePolicy_AllowsAnyTransition(t *testing.T) {
	policy := PermissivePolicy{}

	assert.True(t, policy.CanTransition(StatusPending, StatusCompleted))
	assert.True(t, policy.CanTransition(StatusCompleted, StatusPending))
	assert.True(t, policy.CanTransition(StatusCancelled, StatusDelivered))
	// 未知状态同样允许(状态集合开放)
	assert.True(t, policy.CanTransition(StatusPending, Status("REFUNDED")))
}

func TestSequentialPolicy(t *testing.T) {
	policy := SequentialPolicy{}

	assert.True(t, policy.CanTransition(StatusPending, StatusDelivered))
	assert.True(t, policy.CanTransition(StatusDelivered, StatusCompleted))
	assert.True(t, policy.CanTransition(StatusPending, StatusCancelled))

	assert.False(t, policy.CanTransition(StatusCompleted, StatusPending))
	assert.False(t, policy.CanTransition(StatusCancelled, StatusDelivered))
	assert.False(t, policy.CanTransition(Status("REFUNDED"), StatusPending))
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := NewOrder("ORD1", 1, "北京市海淀区", nil)
	require.Equal(t, StatusPending, o.Status)

	// 宽松策略允许直接覆盖
	err := o.ChangeStatus(StatusCompleted, PermissivePolicy{})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)

	// 顺序策略拒绝从终态回退
	err = o.ChangeStatus(StatusPending, SequentialPolicy{})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, StatusCompleted, o.Status)
}

func TestCalculateTotal_ExactDecimalSum(t *testing.T) {
	items := []OrderItem{
		{BookID: 1, Quantity: 3, Price: decimal.RequireFromString("19.99")},
		{BookID: 2, Quantity: 1, Price: decimal.RequireFromString("0.01")},
		{BookID: 3, Quantity: 2, Price: decimal.RequireFromString("45.50")},
	}

	total := CalculateTotal(items)
	// 3×19.99 + 0.01 + 2×45.50 = 150.98,精确无浮点误差
	assert.Equal(t, "150.98", total.StringFixed(2))
}

func TestCalculateTotal_Empty(t *testing.T) {
	assert.True(t, CalculateTotal(nil).IsZero())
}
