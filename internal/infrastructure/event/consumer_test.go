package event

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_UserRegistered(t *testing.T) {
	d := NewDispatcher()

	var received UserRegisteredEvent
	d.OnUserRegistered(func(e UserRegisteredEvent) error {
		received = e
		return nil
	})

	body, err := json.Marshal(UserRegisteredEvent{
		UserID:     42,
		Email:      "zhangsan@example.com",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, d.Dispatch(RoutingKeyUserRegistered, body))
	assert.Equal(t, uint(42), received.UserID)
	assert.Equal(t, "zhangsan@example.com", received.Email)
}

func TestDispatcher_OrderCreated(t *testing.T) {
	d := NewDispatcher()

	var received OrderCreatedEvent
	d.OnOrderCreated(func(e OrderCreatedEvent) error {
		received = e
		return nil
	})

	body, err := json.Marshal(OrderCreatedEvent{
		OrderID:   7,
		OrderNo:   "ORD1699248000123456",
		UserID:    42,
		Total:     "150.98",
		ItemCount: 3,
	})
	require.NoError(t, err)

	require.NoError(t, d.Dispatch(RoutingKeyOrderCreated, body))
	assert.Equal(t, "ORD1699248000123456", received.OrderNo)
	assert.Equal(t, "150.98", received.Total)
}

func TestDispatcher_HandlerErrorPropagates(t *testing.T) {
	d := NewDispatcher()

	wantErr := errors.New("下游通知服务不可用")
	d.OnUserRegistered(func(_ UserRegisteredEvent) error {
		return wantErr
	})

	// 错误向上传递，消费端据此Nack重新入队
	err := d.Dispatch(RoutingKeyUserRegistered, []byte(`{"user_id":1}`))
	assert.ErrorIs(t, err, wantErr)
}

func TestDispatcher_UnknownRoutingKeyDropped(t *testing.T) {
	d := NewDispatcher()
	d.OnUserRegistered(func(_ UserRegisteredEvent) error {
		t.Fatal("不应被调用")
		return nil
	})

	assert.NoError(t, d.Dispatch("user.deleted", []byte(`{}`)))
}

func TestDispatcher_MalformedBodyDropped(t *testing.T) {
	d := NewDispatcher()

	called := false
	d.OnOrderCreated(func(_ OrderCreatedEvent) error {
		called = true
		return nil
	})

	// 畸形消息丢弃而非重新入队，避免死循环
	assert.NoError(t, d.Dispatch(RoutingKeyOrderCreated, []byte("not-json")))
	assert.False(t, called)
}

func TestDispatcher_RoutingKeys(t *testing.T) {
	d := NewDispatcher()
	d.OnUserRegistered(func(_ UserRegisteredEvent) error { return nil })
	d.OnOrderCreated(func(_ OrderCreatedEvent) error { return nil })

	assert.ElementsMatch(t,
		[]string{RoutingKeyUserRegistered, RoutingKeyOrderCreated},
		d.RoutingKeys(),
	)
}
