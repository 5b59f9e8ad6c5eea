package event

import (
	"encoding/json"
	"log"
)

// Dispatcher 领域事件分发器
// 设计说明：
// 1. 按routing key把消息体反序列化后分发给对应处理函数
// 2. 处理函数返回错误时向上传递，由消费端Nack重新入队
// 3. 畸形消息和未订阅的routing key记日志后丢弃（重新入队会死循环）
type Dispatcher struct {
	handlers map[string]func(body []byte) error
}

// NewDispatcher 创建事件分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]func(body []byte) error)}
}

// OnUserRegistered 注册用户注册事件处理函数
func (d *Dispatcher) OnUserRegistered(fn func(UserRegisteredEvent) error) {
	d.handlers[RoutingKeyUserRegistered] = func(body []byte) error {
		var event UserRegisteredEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("[ERROR] 解析事件失败 %s: %v", RoutingKeyUserRegistered, err)
			return nil
		}
		return fn(event)
	}
}

// OnOrderCreated 注册订单创建事件处理函数
func (d *Dispatcher) OnOrderCreated(fn func(OrderCreatedEvent) error) {
	d.handlers[RoutingKeyOrderCreated] = func(body []byte) error {
		var event OrderCreatedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("[ERROR] 解析事件失败 %s: %v", RoutingKeyOrderCreated, err)
			return nil
		}
		return fn(event)
	}
}

// RoutingKeys 返回已注册处理函数的routing key列表（用于队列绑定）
func (d *Dispatcher) RoutingKeys() []string {
	keys := make([]string, 0, len(d.handlers))
	for key := range d.handlers {
		keys = append(keys, key)
	}
	return keys
}

// Dispatch 分发一条消息
// 签名与mq.Consumer.Consume的handler一致
func (d *Dispatcher) Dispatch(routingKey string, body []byte) error {
	handler, ok := d.handlers[routingKey]
	if !ok {
		log.Printf("[WARN] 未订阅的routing key: %s, 消息已丢弃", routingKey)
		return nil
	}
	return handler(body)
}
