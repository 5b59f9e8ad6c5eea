package event

import (
	"log"
	"time"

	"github.com/liuwen/bookmall/pkg/metrics"
	"github.com/liuwen/bookmall/pkg/mq"
)

// 路由键定义
const (
	RoutingKeyUserRegistered = "user.registered"
	RoutingKeyOrderCreated   = "order.created"
)

// UserRegisteredEvent 用户注册事件
type UserRegisteredEvent struct {
	UserID     uint      `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID    uint      `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     uint      `json:"user_id"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher 领域事件发布器
// 设计说明：
// 1. 封装pkg/mq的Publisher，统一序列化和埋点
// 2. publisher为nil时所有方法为空操作（MQ未启用或连接失败时降级）
// 3. 事件发布是尽力而为的：失败只记日志，不影响主流程
type Publisher struct {
	publisher *mq.Publisher
}

// NewPublisher 创建事件发布器
// mqPublisher可以为nil，此时发布退化为空操作
func NewPublisher(mqPublisher *mq.Publisher) *Publisher {
	return &Publisher{publisher: mqPublisher}
}

// PublishUserRegistered 发布用户注册事件
func (p *Publisher) PublishUserRegistered(event UserRegisteredEvent) {
	p.publish(RoutingKeyUserRegistered, event)
}

// PublishOrderCreated 发布订单创建事件
func (p *Publisher) PublishOrderCreated(event OrderCreatedEvent) {
	p.publish(RoutingKeyOrderCreated, event)
}

// publish 发布事件，失败只记日志
func (p *Publisher) publish(routingKey string, event interface{}) {
	if p == nil || p.publisher == nil {
		return
	}

	if err := p.publisher.Publish(routingKey, event); err != nil {
		log.Printf("[ERROR] 发布事件失败 %s: %v", routingKey, err)
		metrics.MessagesPublishedTotal.WithLabelValues(routingKey, "failure").Inc()
		return
	}

	metrics.MessagesPublishedTotal.WithLabelValues(routingKey, "success").Inc()
}
