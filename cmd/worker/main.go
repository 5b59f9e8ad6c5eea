package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/liuwen/bookmall/internal/infrastructure/config"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	"github.com/liuwen/bookmall/pkg/mq"
)

// main 通知Worker入口
// 订阅user.registered和order.created事件，发送通知（当前为日志输出，
// 接入邮件/短信网关时替换Dispatcher中的处理函数即可）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	if !cfg.MQ.Enabled {
		log.Fatal("MQ未启用，Worker无法启动（设置mq.enabled: true）")
	}

	// 2. 注册事件处理函数
	dispatcher := event.NewDispatcher()
	dispatcher.OnUserRegistered(func(e event.UserRegisteredEvent) error {
		log.Printf("[通知] 欢迎新用户 user_id=%d email=%s", e.UserID, e.Email)
		return nil
	})
	dispatcher.OnOrderCreated(func(e event.OrderCreatedEvent) error {
		log.Printf("[通知] 新订单 order_no=%s user_id=%d total=%s items=%d",
			e.OrderNo, e.UserID, e.Total, e.ItemCount)
		return nil
	})

	// 3. 创建消费者（队列绑定已注册的routing key）
	consumer, err := mq.NewConsumer(
		cfg.MQ.URL,
		cfg.MQ.Exchange,
		"topic",
		"bookmall.notifications",
		dispatcher.RoutingKeys(),
	)
	if err != nil {
		log.Fatalf("创建消费者失败: %v", err)
	}
	defer consumer.Close()

	// 4. 消费直到收到退出信号
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("通知Worker已启动: Exchange=%s\n", cfg.MQ.Exchange)

	if err := consumer.Consume(ctx, dispatcher.Dispatch); err != nil {
		log.Fatalf("消费消息失败: %v", err)
	}

	fmt.Println("通知Worker已退出")
}
