package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger 请求日志中间件
// 设计说明：
// 1. 每个请求分配一个request_id，写入响应Header便于排查
// 2. 记录方法、路径、状态码、耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)
		log.Printf("[GIN] %s | %3d | %13v | %s %s",
			requestID[:8],
			c.Writer.Status(),
			latency,
			c.Request.Method,
			path,
		)
	}
}
