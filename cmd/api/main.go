package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appbook "github.com/liuwen/bookmall/internal/application/book"
	appcart "github.com/liuwen/bookmall/internal/application/cart"
	appcategory "github.com/liuwen/bookmall/internal/application/category"
	apporder "github.com/liuwen/bookmall/internal/application/order"
	appuser "github.com/liuwen/bookmall/internal/application/user"
	"github.com/liuwen/bookmall/internal/domain/book"
	"github.com/liuwen/bookmall/internal/domain/order"
	"github.com/liuwen/bookmall/internal/domain/user"
	"github.com/liuwen/bookmall/internal/infrastructure/config"
	"github.com/liuwen/bookmall/internal/infrastructure/event"
	"github.com/liuwen/bookmall/internal/infrastructure/persistence/mysql"
	"github.com/liuwen/bookmall/internal/infrastructure/persistence/redis"
	"github.com/liuwen/bookmall/internal/interface/http/handler"
	"github.com/liuwen/bookmall/internal/interface/http/middleware"
	"github.com/liuwen/bookmall/pkg/jwt"
	"github.com/liuwen/bookmall/pkg/metrics"
	"github.com/liuwen/bookmall/pkg/mq"
	"github.com/liuwen/bookmall/pkg/response"
)

// main 主程序入口
// 依赖注入链（手动组装）：Repository ← Service ← UseCase ← Handler
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接（含AutoMigrate和角色种子数据）
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化消息队列（可选，失败时事件发布降级为空操作）
	var mqPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Printf("[WARN] 连接RabbitMQ失败，事件发布已禁用: %v", err)
			mqPublisher = nil
		} else {
			defer mqPublisher.Close()
		}
	}
	eventPublisher := event.NewPublisher(mqPublisher)

	// 6. 依赖注入（手动组装）

	// 基础设施层
	txManager := mysql.NewTxManager(db)
	userRepo := mysql.NewUserRepository(db)
	roleRepo := mysql.NewRoleRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo, roleRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService, cartRepo, txManager, eventPublisher)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	refreshUseCase := appuser.NewRefreshTokenUseCase(jwtManager, sessionStore)

	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	listCategoryBooksUseCase := appbook.NewListCategoryBooksUseCase(bookService, categoryRepo)

	createCategoryUseCase := appcategory.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := appcategory.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := appcategory.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := appcategory.NewDeleteCategoryUseCase(categoryRepo)

	getCartUseCase := appcart.NewGetCartUseCase(cartRepo)
	addCartItemUseCase := appcart.NewAddItemUseCase(cartRepo, bookRepo)
	updateCartItemUseCase := appcart.NewUpdateItemUseCase(cartRepo)
	removeCartItemUseCase := appcart.NewRemoveItemUseCase(cartRepo)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, cartRepo, bookRepo, txManager, eventPublisher)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateOrderStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo, order.PermissivePolicy{})
	listOrderItemsUseCase := apporder.NewListOrderItemsUseCase(orderRepo)
	getOrderItemUseCase := apporder.NewGetOrderItemUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, refreshUseCase)
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		getBookUseCase,
		listBooksUseCase,
		searchBooksUseCase,
		updateBookUseCase,
		deleteBookUseCase,
	)
	categoryHandler := handler.NewCategoryHandler(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoryBooksUseCase,
	)
	cartHandler := handler.NewCartHandler(
		getCartUseCase,
		addCartItemUseCase,
		updateCartItemUseCase,
		removeCartItemUseCase,
	)
	orderHandler := handler.NewOrderHandler(
		createOrderUseCase,
		listOrdersUseCase,
		updateOrderStatusUseCase,
		listOrderItemsUseCase,
		getOrderItemUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, userHandler, bookHandler, categoryHandler, cartHandler, orderHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查与指标
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// 认证模块（公开接口）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 图书模块（读公开，写管理员）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/search", bookHandler.SearchBooks)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.DeleteBook)
		}

		// 分类模块（读公开，写管理员）
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id/books", categoryHandler.ListCategoryBooks)

			categories.POST("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.CreateCategory)
			categories.PUT("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.UpdateCategory)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.DeleteCategory)
		}

		// 购物车模块（需要登录，隐含当前用户作用域）
		cart := v1.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// 订单模块（需要登录，状态变更仅管理员）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id/items", orderHandler.ListOrderItems)
			orders.GET("/:id/items/:itemId", orderHandler.GetOrderItem)
			orders.PATCH("/:id", authMiddleware.RequireAdmin(), orderHandler.UpdateOrderStatus)
		}
	}
}
