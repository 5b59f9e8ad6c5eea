package mysql

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/liuwen/bookmall/internal/domain/user"
	"github.com/liuwen/bookmall/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构并写入角色种子数据
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("数据库连接成功")

	// 注意：生产环境应使用版本化迁移脚本，不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("角色种子数据写入失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&RoleModel{},
		&BookModel{},
		&CategoryModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// seedRoles 写入内置角色（幂等）
// ROLE_USER缺失会导致注册全部失败，因此在启动时保证存在
func seedRoles(db *gorm.DB) error {
	for _, name := range []string{user.RoleUser, user.RoleAdmin} {
		role := RoleModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// =========================================
// GORM数据模型
// =========================================
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain层的实体不依赖GORM，Repository负责两者之间的转换
// 3. 软删除统一使用gorm.DeletedAt（默认查询自动排除已删除行）

// UserModel GORM用户模型
type UserModel struct {
	ID              uint           `gorm:"primaryKey"`
	Email           string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password        string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName       string         `gorm:"size:50;not null;comment:名"`
	LastName        string         `gorm:"size:50;not null;comment:姓"`
	ShippingAddress string         `gorm:"size:255;comment:默认收货地址"`
	Roles           []RoleModel    `gorm:"many2many:user_roles"`
	CreatedAt       time.Time      `gorm:"comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// RoleModel GORM角色模型
type RoleModel struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"uniqueIndex;size:50;not null;comment:角色名"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName 指定表名
func (RoleModel) TableName() string {
	return "roles"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用decimal(12,2)列，shopspring/decimal实现了Scanner/Valuer，可直接映射
// 2. ISBN有唯一索引，防止重复
// 3. 分类通过book_categories关联表维护多对多关系
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	ISBN        string          `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title       string          `gorm:"index;size:200;not null;comment:书名"`
	Author      string          `gorm:"index;size:100;not null;comment:作者"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:价格(元)"`
	Description string          `gorm:"type:text;comment:图书描述"`
	CoverImage  string          `gorm:"size:500;comment:封面图片URL"`
	Categories  []CategoryModel `gorm:"many2many:book_categories"`
	CreatedAt   time.Time       `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	Description string         `gorm:"size:500;comment:分类描述"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// CartModel GORM购物车模型
// 设计说明:
// 1. 购物车ID与用户ID相同(一对一)，因此关闭自增
// 2. 条目级联删除:删除购物车时条目一并清除
type CartModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement:false;comment:购物车ID(与用户ID相同)"`
	UserID    uint            `gorm:"uniqueIndex;not null;comment:所属用户ID"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"comment:创建时间"`
	UpdatedAt time.Time       `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (CartModel) TableName() string {
	return "shopping_carts"
}

// CartItemModel GORM购物车条目模型
// (cart_id, book_id)唯一索引保证同一本书在购物车中至多一行
type CartItemModel struct {
	ID       uint `gorm:"primaryKey"`
	CartID   uint `gorm:"uniqueIndex:idx_cart_book;not null;comment:购物车ID"`
	BookID   uint `gorm:"uniqueIndex:idx_cart_book;index;not null;comment:图书ID"`
	Quantity int  `gorm:"not null;comment:数量"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
// 3. Status直接存状态名字符串，便于扩展新状态
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	Total           decimal.Decimal  `gorm:"type:decimal(12,2);not null;comment:订单总金额(元)"`
	Status          string           `gorm:"index;size:32;not null;default:PENDING;comment:订单状态"`
	ShippingAddress string           `gorm:"size:255;not null;comment:收货地址快照"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的价格快照
type OrderItemModel struct {
	ID       uint            `gorm:"primaryKey"`
	OrderID  uint            `gorm:"index;not null;comment:订单ID"`
	BookID   uint            `gorm:"index;not null;comment:图书ID"`
	Quantity int             `gorm:"not null;comment:购买数量"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:下单时单价(元)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
