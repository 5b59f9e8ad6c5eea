package user

import (
	"time"
)

// 系统内置角色名
const (
	RoleUser  = "ROLE_USER"  // 普通用户（注册时默认分配）
	RoleAdmin = "ROLE_ADMIN" // 管理员（图书/分类管理、订单状态变更）
)

// Role 角色实体
// 角色表为种子数据，AutoMigrate时写入，不提供管理接口
type Role struct {
	ID   uint
	Name string
}

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，Roles通过多对多关联表存储
// 2. 密码已加密存储（bcrypt），不提供明文访问方法
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository负责映射）
type User struct {
	ID              uint
	Email           string
	Password        string // bcrypt哈希值
	FirstName       string
	LastName        string
	ShippingAddress string
	Roles           []string // 角色名列表
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName, shippingAddress string, roles []string) *User {
	now := time.Now()
	return &User{
		Email:           email,
		Password:        hashedPassword,
		FirstName:       firstName,
		LastName:        lastName,
		ShippingAddress: shippingAddress,
		Roles:           roles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasRole 判断用户是否拥有指定角色
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UpdateShippingAddress 更新收货地址（领域行为）
func (u *User) UpdateShippingAddress(address string) {
	u.ShippingAddress = address
	u.UpdatedAt = time.Now()
}
