package category

import (
	"time"
)

// Category 分类实体
// 设计说明:
// 1. 分类与图书是多对多关系,关联表由图书侧维护
// 2. Name全局唯一(数据库唯一索引保证)
// 3. 软删除:删除后默认查询不可见,关联的图书不受影响
type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新分类信息
// 空字符串表示不修改对应字段
func (c *Category) UpdateInfo(name, description string) {
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
}
