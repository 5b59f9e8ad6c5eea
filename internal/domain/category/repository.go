package category

import (
	"context"
)

// Repository 分类仓储接口
// 所有查询默认排除软删除记录
type Repository interface {
	// Create 创建分类
	// 名称已存在时返回ErrNameDuplicate
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	// 不存在或已软删除时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// List 分页查询分类列表
	List(ctx context.Context, page, pageSize int) ([]*Category, int64, error)

	// Update 更新分类信息
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类(软删除)
	Delete(ctx context.Context, id uint) error
}
