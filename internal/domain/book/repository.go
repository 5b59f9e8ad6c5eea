package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有查询默认排除软删除记录
type Repository interface {
	// Create 创建图书(含分类关联)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 不存在或已软删除时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息(含分类关联替换)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按条件搜索图书
	// 条件之间AND组合,单个条件内的多个取值OR匹配(IN查询)
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// ListByCategory 查询某分类下的图书
	ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int // 页码(从1开始)
	PageSize int // 每页数量
}

// SearchParams 搜索参数
// Titles/Authors为空切片时表示不限制对应维度
type SearchParams struct {
	Titles   []string // 书名取值集合(title IN (...))
	Authors  []string // 作者取值集合(author IN (...))
	Page     int
	PageSize int
}

// IsEmpty 判断是否无任何搜索条件
// 无条件时等价于List(匹配所有未删除图书)
func (p SearchParams) IsEmpty() bool {
	return len(p.Titles) == 0 && len(p.Authors) == 0
}
