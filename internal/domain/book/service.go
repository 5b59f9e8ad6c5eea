package book

import (
	"context"
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// Service 图书领域服务接口
// 封装跨实体的业务规则校验(ISBN格式、唯一性、价格合法性)
type Service interface {
	// CreateBook 创建图书(上架)
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须>0
	// - ISBN不能重复
	CreateBook(ctx context.Context, isbn, title, author string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息
	// categoryIDs为nil时不修改分类关联
	UpdateBook(ctx context.Context, id uint, title, author, description, coverImage string, price *decimal.Decimal, categoryIDs []uint) (*Book, error)

	// DeleteBook 删除图书(软删除)
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 按条件搜索图书
	SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// ListBooksByCategory 查询某分类下的图书
	ListBooksByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, isbn, title, author string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) (*Book, error) {
	// 1. ISBN格式校验
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	// 2. 价格校验
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	// 3. ISBN唯一性预检查(数据库唯一索引兜底)
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 4. 创建图书实体并持久化
	b := NewBook(isbn, title, author, price, description, coverImage, categoryIDs)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, description, coverImage string, price *decimal.Decimal, categoryIDs []uint) (*Book, error) {
	// 1. 查询图书(已删除的图书视为不存在)
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新字段
	b.UpdateInfo(title, author, description, coverImage)
	if price != nil {
		if err := b.UpdatePrice(*price); err != nil {
			return nil, err
		}
	}
	if categoryIDs != nil {
		b.ReplaceCategories(categoryIDs)
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书(软删除)
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchBooks 按条件搜索图书
// 无任何条件时退化为全量列表查询
func (s *service) SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	if params.IsEmpty() {
		return s.repo.List(ctx, ListParams{Page: params.Page, PageSize: params.PageSize})
	}
	return s.repo.Search(ctx, params)
}

// ListBooksByCategory 查询某分类下的图书
func (s *service) ListBooksByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error) {
	return s.repo.ListByCategory(ctx, categoryID, page, pageSize)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// isValidISBN 校验ISBN格式
// 支持ISBN-10和ISBN-13,允许带分隔符(978-7-115-42802-8)
// 简化实现:只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	cleanISBN := re.ReplaceAllString(isbn, "")

	length := len(cleanISBN)
	return length == 10 || length == 13
}
