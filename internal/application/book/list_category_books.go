package book

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/book"
	"github.com/liuwen/bookmall/internal/domain/category"
)

// ListCategoryBooksUseCase 分类下图书查询用例
// 先校验分类存在,再查询该分类关联的图书
type ListCategoryBooksUseCase struct {
	bookService  book.Service
	categoryRepo category.Repository
}

// NewListCategoryBooksUseCase 创建分类图书查询用例
func NewListCategoryBooksUseCase(bookService book.Service, categoryRepo category.Repository) *ListCategoryBooksUseCase {
	return &ListCategoryBooksUseCase{
		bookService:  bookService,
		categoryRepo: categoryRepo,
	}
}

// ListCategoryBooksRequest 分类图书查询请求DTO
type ListCategoryBooksRequest struct {
	CategoryID uint
	Page       int
	PageSize   int
}

// Execute 执行分类图书查询用例
func (uc *ListCategoryBooksUseCase) Execute(ctx context.Context, req ListCategoryBooksRequest) (*ListBooksResponse, error) {
	// 分类不存在(或已删除)时返回NotFound,而不是空列表
	if _, err := uc.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.ListBooksByCategory(ctx, req.CategoryID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return buildListResponse(books, total, page, pageSize), nil
}
