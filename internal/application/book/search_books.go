package book

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 设计说明:
// 1. 标题、作者两个维度各自是IN匹配(多值任一命中)
// 2. 两个维度之间AND组合
// 3. 无任何条件时退化为全量列表
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Titles   []string // 标题候选集(任一匹配)
	Authors  []string // 作者候选集(任一匹配)
	Page     int
	PageSize int
}

// Execute 执行搜索用例
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.SearchBooks(ctx, book.SearchParams{
		Titles:   req.Titles,
		Authors:  req.Authors,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	return buildListResponse(books, total, page, pageSize), nil
}
