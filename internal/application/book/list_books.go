package book

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int // 页码(从1开始)
	PageSize int // 每页数量
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookDetail `json:"list"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	return buildListResponse(books, total, page, pageSize), nil
}

// normalizePage 分页参数默认值与范围限制
// page默认1,pageSize默认20,最大100
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// buildListResponse 构建分页响应
func buildListResponse(books []*book.Book, total int64, page, pageSize int) *ListBooksResponse {
	list := make([]BookDetail, len(books))
	for i, b := range books {
		list[i] = toBookDetail(b)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
