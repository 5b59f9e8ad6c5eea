package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/liuwen/bookmall/internal/domain/book"
)

// UpdateBookUseCase 图书更新用例(管理员)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 更新请求DTO
// 空字符串/nil表示不修改对应字段
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Author      string
	Description string
	CoverImage  string
	Price       *decimal.Decimal
	CategoryIDs []uint // nil表示不修改分类关联
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDetail, error) {
	b, err := uc.bookService.UpdateBook(
		ctx,
		req.ID,
		req.Title,
		req.Author,
		req.Description,
		req.CoverImage,
		req.Price,
		req.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}

	detail := toBookDetail(b)
	return &detail, nil
}
