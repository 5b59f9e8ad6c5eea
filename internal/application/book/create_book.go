package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/liuwen/bookmall/internal/domain/book"
)

// CreateBookUseCase 图书创建用例(管理员)
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
// 3. 业务规则校验(ISBN格式、价格、唯一性)由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// Execute 执行图书创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDetail, error) {
	b, err := uc.bookService.CreateBook(
		ctx,
		req.ISBN,
		req.Title,
		req.Author,
		req.Price,
		req.Description,
		req.CoverImage,
		req.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}

	detail := toBookDetail(b)
	return &detail, nil
}
