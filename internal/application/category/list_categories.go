package category

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/category"
)

// ListCategoriesUseCase 分类列表查询用例
type ListCategoriesUseCase struct {
	categoryRepo category.Repository
}

// NewListCategoriesUseCase 创建列表查询用例
func NewListCategoriesUseCase(categoryRepo category.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// ListCategoriesRequest 列表查询请求DTO
type ListCategoriesRequest struct {
	Page     int
	PageSize int
}

// ListCategoriesResponse 列表查询响应DTO
type ListCategoriesResponse struct {
	List       []CategoryDetail `json:"list"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Execute 执行列表查询用例
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, req ListCategoriesRequest) (*ListCategoriesResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	categories, total, err := uc.categoryRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryDetail, len(categories))
	for i, c := range categories {
		list[i] = toCategoryDetail(c)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &ListCategoriesResponse{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// normalizePage 分页参数默认值与范围限制
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
