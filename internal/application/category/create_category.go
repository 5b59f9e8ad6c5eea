package category

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/category"
)

// CreateCategoryUseCase 分类创建用例(管理员)
type CreateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewCreateCategoryUseCase 创建分类创建用例
func NewCreateCategoryUseCase(categoryRepo category.Repository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// CreateCategoryRequest 创建请求DTO
type CreateCategoryRequest struct {
	Name        string
	Description string
}

// CategoryDetail 分类DTO
type CategoryDetail struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Execute 执行分类创建用例
// 名称重复由Repository转换为业务错误(唯一索引保证)
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (*CategoryDetail, error) {
	c := category.NewCategory(req.Name, req.Description)
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	detail := toCategoryDetail(c)
	return &detail, nil
}

// toCategoryDetail 领域实体 → 应用层DTO
func toCategoryDetail(c *category.Category) CategoryDetail {
	return CategoryDetail{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   c.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
