package category

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/category"
)

// UpdateCategoryUseCase 分类更新用例(管理员)
type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewUpdateCategoryUseCase 创建更新用例
func NewUpdateCategoryUseCase(categoryRepo category.Repository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo}
}

// UpdateCategoryRequest 更新请求DTO
// 空字符串表示不修改对应字段
type UpdateCategoryRequest struct {
	ID          uint
	Name        string
	Description string
}

// Execute 执行分类更新用例
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) (*CategoryDetail, error) {
	c, err := uc.categoryRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	c.UpdateInfo(req.Name, req.Description)

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	detail := toCategoryDetail(c)
	return &detail, nil
}
