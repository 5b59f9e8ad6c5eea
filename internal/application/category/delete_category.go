package category

import (
	"context"

	"github.com/liuwen/bookmall/internal/domain/category"
)

// DeleteCategoryUseCase 分类删除用例(管理员,软删除)
// 删除分类不影响已关联的图书
type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
}

// NewDeleteCategoryUseCase 创建删除用例
func NewDeleteCategoryUseCase(categoryRepo category.Repository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute 执行删除用例
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	return uc.categoryRepo.Delete(ctx, id)
}
