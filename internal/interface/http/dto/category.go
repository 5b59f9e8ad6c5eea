package dto

// CreateCategoryRequest 创建分类请求(管理员)
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateCategoryRequest 更新分类请求(管理员)
// 空字符串表示不修改对应字段
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"max=100"`
	Description string `json:"description" binding:"max=1000"`
}
